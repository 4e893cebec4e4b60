package metadata

import (
	"strings"
)

// Default values
const (
	UnknownArtist     = "Unknown Artist"
	UnknownTitle      = "Unknown Track"
	ArtistSeparator   = " & "
	DefaultMaxArtists = 3
)

// Characters stripped from the front of a title after removing a redundant
// artist prefix (e.g. "Artist - Title", "Artist: Title", "Artist | Title").
const titleSeparatorCutset = " -:|"

// RawTags holds tag values as extracted from the video page, before cleanup.
type RawTags struct {
	Artist   string // artist field if the extractor provides one
	Uploader string // channel/uploader name, used as artist fallback
	Title    string
}

// Tags holds normalized values ready for file naming and ID3 embedding.
type Tags struct {
	Artist string
	Title  string
}

// Normalize applies artist de-duplication and redundant-title stripping to
// raw tag values. The result is stable: normalizing it again is a no-op.
func Normalize(raw RawTags) Tags {
	artist := NormalizeArtist(raw.Artist, raw.Uploader, DefaultMaxArtists)
	title := NormalizeTitle(raw.Title, artist)
	return Tags{Artist: artist, Title: title}
}

// NormalizeArtist cleans a comma-separated artist string: trims each part,
// removes case-insensitive duplicates preserving first-seen order and casing,
// and caps the list at max entries joined with " & ". Falls back to uploader
// when the artist field is empty, and to "Unknown Artist" when both are.
func NormalizeArtist(raw, uploader string, max int) string {
	if strings.TrimSpace(raw) == "" {
		raw = uploader
	}
	if max <= 0 {
		max = DefaultMaxArtists
	}

	var artists []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key := strings.ToLower(part)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		artists = append(artists, part)
		if len(artists) == max {
			break
		}
	}

	if len(artists) == 0 {
		return UnknownArtist
	}
	return strings.Join(artists, ArtistSeparator)
}

// NormalizeTitle removes a redundant artist prefix from a track title.
// The comparison is case-insensitive; the remaining title keeps its original
// casing. Leading separators left over from the prefix are trimmed. When
// stripping would leave nothing (title equals the artist) the original title
// is kept unchanged.
func NormalizeTitle(title, artist string) string {
	if strings.TrimSpace(title) == "" {
		return UnknownTitle
	}
	if artist == "" || artist == UnknownArtist {
		return title
	}

	lowerArtist := strings.ToLower(artist)
	for strings.HasPrefix(strings.ToLower(title), lowerArtist) {
		stripped := strings.TrimLeft(title[len(artist):], titleSeparatorCutset)
		if strings.TrimSpace(stripped) == "" {
			break
		}
		title = stripped
	}
	return title
}
