package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// URL parameters
const (
	PlaylistURLParam       = "list="
	PlaylistParamSeparator = "&"
)

// Hosts accepted as YouTube URLs
var youtubeHosts = map[string]struct{}{
	"youtube.com":       {},
	"youtu.be":          {},
	"music.youtube.com": {},
}

// ValidateURL checks that the input is a plausible YouTube video or playlist
// URL: http(s) scheme and a known YouTube host.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL: unsupported scheme %q", parsed.Scheme)
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	if _, ok := youtubeHosts[host]; !ok {
		return fmt.Errorf("not a YouTube URL: %s", raw)
	}
	return nil
}

// IsPlaylistURL reports whether the URL carries a playlist parameter.
func IsPlaylistURL(raw string) bool {
	return strings.Contains(raw, PlaylistURLParam)
}

// ExtractPlaylistID extracts the playlist ID from a YouTube playlist URL.
// Supported formats:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(raw string) (string, error) {
	if !strings.Contains(raw, PlaylistURLParam) {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}

	parts := strings.Split(raw, PlaylistURLParam)
	if len(parts) < 2 {
		return "", fmt.Errorf("could not extract playlist ID from URL")
	}

	playlistID := parts[1]
	if strings.Contains(playlistID, PlaylistParamSeparator) {
		playlistID = strings.Split(playlistID, PlaylistParamSeparator)[0]
	}

	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}
	return playlistID, nil
}
