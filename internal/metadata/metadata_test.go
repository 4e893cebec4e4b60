package metadata

import (
	"testing"
)

func TestNormalizeArtist(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		uploader string
		max      int
		expected string
	}{
		{
			name:     "single artist unchanged",
			raw:      "Daft Punk",
			expected: "Daft Punk",
		},
		{
			name:     "comma separated artists joined",
			raw:      "Daft Punk, Pharrell Williams",
			expected: "Daft Punk & Pharrell Williams",
		},
		{
			name:     "duplicates removed case-insensitively",
			raw:      "Daft Punk, daft punk, DAFT PUNK",
			expected: "Daft Punk",
		},
		{
			name:     "first-seen casing preserved",
			raw:      "dAfT pUnK, Daft Punk",
			expected: "dAfT pUnK",
		},
		{
			name:     "capped at three artists",
			raw:      "A, B, C, D, E",
			expected: "A & B & C",
		},
		{
			name:     "empty parts and whitespace dropped",
			raw:      "  Daft Punk ,, , Justice ",
			expected: "Daft Punk & Justice",
		},
		{
			name:     "falls back to uploader",
			raw:      "",
			uploader: "Some Channel",
			expected: "Some Channel",
		},
		{
			name:     "unknown when both empty",
			raw:      "",
			uploader: "   ",
			expected: UnknownArtist,
		},
		{
			name:     "custom cap",
			raw:      "A, B, C",
			max:      2,
			expected: "A & B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeArtist(tt.raw, tt.uploader, tt.max)
			if result != tt.expected {
				t.Errorf("NormalizeArtist(%q, %q, %d) = %q, expected %q",
					tt.raw, tt.uploader, tt.max, result, tt.expected)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		artist   string
		expected string
	}{
		{
			name:     "artist prefix with dash removed",
			title:    "Daft Punk - One More Time",
			artist:   "Daft Punk",
			expected: "One More Time",
		},
		{
			name:     "artist prefix with colon removed",
			title:    "Daft Punk: One More Time",
			artist:   "Daft Punk",
			expected: "One More Time",
		},
		{
			name:     "artist prefix with pipe removed",
			title:    "Daft Punk | One More Time",
			artist:   "Daft Punk",
			expected: "One More Time",
		},
		{
			name:     "case-insensitive match keeps remaining casing",
			title:    "DAFT PUNK - One More Time",
			artist:   "Daft Punk",
			expected: "One More Time",
		},
		{
			name:     "no prefix leaves title unchanged",
			title:    "One More Time",
			artist:   "Daft Punk",
			expected: "One More Time",
		},
		{
			name:     "title equal to artist kept",
			title:    "Daft Punk",
			artist:   "Daft Punk",
			expected: "Daft Punk",
		},
		{
			name:     "unknown artist never strips",
			title:    "Unknown Artist - Song",
			artist:   UnknownArtist,
			expected: "Unknown Artist - Song",
		},
		{
			name:     "joined artist string stripped",
			title:    "Daft Punk & Pharrell Williams - Get Lucky",
			artist:   "Daft Punk & Pharrell Williams",
			expected: "Get Lucky",
		},
		{
			name:     "empty title falls back",
			title:    "  ",
			artist:   "Daft Punk",
			expected: UnknownTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeTitle(tt.title, tt.artist)
			if result != tt.expected {
				t.Errorf("NormalizeTitle(%q, %q) = %q, expected %q",
					tt.title, tt.artist, result, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []RawTags{
		{Artist: "Daft Punk, daft punk, Justice", Title: "Daft Punk & Justice - D.A.N.C.E."},
		{Artist: "", Uploader: "Some Channel", Title: "Some Channel: Mix 01"},
		{Artist: "A, B, C, D", Title: "A & B & C - Collab"},
		{Artist: "", Uploader: "", Title: ""},
		{Artist: "Daft Punk", Title: "Daft Punk Daft Punk - One More Time"},
	}

	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(RawTags{Artist: once.Artist, Title: once.Title})
		if once != twice {
			t.Errorf("Normalize not idempotent for %+v: first %+v, second %+v", raw, once, twice)
		}
	}
}

func TestNormalize(t *testing.T) {
	tags := Normalize(RawTags{
		Artist: "Daft Punk, Pharrell Williams, daft punk",
		Title:  "Daft Punk & Pharrell Williams - Get Lucky",
	})

	if tags.Artist != "Daft Punk & Pharrell Williams" {
		t.Errorf("expected artist 'Daft Punk & Pharrell Williams', got %q", tags.Artist)
	}
	if tags.Title != "Get Lucky" {
		t.Errorf("expected title 'Get Lucky', got %q", tags.Title)
	}
}
