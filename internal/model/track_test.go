package model

import (
	"errors"
	"testing"
	"time"
)

func TestTrack_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		track    Track
		expected string
	}{
		{
			name:     "artist and title",
			track:    Track{Artist: "Daft Punk", Title: "Around the World"},
			expected: "Daft Punk - Around the World",
		},
		{
			name:     "title only",
			track:    Track{Title: "Around the World"},
			expected: "Around the World",
		},
		{
			name:     "falls back to output filename",
			track:    Track{OutputPath: "/downloads/Daft Punk - One More Time.mp3"},
			expected: "Daft Punk - One More Time",
		},
		{
			name:     "falls back to URL",
			track:    Track{URL: "https://youtube.com/watch?v=123"},
			expected: "https://youtube.com/watch?v=123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.track.DisplayName()
			if result != tt.expected {
				t.Errorf("DisplayName() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestTrack_MarkError(t *testing.T) {
	track := &Track{Status: TrackStatusDownloading}
	track.MarkError(errors.New("video unavailable"))

	if track.Status != TrackStatusError {
		t.Errorf("expected status Error, got %s", track.Status)
	}
	if track.LastError != "video unavailable" {
		t.Errorf("expected LastError 'video unavailable', got %q", track.LastError)
	}
	if track.FinishedAt.IsZero() {
		t.Error("expected FinishedAt to be set")
	}
}

func TestTrack_MarkCompleted(t *testing.T) {
	track := &Track{Status: TrackStatusConverting, StartedAt: time.Now()}
	track.MarkCompleted("/downloads/a.mp3", 1024)

	if track.Status != TrackStatusCompleted {
		t.Errorf("expected status Completed, got %s", track.Status)
	}
	if track.OutputPath != "/downloads/a.mp3" {
		t.Errorf("expected OutputPath '/downloads/a.mp3', got %q", track.OutputPath)
	}
	if track.FileSize != 1024 {
		t.Errorf("expected FileSize 1024, got %d", track.FileSize)
	}
	if track.Progress != 1.0 {
		t.Errorf("expected Progress 1.0, got %f", track.Progress)
	}
}

func TestPlaylist_Accessors(t *testing.T) {
	playlist := NewPlaylist("https://www.youtube.com/playlist?list=PL123")

	if playlist.Status != PlaylistStatusParsing {
		t.Errorf("expected status parsing, got %s", playlist.Status)
	}

	playlist.AddTrack(&Track{ID: "1", Status: TrackStatusCompleted})
	playlist.AddTrack(&Track{ID: "2", Status: TrackStatusError})
	playlist.AddTrack(&Track{ID: "3", Status: TrackStatusPending})

	if playlist.TotalTracks() != 3 {
		t.Errorf("expected 3 tracks, got %d", playlist.TotalTracks())
	}
	if playlist.CompletedCount() != 1 {
		t.Errorf("expected 1 completed track, got %d", playlist.CompletedCount())
	}
	if !playlist.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
	if got := len(playlist.TracksWithStatus(TrackStatusPending)); got != 1 {
		t.Errorf("expected 1 pending track, got %d", got)
	}
}
