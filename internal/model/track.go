package model

import (
	"strings"
	"time"
)

// Track represents a single video being turned into an MP3 file
type Track struct {
	ID         string
	VideoID    string
	URL        string
	Title      string // normalized track title
	Artist     string // normalized artist string
	Status     TrackStatus
	Progress   float64   // 0.0 to 1.0 for the current stage
	LastError  string    // last error message if any
	OutputPath string    // path to the written MP3 file
	FileSize   int64     // output file size in bytes
	StartedAt  time.Time // when processing started
	FinishedAt time.Time // when processing finished
}

// DisplayName returns "Artist - Title", the title alone, or the URL in order
// of preference.
func (t *Track) DisplayName() string {
	if t.Title != "" {
		if t.Artist != "" {
			return t.Artist + " - " + t.Title
		}
		return t.Title
	}

	if t.OutputPath != "" {
		parts := strings.FieldsFunc(t.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return t.URL
}

// MarkError transitions the track to the error state.
func (t *Track) MarkError(err error) {
	t.Status = TrackStatusError
	t.LastError = err.Error()
	t.FinishedAt = time.Now()
}

// MarkCompleted transitions the track to the completed state.
func (t *Track) MarkCompleted(outputPath string, fileSize int64) {
	t.Status = TrackStatusCompleted
	t.Progress = 1.0
	t.OutputPath = outputPath
	t.FileSize = fileSize
	t.FinishedAt = time.Now()
}
