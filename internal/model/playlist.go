package model

import (
	"time"
)

// PlaylistStatus represents the current status of a playlist
type PlaylistStatus string

const (
	PlaylistStatusParsing    PlaylistStatus = "parsing"
	PlaylistStatusReady      PlaylistStatus = "ready"
	PlaylistStatusProcessing PlaylistStatus = "processing"
	PlaylistStatusCompleted  PlaylistStatus = "completed"
	PlaylistStatusError      PlaylistStatus = "error"
)

// Playlist represents a YouTube playlist with its tracks
type Playlist struct {
	ID        string
	Title     string
	URL       string
	Tracks    []*Track
	Status    PlaylistStatus
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPlaylist creates a new playlist instance
func NewPlaylist(url string) *Playlist {
	now := time.Now()
	return &Playlist{
		URL:       url,
		Status:    PlaylistStatusParsing,
		Tracks:    make([]*Track, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddTrack adds a track to the playlist
func (p *Playlist) AddTrack(track *Track) {
	p.Tracks = append(p.Tracks, track)
	p.UpdatedAt = time.Now()
}

// UpdateStatus updates the playlist status
func (p *Playlist) UpdateStatus(status PlaylistStatus) {
	p.Status = status
	p.UpdatedAt = time.Now()
}

// TotalTracks returns the number of tracks in the playlist
func (p *Playlist) TotalTracks() int {
	return len(p.Tracks)
}

// TracksWithStatus returns all tracks in the given status
func (p *Playlist) TracksWithStatus(status TrackStatus) []*Track {
	var out []*Track
	for _, track := range p.Tracks {
		if track.Status == status {
			out = append(out, track)
		}
	}
	return out
}

// CompletedCount returns the number of completed tracks
func (p *Playlist) CompletedCount() int {
	return len(p.TracksWithStatus(TrackStatusCompleted))
}

// HasErrors checks if any track has errors
func (p *Playlist) HasErrors() bool {
	for _, track := range p.Tracks {
		if track.Status == TrackStatusError {
			return true
		}
	}
	return false
}
