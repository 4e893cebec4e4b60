package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-mp3/internal/model"
)

// Timeout constants
const (
	DefaultPlaylistParseTimeout = 60 * time.Second
)

// Default values
const (
	DefaultPlaylistTitle = "Untitled Playlist"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistParser enumerates YouTube playlist entries without downloading
// them, via the ytdlp flat playlist API.
type PlaylistParser struct {
	timeout time.Duration
}

// NewPlaylistParser creates a new playlist parser
func NewPlaylistParser() *PlaylistParser {
	return &PlaylistParser{
		timeout: DefaultPlaylistParseTimeout,
	}
}

// SetTimeout sets the timeout for playlist parsing
func (p *PlaylistParser) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// ParsePlaylist parses a YouTube playlist URL and returns the playlist with
// one pending track per entry.
func (p *PlaylistParser) ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return nil, fmt.Errorf("invalid playlist URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := model.NewPlaylist(url)
	playlist.ID = playlistID
	for _, it := range items {
		playlist.AddTrack(&model.Track{
			ID:      it.VideoID,
			VideoID: it.VideoID,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
			Title:   it.Title,
			Status:  model.TrackStatusPending,
		})
	}

	playlist.Title = p.playlistTitle(playlist, playlistID)
	playlist.UpdateStatus(model.PlaylistStatusReady)

	return playlist, nil
}

// playlistTitle picks a display title for the playlist
func (p *PlaylistParser) playlistTitle(playlist *model.Playlist, playlistID string) string {
	if playlist.TotalTracks() == 0 {
		return DefaultPlaylistTitle
	}
	return fmt.Sprintf("Playlist %s", playlistID)
}
