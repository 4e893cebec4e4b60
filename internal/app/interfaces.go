package app

import (
	"context"

	"github.com/ytget/yt-mp3/internal/convert"
	"github.com/ytget/yt-mp3/internal/fetch"
	"github.com/ytget/yt-mp3/internal/model"
)

// Fetcher retrieves video metadata and downloads audio streams.
type Fetcher interface {
	Video(ctx context.Context, url string) (*fetch.VideoInfo, error)
	DownloadAudio(ctx context.Context, info *fetch.VideoInfo, dstPath string, progress fetch.ProgressFunc) (int64, error)
}

// Converter transcodes a downloaded audio stream into a tagged MP3 file.
type Converter interface {
	Convert(ctx context.Context, req convert.Request, progress convert.ProgressFunc) error
}

// PlaylistParser enumerates playlist entries without downloading them.
type PlaylistParser interface {
	ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error)
}
