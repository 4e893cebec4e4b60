package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/kkdai/youtube/v2"
)

// Timeout constants
const (
	DefaultHTTPTimeout = 10 * time.Minute
)

// ProgressFunc reports download progress as a fraction between 0 and 1.
type ProgressFunc func(fraction float64)

// VideoInfo holds the metadata needed for tagging plus the underlying video
// handle used to open the stream.
type VideoInfo struct {
	ID       string
	Title    string
	Author   string
	Duration time.Duration

	video *youtube.Video
}

// Service retrieves video metadata and downloads audio streams.
type Service struct {
	client youtube.Client
}

// NewService creates a new fetch service
func NewService(timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Service{
		client: youtube.Client{
			HTTPClient: &http.Client{Timeout: timeout},
		},
	}
}

// Video fetches metadata for a single video URL or ID.
func (s *Service) Video(ctx context.Context, url string) (*VideoInfo, error) {
	video, err := s.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching video metadata: %w", err)
	}

	return &VideoInfo{
		ID:       video.ID,
		Title:    video.Title,
		Author:   video.Author,
		Duration: video.Duration,
		video:    video,
	}, nil
}

// DownloadAudio streams the best audio-only format of the video to dstPath.
// Returns the number of bytes written.
func (s *Service) DownloadAudio(ctx context.Context, info *VideoInfo, dstPath string, progress ProgressFunc) (int64, error) {
	if info == nil || info.video == nil {
		return 0, errors.New("video metadata not loaded")
	}

	format, err := selectAudioFormat(info.video.Formats)
	if err != nil {
		return 0, err
	}

	stream, size, err := s.client.GetStreamContext(ctx, info.video, format)
	if err != nil {
		return 0, fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Close()

	file, err := os.Create(dstPath)
	if err != nil {
		return 0, fmt.Errorf("opening output file: %w", err)
	}
	defer file.Close()

	var writer io.Writer = file
	if progress != nil && size > 0 {
		writer = io.MultiWriter(file, &progressWriter{total: size, report: progress})
	}

	written, err := io.Copy(writer, stream)
	if err != nil {
		os.Remove(dstPath)
		return 0, fmt.Errorf("download failed: %w", err)
	}
	return written, nil
}

// selectAudioFormat picks the audio-only format with the highest bitrate.
func selectAudioFormat(formats []youtube.Format) (*youtube.Format, error) {
	var best *youtube.Format
	for i := range formats {
		format := &formats[i]
		if format.AudioChannels == 0 {
			continue
		}
		if format.Width != 0 || format.Height != 0 {
			continue
		}
		if best == nil || bitrateForFormat(format) > bitrateForFormat(best) {
			best = format
		}
	}
	if best == nil {
		return nil, errors.New("no audio-only formats available")
	}
	return best, nil
}

func bitrateForFormat(f *youtube.Format) int {
	if f.Bitrate > 0 {
		return f.Bitrate
	}
	if f.AverageBitrate > 0 {
		return f.AverageBitrate
	}
	return 0
}

// IsUnavailable reports whether the error means the video cannot be
// downloaded at all (private, removed, restricted) as opposed to a transient
// failure. Playlist processing treats both the same way, but the message
// shown to the user differs.
func IsUnavailable(err error) bool {
	switch {
	case errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrNotPlayableInEmbed):
		return true
	}
	var statusErr *youtube.ErrPlayabiltyStatus
	return errors.As(err, &statusErr)
}

// progressWriter reports copy progress through a callback
type progressWriter struct {
	total   int64
	written int64
	report  ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	fraction := float64(w.written) / float64(w.total)
	if fraction > 1.0 {
		fraction = 1.0
	}
	w.report(fraction)
	return len(p), nil
}
