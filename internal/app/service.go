package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-mp3/internal/convert"
	"github.com/ytget/yt-mp3/internal/fetch"
	"github.com/ytget/yt-mp3/internal/metadata"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// Output file constants
const (
	OutputExtension = ".mp3"
	TempFilePrefix  = ".yt-mp3-"
	TempFileSuffix  = ".tmp"
)

// Options configures a pipeline run.
type Options struct {
	OutputDir  string
	Bitrate    string
	MaxArtists int
	Quiet      bool
	Out        io.Writer // console output, defaults to os.Stdout
}

// Result summarizes a pipeline run.
type Result struct {
	Tracks    []*model.Track
	Completed int
	Skipped   int
	Failed    int
}

// Service runs the sequential download/convert pipeline.
type Service struct {
	fetcher   Fetcher
	converter Converter
	parser    PlaylistParser
	opts      Options
}

// NewService creates a new pipeline service
func NewService(fetcher Fetcher, converter Converter, parser PlaylistParser, opts Options) *Service {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.MaxArtists <= 0 {
		opts.MaxArtists = metadata.DefaultMaxArtists
	}
	return &Service{
		fetcher:   fetcher,
		converter: converter,
		parser:    parser,
		opts:      opts,
	}
}

// Run processes a video or playlist URL. Per-track errors are recorded and
// skipped; an error is returned only for fatal conditions or when no track
// could be processed at all.
func (s *Service) Run(ctx context.Context, rawURL string) (*Result, error) {
	if err := platform.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	if err := platform.CreateDirectoryIfNotExists(s.opts.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tracks, err := s.collectTracks(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	result := &Result{Tracks: tracks}
	for i, track := range tracks {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		s.processTrack(ctx, track, i+1, len(tracks))

		switch track.Status {
		case model.TrackStatusCompleted:
			result.Completed++
		case model.TrackStatusSkipped:
			result.Skipped++
		default:
			result.Failed++
		}
	}

	if result.Completed+result.Skipped == 0 && len(tracks) > 0 {
		return result, fmt.Errorf("no tracks processed successfully")
	}
	return result, nil
}

// collectTracks expands a playlist URL into its entries, or wraps a single
// video URL into a one-track list.
func (s *Service) collectTracks(ctx context.Context, rawURL string) ([]*model.Track, error) {
	if platform.IsPlaylistURL(rawURL) {
		playlist, err := s.parser.ParsePlaylist(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse playlist: %w", err)
		}
		s.printf("%d tracks found in this playlist.\n", playlist.TotalTracks())
		return playlist.Tracks, nil
	}

	s.printf("Single video detected.\n")
	return []*model.Track{{
		ID:     uuid.NewString(),
		URL:    rawURL,
		Status: model.TrackStatusPending,
	}}, nil
}

// processTrack runs the full pipeline for one track. Errors are recorded on
// the track; processing always continues with the next one.
func (s *Service) processTrack(ctx context.Context, track *model.Track, index, total int) {
	track.StartedAt = time.Now()
	track.Status = model.TrackStatusFetching

	info, err := s.fetcher.Video(ctx, track.URL)
	if err != nil {
		track.MarkError(err)
		if fetch.IsUnavailable(err) {
			s.errorf("[%d/%d] %s: unavailable, skipping\n", index, total, track.DisplayName())
		} else {
			s.errorf("[%d/%d] %s: %v\n", index, total, track.DisplayName(), err)
		}
		return
	}
	track.VideoID = info.ID

	tags := s.normalizeTags(info)
	track.Artist = tags.Artist
	track.Title = tags.Title

	outputPath := s.outputPath(tags)
	if _, err := os.Stat(outputPath); err == nil {
		track.Status = model.TrackStatusSkipped
		track.OutputPath = outputPath
		track.FinishedAt = time.Now()
		s.printf("[%d/%d] %s: already exists, skipping\n", index, total, track.DisplayName())
		return
	}

	tempPath := s.tempPath()
	defer os.Remove(tempPath)

	track.Status = model.TrackStatusDownloading
	if _, err := s.fetcher.DownloadAudio(ctx, info, tempPath, s.stageProgress(track, index, total, "Downloading")); err != nil {
		track.MarkError(err)
		s.errorf("\n[%d/%d] %s: %v\n", index, total, track.DisplayName(), err)
		return
	}

	track.Status = model.TrackStatusConverting
	req := convert.Request{
		InputPath:  tempPath,
		OutputPath: outputPath,
		Bitrate:    s.opts.Bitrate,
		Tags:       tags,
	}
	if err := s.converter.Convert(ctx, req, s.stageProgress(track, index, total, "Converting")); err != nil {
		track.MarkError(err)
		s.errorf("\n[%d/%d] %s: %v\n", index, total, track.DisplayName(), err)
		return
	}

	var fileSize int64
	if stat, err := os.Stat(outputPath); err == nil {
		fileSize = stat.Size()
	}
	track.MarkCompleted(outputPath, fileSize)
	s.printf("\r[%d/%d] %s: done%s\n", index, total, track.DisplayName(), clearLineSuffix)
}

// normalizeTags applies metadata normalization to the fetched video info.
// The channel author is the only artist source the extractor exposes.
func (s *Service) normalizeTags(info *fetch.VideoInfo) metadata.Tags {
	artist := metadata.NormalizeArtist(info.Author, "", s.opts.MaxArtists)
	title := metadata.NormalizeTitle(info.Title, artist)
	return metadata.Tags{Artist: artist, Title: title}
}

// outputPath builds the "Artist - Title.mp3" path inside the output dir.
func (s *Service) outputPath(tags metadata.Tags) string {
	filename := platform.SanitizeFilename(tags.Artist+" - "+tags.Title) + OutputExtension
	return filepath.Join(s.opts.OutputDir, filename)
}

// tempPath builds a unique hidden temp file path in the output directory so
// the final rename-free convert writes stay on one filesystem.
func (s *Service) tempPath() string {
	return filepath.Join(s.opts.OutputDir, TempFilePrefix+uuid.NewString()+TempFileSuffix)
}

// Trailing spaces overwrite leftovers from longer progress lines.
const clearLineSuffix = "          "

// stageProgress returns a progress callback printing carriage-return updated
// progress lines for the given stage.
func (s *Service) stageProgress(track *model.Track, index, total int, stage string) func(float64) {
	return func(fraction float64) {
		track.Progress = fraction
		if s.opts.Quiet {
			return
		}
		s.printf("\r%s %d/%d %3.0f%%", stage, index, total, fraction*100)
	}
}

// printf writes informational output; suppressed in quiet mode.
func (s *Service) printf(format string, args ...any) {
	if s.opts.Quiet {
		return
	}
	fmt.Fprintf(s.opts.Out, format, args...)
}

// errorf writes per-track failure messages; shown even in quiet mode.
func (s *Service) errorf(format string, args ...any) {
	fmt.Fprintf(s.opts.Out, format, args...)
}
