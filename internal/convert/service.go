package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ytget/yt-mp3/internal/metadata"
)

// FFmpeg constants for MP3 transcoding
const (
	// Audio codec settings
	AudioCodec     = "libmp3lame"
	DefaultBitrate = "192k"

	// Output container
	OutputExtension = ".mp3"

	// Executable and I/O constants
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
	ProgressTimePrefix  = "out_time_us="
)

// ProgressFunc reports transcoding progress as a fraction between 0 and 1.
type ProgressFunc func(fraction float64)

// Request describes a single transcode: raw audio in, tagged MP3 out.
type Request struct {
	InputPath  string
	OutputPath string
	Bitrate    string
	Tags       metadata.Tags
}

// Service transcodes downloaded audio streams to MP3 via the external
// ffmpeg binary and embeds ID3 tags.
type Service struct {
	ffmpegPath  string
	ffprobePath string
}

// NewService creates a new conversion service
func NewService() *Service {
	return &Service{
		ffmpegPath:  FFmpegCommand,
		ffprobePath: FFprobeCommand,
	}
}

// VerifyInstalled checks that ffmpeg is available
func (s *Service) VerifyInstalled(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.ffmpegPath, "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Convert runs ffmpeg to produce the tagged MP3 file. Blocks until the
// process exits; a partial output file is removed on failure or cancel.
func (s *Service) Convert(ctx context.Context, req Request, progress ProgressFunc) error {
	if _, err := os.Stat(req.InputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", req.InputPath)
	}

	// Duration is only needed for progress reporting; a probe failure
	// degrades to a progress-less conversion.
	var duration float64
	if progress != nil {
		duration, _ = s.audioDuration(ctx, req.InputPath)
	}

	args := BuildFFmpegArgs(req)
	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	go monitorProgress(stderr, duration, progress)

	if err := cmd.Wait(); err != nil {
		os.Remove(req.OutputPath)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg transcoding failed: %w", err)
	}

	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func BuildFFmpegArgs(req Request) []string {
	bitrate := req.Bitrate
	if bitrate == "" {
		bitrate = DefaultBitrate
	}

	return []string{
		"-y",                // Overwrite output file
		"-i", req.InputPath, // Input file
		"-vn",                 // No video
		"-acodec", AudioCodec, // MP3 codec
		"-ab", bitrate, // Audio bitrate
		"-metadata", "artist=" + req.Tags.Artist,
		"-metadata", "title=" + req.Tags.Title,
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats", // No stats output
		req.OutputPath,
	}
}

// audioDuration gets the duration of an audio file using ffprobe
func (s *Service) audioDuration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, s.ffprobePath,
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	durationStr := strings.TrimSpace(string(output))
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return duration, nil
}

// monitorProgress parses ffmpeg progress output and forwards fractions
func monitorProgress(stderr io.ReadCloser, totalDuration float64, progress ProgressFunc) {
	defer stderr.Close()
	scanner := bufio.NewScanner(stderr)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fraction, ok := parseProgressLine(line, totalDuration)
		if !ok {
			continue
		}
		if progress != nil {
			progress(fraction)
		}
	}
}

// parseProgressLine extracts a progress fraction from an "out_time_us=" line.
func parseProgressLine(line string, totalDuration float64) (float64, bool) {
	if totalDuration <= 0 || !strings.HasPrefix(line, ProgressTimePrefix) {
		return 0, false
	}

	timeStr := strings.TrimPrefix(line, ProgressTimePrefix)
	timeMicroseconds, err := strconv.ParseInt(timeStr, 10, 64)
	if err != nil {
		return 0, false
	}

	fraction := (float64(timeMicroseconds) / 1e6) / totalDuration
	if fraction > 1.0 {
		fraction = 1.0
	}
	return fraction, true
}
