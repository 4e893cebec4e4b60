package convert

import (
	"context"
	"strings"
	"testing"

	"github.com/ytget/yt-mp3/internal/metadata"
)

func TestBuildFFmpegArgs(t *testing.T) {
	req := Request{
		InputPath:  "/tmp/in.webm",
		OutputPath: "/downloads/Daft Punk - One More Time.mp3",
		Bitrate:    "128k",
		Tags:       metadata.Tags{Artist: "Daft Punk", Title: "One More Time"},
	}

	args := BuildFFmpegArgs(req)

	expectedArgs := []string{
		"-y",
		"-i", "/tmp/in.webm",
		"-vn",
		"-acodec", AudioCodec,
		"-ab", "128k",
		"-metadata", "artist=Daft Punk",
		"-metadata", "title=One More Time",
		"-progress", "pipe:2",
		"-nostats",
		"/downloads/Daft Punk - One More Time.mp3",
	}

	if len(args) != len(expectedArgs) {
		t.Fatalf("Expected %d args, got %d: %v", len(expectedArgs), len(args), args)
	}

	for i, expected := range expectedArgs {
		if args[i] != expected {
			t.Errorf("Arg %d: expected %s, got %s", i, expected, args[i])
		}
	}
}

func TestBuildFFmpegArgs_DefaultBitrate(t *testing.T) {
	args := BuildFFmpegArgs(Request{InputPath: "/in", OutputPath: "/out.mp3"})

	found := false
	for i, arg := range args {
		if arg == "-ab" && i+1 < len(args) {
			found = true
			if args[i+1] != DefaultBitrate {
				t.Errorf("expected default bitrate %s, got %s", DefaultBitrate, args[i+1])
			}
		}
	}
	if !found {
		t.Error("expected -ab flag in args")
	}
}

func TestConvert_NonExistentInput(t *testing.T) {
	service := NewService()

	err := service.Convert(context.Background(), Request{
		InputPath:  "/path/to/nonexistent/file.webm",
		OutputPath: "/tmp/out.mp3",
	}, nil)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestParseProgressLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		duration float64
		expected float64
		ok       bool
	}{
		{
			name:     "halfway",
			line:     "out_time_us=30000000",
			duration: 60,
			expected: 0.5,
			ok:       true,
		},
		{
			name:     "capped at one",
			line:     "out_time_us=90000000",
			duration: 60,
			expected: 1.0,
			ok:       true,
		},
		{
			name:     "unrelated line ignored",
			line:     "frame=100",
			duration: 60,
			ok:       false,
		},
		{
			name:     "garbage value ignored",
			line:     "out_time_us=abc",
			duration: 60,
			ok:       false,
		},
		{
			name:     "zero duration ignored",
			line:     "out_time_us=30000000",
			duration: 0,
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fraction, ok := parseProgressLine(tt.line, tt.duration)
			if ok != tt.ok {
				t.Fatalf("parseProgressLine(%q) ok = %v, expected %v", tt.line, ok, tt.ok)
			}
			if ok && fraction != tt.expected {
				t.Errorf("parseProgressLine(%q) = %f, expected %f", tt.line, fraction, tt.expected)
			}
		})
	}
}

func TestNewService(t *testing.T) {
	service := NewService()

	if service.ffmpegPath != FFmpegCommand {
		t.Errorf("expected ffmpeg path %q, got %q", FFmpegCommand, service.ffmpegPath)
	}
	if service.ffprobePath != FFprobeCommand {
		t.Errorf("expected ffprobe path %q, got %q", FFprobeCommand, service.ffprobePath)
	}
}
