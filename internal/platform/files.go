package platform

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Executable names resolved via PATH
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// FallbackFilename is used when sanitizing leaves an empty name
const FallbackFilename = "track"

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// SanitizeFilename replaces characters that are invalid in filenames with a
// hyphen and trims surrounding whitespace. An empty result falls back to a
// generic name.
func SanitizeFilename(name string) string {
	clean := invalidFilenameChars.ReplaceAllString(name, "-")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return FallbackFilename
	}
	return clean
}

// CheckFFmpeg verifies that ffmpeg is installed and reachable via PATH.
func CheckFFmpeg() error {
	if _, err := exec.LookPath(FFmpegCommand); err != nil {
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	return nil
}
