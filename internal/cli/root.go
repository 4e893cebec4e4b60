package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-mp3/internal/app"
	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/convert"
	"github.com/ytget/yt-mp3/internal/fetch"
	"github.com/ytget/yt-mp3/internal/platform"
)

var (
	flagOutputDir  string
	flagBitrate    string
	flagConfigPath string
	flagMaxArtists int
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "yt-mp3 [url]",
	Short: "Download YouTube audio as tagged MP3 files",
	Long: `yt-mp3 downloads the audio track of a YouTube video or every entry of a
playlist, converts it to MP3 with ffmpeg and writes normalized artist/title
metadata into both the filename and the ID3 tags.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "directory for downloaded MP3 files")
	rootCmd.Flags().StringVarP(&flagBitrate, "bitrate", "b", "", "MP3 bitrate, e.g. 192k")
	rootCmd.Flags().StringVar(&flagConfigPath, "config", "", "path to the config file")
	rootCmd.Flags().IntVar(&flagMaxArtists, "max-artists", 0, "maximum number of artists kept in metadata")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress progress output")
}

// Execute runs the root command and reports failures on stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := platform.CheckFFmpeg(); err != nil {
		printFFmpegHelp(cmd)
		return err
	}

	rawURL, err := resolveURL(args)
	if err != nil {
		return err
	}
	if err := platform.ValidateURL(rawURL); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := app.NewService(
		fetch.NewService(0),
		convert.NewService(),
		platform.NewPlaylistParser(),
		app.Options{
			OutputDir:  cfg.Paths.DownloadDirectory,
			Bitrate:    cfg.Audio.Bitrate,
			MaxArtists: cfg.Audio.MaxArtists,
			Quiet:      flagQuiet,
			Out:        cmd.OutOrStdout(),
		},
	)

	result, runErr := service.Run(ctx, rawURL)
	if result != nil && len(result.Tracks) > 0 {
		printSummary(cmd.OutOrStdout(), result)
	}
	if runErr != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("interrupted")
		}
		return runErr
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := flagConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.Paths.DownloadDirectory = flagOutputDir
	}
	if cmd.Flags().Changed("bitrate") {
		cfg.Audio.Bitrate = flagBitrate
	}
	if cmd.Flags().Changed("max-artists") {
		cfg.Audio.MaxArtists = flagMaxArtists
	}
	return cfg, nil
}

// resolveURL takes the URL from the positional argument or prompts for it
// interactively when none was given.
func resolveURL(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}

	var answer string
	prompt := &survey.Input{
		Message: "Enter YouTube video or playlist URL",
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func printFFmpegHelp(cmd *cobra.Command) {
	out := cmd.ErrOrStderr()
	color.New(color.FgYellow).Fprintln(out, "ffmpeg is required but was not found on this system.")
	fmt.Fprintln(out, "Install it with your package manager, for example:")
	fmt.Fprintln(out, "  macOS:          brew install ffmpeg")
	fmt.Fprintln(out, "  Debian/Ubuntu:  sudo apt install ffmpeg")
	fmt.Fprintln(out, "  Windows:        winget install ffmpeg")
}

// SetVersion wires the build version into the root command.
func SetVersion(version string) {
	rootCmd.Version = version
}
