package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/ytget/yt-mp3/internal/app"
	"github.com/ytget/yt-mp3/internal/model"
)

// printSummary renders the per-track result table followed by a one-line
// completed/skipped/failed tally.
func printSummary(out io.Writer, result *app.Result) {
	fmt.Fprintln(out)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Track", "Status", "Size"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, track := range result.Tracks {
		table.Append([]string{
			strconv.Itoa(i + 1),
			track.DisplayName(),
			statusCell(track),
			sizeCell(track),
		})
	}
	table.Render()

	fmt.Fprintf(out, "\n%s completed, %s skipped, %s failed\n",
		color.GreenString("%d", result.Completed),
		color.YellowString("%d", result.Skipped),
		color.RedString("%d", result.Failed),
	)
}

func statusCell(track *model.Track) string {
	switch track.Status {
	case model.TrackStatusCompleted:
		return color.GreenString(track.Status.String())
	case model.TrackStatusSkipped:
		return color.YellowString(track.Status.String())
	case model.TrackStatusError:
		if track.LastError != "" {
			return color.RedString("%s (%s)", track.Status.String(), track.LastError)
		}
		return color.RedString(track.Status.String())
	default:
		return track.Status.String()
	}
}

func sizeCell(track *model.Track) string {
	if track.FileSize <= 0 {
		return "-"
	}
	return FormatFileSize(track.FileSize)
}

// FormatFileSize renders a byte count as a human-readable string.
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
