package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/concat"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/timeline"
)

// Info report layout
const (
	InfoGeneratedFormat = "2006-01-02 15:04:05"
)

// WriteInfo writes the plain-text run summary: source URL, playlist title,
// download counts, one line per retrieved track, and the concatenation
// summary when a merge was produced. concatResult may be nil.
func WriteInfo(path string, run *model.DownloadRun, concatResult *concat.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Playlist: %s\n", run.PlaylistTitle)
	fmt.Fprintf(&b, "Source: %s\n", run.PlaylistURL)
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format(InfoGeneratedFormat))
	fmt.Fprintf(&b, "Tracks: %d/%d downloaded\n", run.Downloaded(), run.TotalTracks)
	b.WriteString("\n")

	for _, track := range run.Tracks() {
		fmt.Fprintf(&b, "%2d. %s (%s)\n", track.TrackNumber, track.DisplayName(), timeline.FormatDuration(track.Duration))
	}

	if skipped := run.Skipped(); len(skipped) > 0 {
		b.WriteString("\nSkipped:\n")
		for _, res := range skipped {
			fmt.Fprintf(&b, "  - %s: %s\n", res.Item.Title, res.Reason)
		}
	}

	if concatResult != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Concatenated file: %s\n", filepath.Base(concatResult.OutputPath))
		fmt.Fprintf(&b, "Total duration: %s\n", timeline.FormatDuration(concatResult.TotalDuration))
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
