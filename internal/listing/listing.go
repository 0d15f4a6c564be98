package listing

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/concat"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/timeline"
)

// Report layout constants
const (
	BannerWidth     = 80
	BannerChar      = "="
	HeaderTitle     = "TRACK LISTING"
	OrderTitle      = "TRACK ORDER"
	FooterLine      = "Generated by streamstofiles"
	GeneratedFormat = "2006-01-02 15:04:05"
)

// Render produces the human-readable track listing for one merge result:
// a header block with the playlist title, generation time and total
// duration, followed by one block per entry in merge order. For a shuffled
// merge this text is the only durable record of the order that was used.
func Render(result *concat.Result, playlistTitle string, generatedAt time.Time) string {
	banner := strings.Repeat(BannerChar, BannerWidth)

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString(HeaderTitle + "\n")
	b.WriteString(banner + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Playlist: %s\n", playlistTitle)
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format(GeneratedFormat))
	fmt.Fprintf(&b, "Total Duration: %s\n", timeline.FormatDuration(result.TotalDuration))
	b.WriteString("\n")
	b.WriteString(banner + "\n")
	b.WriteString(OrderTitle + "\n")
	b.WriteString(banner + "\n")
	b.WriteString("\n")

	for _, entry := range result.Entries {
		fmt.Fprintf(&b, "%3d. %s\n", entry.Position, entry.Title)
		fmt.Fprintf(&b, "     %s\n", entry.Interval())
		b.WriteString("\n")
	}

	b.WriteString(banner + "\n")
	b.WriteString(FooterLine + "\n")
	b.WriteString(banner + "\n")

	return b.String()
}

// Write renders the listing and saves it to path.
func Write(path string, result *concat.Result, playlistTitle string) error {
	return os.WriteFile(path, []byte(Render(result, playlistTitle, time.Now())), 0644)
}
