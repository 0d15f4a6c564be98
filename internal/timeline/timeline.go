package timeline

import (
	"fmt"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
)

// Time unit constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// Entry is the computed placement of one track inside a merged file.
// Position is the 1-indexed rank in the merge order, which is not the same
// as the track's playlist number once the order has been shuffled.
type Entry struct {
	Position int
	Title    string
	Start    int // seconds, inclusive
	End      int // seconds, exclusive
	Duration int // End - Start
}

// Interval returns the entry's formatted "[HH:MM:SS - HH:MM:SS]" span.
func (e Entry) Interval() string {
	return fmt.Sprintf("[%s - %s]", FormatDuration(e.Start), FormatDuration(e.End))
}

// Compute walks the given merge order with a running cursor starting at 0
// and emits one contiguous, non-overlapping entry per track. It performs no
// reordering; the order is decided by the caller. The second return value is
// the total duration in seconds (0 for an empty order).
func Compute(order []*model.Track) ([]Entry, int) {
	entries := make([]Entry, 0, len(order))
	cursor := 0

	for i, track := range order {
		entries = append(entries, Entry{
			Position: i + 1,
			Title:    track.Title,
			Start:    cursor,
			End:      cursor + track.Duration,
			Duration: track.Duration,
		})
		cursor += track.Duration
	}

	return entries, cursor
}

// FormatDuration formats seconds as "HH:MM:SS" with zero-padded two-digit
// minute and second fields. The hour field is not bounded: 100 hours renders
// as "100:00:00".
func FormatDuration(seconds int) string {
	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
