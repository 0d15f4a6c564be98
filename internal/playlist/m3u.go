package playlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
)

// M3U format constants
const (
	M3UHeader    = "#EXTM3U"
	ExtInfPrefix = "#EXTINF"
)

// WriteM3U writes an extended M3U playlist for the given tracks. Entries use
// the bare file name since the playlist lives in the same directory as the
// audio files.
func WriteM3U(path string, tracks []*model.Track) error {
	var b strings.Builder
	b.WriteString(M3UHeader + "\n")

	for _, track := range tracks {
		duration := track.Duration
		if duration == 0 {
			duration = -1 // EXTINF convention for unknown length
		}
		fmt.Fprintf(&b, "%s:%d,%s\n", ExtInfPrefix, duration, track.DisplayName())
		b.WriteString(track.FileName() + "\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// M3UInfo summarizes a verified playlist file.
type M3UInfo struct {
	Path       string
	TrackCount int
}

// VerifyM3U checks that path holds a valid extended M3U playlist and counts
// its track entries.
func VerifyM3U(path string) (*M3UInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], M3UHeader) {
		return nil, fmt.Errorf("invalid m3u format in %s", path)
	}

	count := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			count++
		}
	}

	return &M3UInfo{Path: path, TrackCount: count}, nil
}
