package model

import (
	"fmt"
	"strings"
)

// Track represents one playlist item that has been retrieved and encoded to
// an audio file on disk. Instances are created once per successful download
// and are read-only afterwards.
type Track struct {
	Path        string // encoded audio file on disk
	Title       string
	Artist      string // uploader/channel name
	Album       string // playlist title
	TrackNumber int    // 1-indexed position within the playlist
	TotalTracks int
	Duration    int    // seconds
	SourceURL   string // original item URL, optional
}

// Validate checks the invariants enforced at the track boundary.
func (t *Track) Validate() error {
	if t.Duration < 0 {
		return fmt.Errorf("track %q has negative duration %d", t.Title, t.Duration)
	}
	if t.TrackNumber < 1 {
		return fmt.Errorf("track %q has invalid track number %d", t.Title, t.TrackNumber)
	}
	if t.TotalTracks < 1 {
		return fmt.Errorf("track %q has invalid total track count %d", t.Title, t.TotalTracks)
	}
	return nil
}

// DisplayName returns the "Artist - Title" form used in playlist files.
func (t *Track) DisplayName() string {
	artist := t.Artist
	if artist == "" {
		artist = "Unknown"
	}
	title := t.Title
	if title == "" {
		title = "Unknown"
	}
	return artist + " - " + title
}

// TrackOf returns the ID3 track frame value in "n/total" form.
func (t *Track) TrackOf() string {
	return fmt.Sprintf("%d/%d", t.TrackNumber, t.TotalTracks)
}

// FileName returns the base name of the encoded file.
func (t *Track) FileName() string {
	idx := strings.LastIndexAny(t.Path, "/\\")
	if idx < 0 {
		return t.Path
	}
	return t.Path[idx+1:]
}
