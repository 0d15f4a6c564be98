package tag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
)

func writeAudioFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, 512), 0644); err != nil {
		t.Fatalf("Failed to write fixture file: %v", err)
	}
	return path
}

func TestApplyAndVerify(t *testing.T) {
	dir := t.TempDir()
	path := writeAudioFixture(t, dir, "01-First_Song.mp3")

	track := &model.Track{
		Path:        path,
		Title:       "First Song",
		Artist:      "Some Uploader",
		Album:       "Evening Mix",
		TrackNumber: 1,
		TotalTracks: 12,
		SourceURL:   "https://example.com/watch?v=abc123",
	}

	result := NewTagger().Apply(track)
	if result.Skipped {
		t.Fatalf("Expected tagging to succeed, skipped with reason: %s", result.Reason)
	}

	tags, err := NewTagger().Verify(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tags.Title != "First Song" {
		t.Errorf("Expected title 'First Song', got %q", tags.Title)
	}
	if tags.Artist != "Some Uploader" {
		t.Errorf("Expected artist 'Some Uploader', got %q", tags.Artist)
	}
	if tags.Album != "Evening Mix" {
		t.Errorf("Expected album 'Evening Mix', got %q", tags.Album)
	}
	if tags.Track != "1/12" {
		t.Errorf("Expected track '1/12', got %q", tags.Track)
	}
	if tags.SourceURL != "https://example.com/watch?v=abc123" {
		t.Errorf("Expected source URL comment, got %q", tags.SourceURL)
	}
}

func TestApplyWithCoverArt(t *testing.T) {
	dir := t.TempDir()
	path := writeAudioFixture(t, dir, "02-Second_Song.mp3")

	// Sidecar thumbnail like the one the retrieval tool leaves behind.
	thumbPath := filepath.Join(dir, "02-Second_Song.jpg")
	if err := os.WriteFile(thumbPath, []byte{0xFF, 0xD8, 0xFF, 0xE0}, 0644); err != nil {
		t.Fatalf("Failed to write thumbnail fixture: %v", err)
	}

	track := &model.Track{
		Path:        path,
		Title:       "Second Song",
		Artist:      "Uploader",
		Album:       "Mix",
		TrackNumber: 2,
		TotalTracks: 2,
	}

	if result := NewTagger().Apply(track); result.Skipped {
		t.Fatalf("Expected tagging to succeed, skipped with reason: %s", result.Reason)
	}

	tags, err := NewTagger().Verify(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !tags.HasArtwork {
		t.Error("Expected artwork frame to be present")
	}
}

func TestApplyMissingFileIsSkippedNotFatal(t *testing.T) {
	track := &model.Track{
		Path:        filepath.Join(t.TempDir(), "absent.mp3"),
		Title:       "Ghost",
		Artist:      "Nobody",
		Album:       "Mix",
		TrackNumber: 1,
		TotalTracks: 1,
	}

	result := NewTagger().Apply(track)
	if !result.Skipped {
		t.Error("Expected a skipped result for a missing file")
	}
	if result.Reason == "" {
		t.Error("Expected a reason on the skipped result")
	}
}

func TestFindThumbnail(t *testing.T) {
	dir := t.TempDir()
	audio := writeAudioFixture(t, dir, "03-Third.mp3")

	if got := findThumbnail(audio); got != "" {
		t.Errorf("Expected no thumbnail, got %q", got)
	}

	png := filepath.Join(dir, "03-Third.png")
	if err := os.WriteFile(png, []byte("img"), 0644); err != nil {
		t.Fatalf("Failed to write thumbnail: %v", err)
	}

	if got := findThumbnail(audio); got != png {
		t.Errorf("Expected %q, got %q", png, got)
	}
}
