package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{"plain title", "My Song", 100, "My_Song"},
		{"invalid characters", `A/B\C:D*E?F"G<H>I|J`, 100, "A_B_C_D_E_F_G_H_I_J"},
		{"collapses underscores", "A  -  B___C", 100, "A_-_B_C"},
		{"trims underscores", "__Hello__", 100, "Hello"},
		{"caps length", "aaaaaaaaaa", 5, "aaaaa"},
		{"trims after cap", "aaaa_bbbb", 5, "aaaa"},
		{"zero max uses default", "Title", 0, "Title"},
		{"unicode preserved", "Café del Mar", 100, "Café_del_Mar"},
		{"multi-byte cap on rune boundary", "日本語のタイトル", 5, "日本語のタ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input, tt.maxLength)
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q, %d) = %q, want %q", tt.input, tt.maxLength, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilenameTruncationKeepsValidUTF8(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("日", 40), 80)

	if !utf8.ValidString(got) {
		t.Errorf("Expected valid UTF-8, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 40 {
		t.Errorf("Expected all 40 runes kept under the cap, got %d", n)
	}

	got = SanitizeFilename(strings.Repeat("日", 100), 80)
	if !utf8.ValidString(got) {
		t.Errorf("Expected valid UTF-8 after truncation, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 80 {
		t.Errorf("Expected 80 runes after truncation, got %d", n)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call on an existing directory is a no-op.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestFormatTrackNumber(t *testing.T) {
	tests := []struct {
		trackNum    int
		totalTracks int
		want        string
	}{
		{1, 9, "01"},
		{1, 12, "01"},
		{7, 99, "07"},
		{3, 120, "003"},
		{123, 999, "123"},
	}

	for _, tt := range tests {
		got := FormatTrackNumber(tt.trackNum, tt.totalTracks)
		if got != tt.want {
			t.Errorf("FormatTrackNumber(%d, %d) = %q, want %q", tt.trackNum, tt.totalTracks, got, tt.want)
		}
	}
}
