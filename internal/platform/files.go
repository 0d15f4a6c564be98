package platform

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Filename limits
const (
	DefaultMaxNameLength = 100
	TitleMaxNameLength   = 80
)

var (
	invalidFilenameChars = regexp.MustCompile(`[/\\:*?"<>|]`)
	repeatedUnderscores  = regexp.MustCompile(`_+`)
)

// SanitizeFilename converts free-text titles into filesystem-safe names:
// invalid characters and spaces become underscores, runs of underscores
// collapse to one, leading/trailing underscores are trimmed, and the result
// is capped at maxLength characters.
func SanitizeFilename(name string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxNameLength
	}

	sanitized := invalidFilenameChars.ReplaceAllString(name, "_")
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	sanitized = repeatedUnderscores.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_")

	// Truncate on rune boundaries so multi-byte titles stay valid UTF-8.
	if runes := []rune(sanitized); len(runes) > maxLength {
		sanitized = strings.TrimRight(string(runes[:maxLength]), "_")
	}

	return sanitized
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FormatTrackNumber zero-pads a 1-indexed track number to the digit width of
// the total track count, e.g. (3, 12) -> "03", (3, 120) -> "003".
func FormatTrackNumber(trackNum, totalTracks int) string {
	digits := len(fmt.Sprintf("%d", totalTracks))
	if digits < 2 {
		digits = 2
	}
	return fmt.Sprintf("%0*d", digits, trackNum)
}
