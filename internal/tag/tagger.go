package tag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"go.uber.org/zap"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/logger"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
)

// ID3 frame constants
const (
	TrackFrameID       = "TRCK"
	CommentLanguage    = "eng"
	CommentDescription = "Source URL"
	CoverDescription   = "Cover"
)

// Sidecar image extensions probed for cover art, in preference order.
var thumbnailExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// Result reports the outcome of tagging one file. Tagging failures never
// abort the pipeline; a skipped result carries the reason instead.
type Result struct {
	Path    string
	Skipped bool
	Reason  string
}

// Tags holds the frames read back by Verify.
type Tags struct {
	Title      string
	Artist     string
	Album      string
	Track      string
	SourceURL  string
	HasArtwork bool
}

// Tagger rewrites ID3v2 frames on encoded files.
type Tagger struct{}

// NewTagger creates a Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Apply writes title, artist, album, track number, source-URL comment, and
// front-cover art (when a sidecar thumbnail exists) to the track's file.
// Errors are logged and reported via the Result, never returned.
func (tg *Tagger) Apply(track *model.Track) Result {
	if err := tg.apply(track); err != nil {
		logger.Warn("tagging failed",
			zap.String("path", track.Path),
			zap.Error(err))
		return Result{Path: track.Path, Skipped: true, Reason: err.Error()}
	}
	return Result{Path: track.Path}
}

func (tg *Tagger) apply(track *model.Track) error {
	t, err := id3v2.Open(track.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", track.Path, err)
	}
	defer t.Close()

	t.SetDefaultEncoding(id3v2.EncodingUTF8)
	t.SetTitle(track.Title)
	t.SetArtist(track.Artist)
	t.SetAlbum(track.Album)
	t.AddTextFrame(TrackFrameID, t.DefaultEncoding(), track.TrackOf())

	if track.SourceURL != "" {
		t.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    CommentLanguage,
			Description: CommentDescription,
			Text:        track.SourceURL,
		})
	}

	if thumb := findThumbnail(track.Path); thumb != "" {
		if err := addCover(t, thumb); err != nil {
			// Missing or unreadable artwork does not invalidate the tag.
			logger.Debug("skipping cover art", zap.String("thumbnail", thumb), zap.Error(err))
		}
	}

	return t.Save()
}

// Verify reads back the frames written by Apply.
func (tg *Tagger) Verify(path string) (*Tags, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer t.Close()

	tags := &Tags{
		Title:  t.Title(),
		Artist: t.Artist(),
		Album:  t.Album(),
		Track:  t.GetTextFrame(TrackFrameID).Text,
	}

	for _, frame := range t.GetFrames(t.CommonID("Comments")) {
		if comment, ok := frame.(id3v2.CommentFrame); ok && comment.Description == CommentDescription {
			tags.SourceURL = comment.Text
		}
	}
	tags.HasArtwork = len(t.GetFrames(t.CommonID("Attached picture"))) > 0

	return tags, nil
}

// findThumbnail looks for a sidecar image with the same base name as the
// audio file, as left behind by the retrieval tool's thumbnail writer.
func findThumbnail(audioPath string) string {
	base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	for _, ext := range thumbnailExtensions {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func addCover(t *id3v2.Tag, thumbnailPath string) error {
	data, err := os.ReadFile(thumbnailPath)
	if err != nil {
		return err
	}

	mime, ok := mimeTypes[strings.ToLower(filepath.Ext(thumbnailPath))]
	if !ok {
		mime = "image/jpeg"
	}

	t.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mime,
		PictureType: id3v2.PTFrontCover,
		Description: CoverDescription,
		Picture:     data,
	})
	return nil
}
