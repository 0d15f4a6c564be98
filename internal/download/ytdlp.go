package download

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/logger"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
)

// Default values for extractor output
const (
	DefaultPlaylistName = "Unknown Playlist"
	DefaultUploader     = "Unknown"
)

// Audio extraction settings
const (
	AudioFormat        = "mp3"
	AudioQualitySuffix = "K" // yt-dlp bitrate form, e.g. "192K"
	ItemURLTemplate    = "https://www.youtube.com/watch?v=%s"
)

// FetcherOptions configures the retrieval tool. The optional collaborators
// (cookie file, script runtime) are injected explicitly here rather than
// discovered ambiently, so tests can control presence and absence.
type FetcherOptions struct {
	Quality    string // MP3 bitrate in kbps, e.g. "192"
	CookieFile string // optional cookies.txt passed through to yt-dlp
	JSRuntime  string // optional script runtime binary used for access challenges
}

// YTDLPFetcher implements Fetcher on top of the yt-dlp wrapper library.
type YTDLPFetcher struct {
	quality    string
	cookieFile string
}

// NewYTDLPFetcher creates a fetcher encoding at the given bitrate. Optional
// collaborator availability is resolved once here: a configured but missing
// cookie file or script runtime downgrades the run (higher rate-limit risk)
// instead of failing it.
func NewYTDLPFetcher(opts FetcherOptions) *YTDLPFetcher {
	f := &YTDLPFetcher{quality: opts.Quality, cookieFile: opts.CookieFile}

	if opts.CookieFile != "" {
		if _, err := os.Stat(opts.CookieFile); err != nil {
			logger.Warn("cookie file not found, continuing without it",
				zap.String("path", opts.CookieFile))
			f.cookieFile = ""
		}
	}
	if opts.JSRuntime != "" {
		if _, err := exec.LookPath(opts.JSRuntime); err != nil {
			logger.Warn("script runtime not found, some items may hit rate limits",
				zap.String("runtime", opts.JSRuntime))
		}
	}

	return f
}

// PlaylistInfo resolves the playlist metadata and item list without
// downloading any media.
func (f *YTDLPFetcher) PlaylistInfo(ctx context.Context, url string) (*model.Playlist, error) {
	dl := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		FlatPlaylist().
		DumpSingleJSON()
	f.applyCookies(dl)

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve playlist: %w", err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to parse playlist info: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("playlist info empty for %s", url)
	}
	info := infos[0]

	playlist := &model.Playlist{
		ID:    info.ID,
		Title: DefaultPlaylistName,
		URL:   url,
	}
	if info.Title != nil && *info.Title != "" {
		playlist.Title = *info.Title
	}

	for _, entry := range info.Entries {
		if entry == nil {
			continue
		}
		playlist.Items = append(playlist.Items, itemFromEntry(entry))
	}

	return playlist, nil
}

// FetchItem downloads one item, extracts audio to MP3 at the configured
// bitrate, embeds basic metadata, and writes the thumbnail sidecar used
// later for cover art.
func (f *YTDLPFetcher) FetchItem(ctx context.Context, itemURL, outputTemplate string) error {
	dl := ytdlp.New().
		ExtractAudio().
		AudioFormat(AudioFormat).
		AudioQuality(f.quality + AudioQualitySuffix).
		EmbedMetadata().
		WriteThumbnail().
		ForceOverwrites().
		NoWarnings().
		Output(outputTemplate)
	f.applyCookies(dl)

	if _, err := dl.Run(ctx, itemURL); err != nil {
		return err
	}
	return nil
}

func (f *YTDLPFetcher) applyCookies(dl *ytdlp.Command) {
	if f.cookieFile != "" {
		dl.Cookies(f.cookieFile)
	}
}

func itemFromEntry(entry *ytdlp.ExtractedInfo) *model.PlaylistItem {
	item := &model.PlaylistItem{ID: entry.ID, Uploader: DefaultUploader}

	if entry.Title != nil {
		item.Title = *entry.Title
	}
	if entry.Duration != nil {
		item.Duration = int(*entry.Duration)
	}
	// Prefer the uploader name, fall back to the channel name.
	if entry.Uploader != nil && *entry.Uploader != "" {
		item.Uploader = *entry.Uploader
	} else if entry.Channel != nil && *entry.Channel != "" {
		item.Uploader = *entry.Channel
	}
	// Flat extraction reports a direct URL; otherwise rebuild from the ID.
	switch {
	case entry.WebpageURL != nil && *entry.WebpageURL != "":
		item.URL = *entry.WebpageURL
	case entry.URL != nil && *entry.URL != "":
		item.URL = *entry.URL
	default:
		item.URL = fmt.Sprintf(ItemURLTemplate, entry.ID)
	}

	return item
}
