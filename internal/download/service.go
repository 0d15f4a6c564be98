package download

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/logger"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/platform"
)

// Retry defaults. A zero PaceDelay disables pacing.
const (
	DefaultMaxAttempts = 3
	DefaultBackoffBase = 2 * time.Second
)

// Output template extension placeholder (retrieval tool syntax)
const (
	OutputExtPlaceholder = ".%(ext)s"
	EncodedExtension     = ".mp3"
)

// Options configures a download run.
type Options struct {
	OutputDir   string
	PaceDelay   time.Duration // delay between successive remote fetches
	MaxAttempts int           // bounded retry count per item
	BackoffBase time.Duration // backoff grows linearly with the attempt number
}

// Service downloads a playlist item by item. Processing is strictly
// sequential: the remote source rate-limits aggressively and the encoder is
// CPU-bound, so parallel fan-out would add contention without throughput.
type Service struct {
	fetcher Fetcher
	opts    Options
	onItem  func(result model.FetchResult, index, total int)
}

// NewService creates a download service over the given fetcher.
func NewService(fetcher Fetcher, opts Options) *Service {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = DefaultBackoffBase
	}
	return &Service{fetcher: fetcher, opts: opts}
}

// SetItemCallback sets the callback invoked after each item completes,
// whether downloaded or skipped.
func (s *Service) SetItemCallback(callback func(result model.FetchResult, index, total int)) {
	s.onItem = callback
}

// DownloadPlaylist resolves the playlist and retrieves every item in order.
// Failed items are skipped with an explicit result; the run continues with
// the remaining tracks. On cancellation the results accumulated so far are
// returned together with the context error, leaving completed files intact.
func (s *Service) DownloadPlaylist(ctx context.Context, url string) (*model.DownloadRun, error) {
	info, err := s.fetcher.PlaylistInfo(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist info: %w", err)
	}

	title := info.Title
	if title == "" {
		title = DefaultPlaylistName
	}

	dir := filepath.Join(s.opts.OutputDir, platform.SanitizeFilename(title, platform.DefaultMaxNameLength))
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to create playlist directory: %w", err)
	}

	total := len(info.Items)
	run := &model.DownloadRun{
		PlaylistTitle: title,
		PlaylistURL:   url,
		Dir:           dir,
		TotalTracks:   total,
	}

	logger.Info("starting playlist download",
		zap.String("playlist", title),
		zap.Int("tracks", total),
		zap.String("dir", dir))

	for i, item := range info.Items {
		// Pace remote fetches only; local work is never delayed.
		if i > 0 && s.opts.PaceDelay > 0 {
			if err := sleepCtx(ctx, s.opts.PaceDelay); err != nil {
				return run, err
			}
		}
		if err := ctx.Err(); err != nil {
			return run, err
		}

		result := s.downloadItem(ctx, item, i+1, total, title, dir)

		// A cancellation mid-fetch produces a skip that only reflects the
		// interrupt, so it is dropped. A track that finished before the
		// cancel landed is recorded like any other.
		if ctx.Err() != nil && !result.Status.OK() {
			return run, ctx.Err()
		}

		run.Results = append(run.Results, result)
		if s.onItem != nil {
			s.onItem(result, i+1, total)
		}
		if err := ctx.Err(); err != nil {
			return run, err
		}
	}

	return run, nil
}

// downloadItem retrieves one item with bounded retry and builds its track
// record on success.
func (s *Service) downloadItem(ctx context.Context, item *model.PlaylistItem, trackIndex, total int, playlistTitle, dir string) model.FetchResult {
	base := platform.FormatTrackNumber(trackIndex, total) + "-" + platform.SanitizeFilename(item.Title, platform.TitleMaxNameLength)
	template := filepath.Join(dir, base+OutputExtPlaceholder)

	if err := s.fetchWithRetry(ctx, item.URL, template); err != nil {
		rerr := &RetrievalError{Title: item.Title, URL: item.URL, Err: err}
		logger.Warn("skipping item", zap.Int("index", trackIndex), zap.Error(rerr))
		return model.FetchResult{
			Item:   item,
			Status: model.FetchStatusSkipped,
			Reason: err.Error(),
			Err:    rerr,
		}
	}

	track := &model.Track{
		Path:        filepath.Join(dir, base+EncodedExtension),
		Title:       item.Title,
		Artist:      item.Uploader,
		Album:       playlistTitle,
		TrackNumber: trackIndex,
		TotalTracks: total,
		Duration:    item.Duration,
		SourceURL:   item.URL,
	}

	// Reject extractor output that breaks track invariants, such as a
	// negative duration, before it can reach the timeline.
	if err := track.Validate(); err != nil {
		logger.Warn("skipping item", zap.Int("index", trackIndex), zap.Error(err))
		return model.FetchResult{
			Item:   item,
			Status: model.FetchStatusSkipped,
			Reason: err.Error(),
			Err:    err,
		}
	}

	return model.FetchResult{Item: item, Track: track, Status: model.FetchStatusDownloaded}
}

// fetchWithRetry attempts one item up to MaxAttempts times with increasing
// backoff, the local answer to transient rate-limit errors. Anything still
// failing after the last attempt surfaces as a skip, not a retry loop.
func (s *Service) fetchWithRetry(ctx context.Context, itemURL, outputTemplate string) error {
	var lastErr error

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * s.opts.BackoffBase
			if err := sleepCtx(ctx, backoff); err != nil {
				return err
			}
			logger.Debug("retrying download",
				zap.String("url", itemURL),
				zap.Int("attempt", attempt))
		}

		err := s.fetcher.FetchItem(ctx, itemURL, outputTemplate)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return lastErr
}

// sleepCtx waits for d or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
