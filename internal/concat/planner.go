package concat

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/logger"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/timeline"
)

// Manifest file naming
const (
	ManifestPrefix    = "concat-"
	ManifestExtension = ".txt"
)

// Order selects how tracks are arranged in the merged file.
type Order string

const (
	// OrderSequential keeps the caller's track order unchanged
	OrderSequential Order = "sequential"

	// OrderShuffled merges a uniformly random permutation of the tracks.
	// The shuffle is deliberately unseeded: re-running the merge is the
	// intended way to get a different mix, and the generated listing is
	// the durable record of the order that was used.
	OrderShuffled Order = "shuffled"
)

// Result is the outcome of one merge operation. Entries and Order are
// positionally aligned: Entries[i] describes Order[i].
type Result struct {
	OutputPath    string
	Entries       []timeline.Entry
	TotalDuration int // seconds
	Order         []*model.Track
}

// Planner resolves the final track order, drives the external muxer, and
// binds the computed timestamp table to that exact order.
type Planner struct {
	muxer Muxer
}

// NewPlanner creates a planner backed by the given muxer.
func NewPlanner(muxer Muxer) *Planner {
	return &Planner{muxer: muxer}
}

// Plan merges the given tracks into one file at outputPath. mode decides the
// order; quality is the MP3 bitrate in kbps (e.g. "192"). The manifest file
// handed to the muxer is removed on every exit path, including muxer
// failure. An existing file at outputPath is overwritten.
func (p *Planner) Plan(ctx context.Context, tracks []*model.Track, mode Order, outputPath, quality string) (*Result, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	order := tracks
	if mode == OrderShuffled {
		order = shuffledCopy(tracks)
	}

	manifestPath := manifestPathFor(outputPath)
	if err := writeManifest(order, manifestPath); err != nil {
		return nil, fmt.Errorf("failed to write concat manifest: %w", err)
	}
	defer func() {
		if err := os.Remove(manifestPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to remove concat manifest", zap.String("path", manifestPath))
		}
	}()

	logger.Info("merging tracks",
		zap.Int("tracks", len(order)),
		zap.String("mode", string(mode)),
		zap.String("output", outputPath))

	if err := p.muxer.Merge(ctx, manifestPath, outputPath, quality); err != nil {
		return nil, err
	}

	entries, total := timeline.Compute(order)

	return &Result{
		OutputPath:    outputPath,
		Entries:       entries,
		TotalDuration: total,
		Order:         order,
	}, nil
}

// shuffledCopy returns a uniformly shuffled copy of tracks. The caller's
// slice is never mutated, so playlist-order semantics stay intact upstream.
func shuffledCopy(tracks []*model.Track) []*model.Track {
	order := make([]*model.Track, len(tracks))
	copy(order, tracks)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// manifestPathFor places the manifest next to the output file with a unique
// name, so concurrent invocations against the same directory cannot collide.
func manifestPathFor(outputPath string) string {
	name := ManifestPrefix + uuid.NewString() + ManifestExtension
	return filepath.Join(filepath.Dir(outputPath), name)
}

// writeManifest writes the ffmpeg concat demuxer manifest: one
// "file '<absolute path>'" line per track, in merge order.
func writeManifest(order []*model.Track, manifestPath string) error {
	var b strings.Builder
	for _, track := range order {
		abs, err := filepath.Abs(track.Path)
		if err != nil {
			return err
		}
		// Single quotes inside a quoted concat entry must be escaped as '\''
		escaped := strings.ReplaceAll(abs, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", escaped)
	}
	return os.WriteFile(manifestPath, []byte(b.String()), 0644)
}
