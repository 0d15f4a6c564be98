package concat

import (
	"bytes"
	"context"
	"os/exec"
)

// FFmpeg constants for the concat invocation
const (
	// Executable
	FFmpegCommand = "ffmpeg"

	// Concat demuxer settings
	ConcatFormat   = "concat"
	ConcatSafeMode = "0"

	// Audio codec settings. Output is always re-encoded at the requested
	// bitrate so the result is deterministic regardless of source codecs.
	AudioCodec = "libmp3lame"

	// Bitrate suffix appended to the quality value (e.g. "192" -> "192k")
	BitrateSuffix = "k"
)

// FFmpegMuxer implements Muxer by shelling out to ffmpeg's concat demuxer.
type FFmpegMuxer struct {
	ffmpegPath string
}

// NewFFmpegMuxer creates a muxer using the given ffmpeg binary. An empty
// path falls back to resolving "ffmpeg" on PATH.
func NewFFmpegMuxer(ffmpegPath string) *FFmpegMuxer {
	if ffmpegPath == "" {
		ffmpegPath = FFmpegCommand
	}
	return &FFmpegMuxer{ffmpegPath: ffmpegPath}
}

// BuildArgs builds the ffmpeg command arguments for one merge.
func (m *FFmpegMuxer) BuildArgs(manifestPath, outputPath, quality string) []string {
	return []string{
		"-f", ConcatFormat, // concat demuxer
		"-safe", ConcatSafeMode, // allow absolute paths in the manifest
		"-i", manifestPath, // input manifest
		"-c:a", AudioCodec, // audio codec
		"-b:a", quality + BitrateSuffix, // audio bitrate
		"-y",       // overwrite output file
		outputPath, // output file
	}
}

// Merge runs ffmpeg over the manifest. A non-zero exit status is returned as
// a *MuxerError carrying the captured stderr output.
func (m *FFmpegMuxer) Merge(ctx context.Context, manifestPath, outputPath, quality string) error {
	cmd := exec.CommandContext(ctx, m.ffmpegPath, m.BuildArgs(manifestPath, outputPath, quality)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &MuxerError{Err: err, Output: stderr.String()}
	}
	return nil
}
