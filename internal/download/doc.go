package download

// Package download retrieves playlist items through the external yt-dlp
// tool. Items are processed strictly one at a time with a pacing delay
// between remote fetches; per-item failures are reported as explicit skip
// results so the pipeline can continue with the tracks that succeeded.
