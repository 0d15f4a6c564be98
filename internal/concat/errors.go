package concat

import (
	"errors"
	"fmt"
)

// ErrNoTracks is returned by Plan when there is nothing to concatenate.
var ErrNoTracks = errors.New("no tracks to concatenate")

// MuxerError reports a failed external merge. Output carries the captured
// diagnostic output of the muxer process, which is its sole failure signal.
type MuxerError struct {
	Err    error
	Output string
}

// Error returns the error description including captured diagnostics.
func (e *MuxerError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("muxer failed: %v", e.Err)
	}
	return fmt.Sprintf("muxer failed: %v: %s", e.Err, e.Output)
}

// Unwrap returns the underlying process error.
func (e *MuxerError) Unwrap() error {
	return e.Err
}
