package download

import "fmt"

// RetrievalError reports a failed download of one playlist item. The item is
// skipped and the pipeline continues with the remaining tracks.
type RetrievalError struct {
	Title string
	URL   string
	Err   error
}

// Error returns the error description.
func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve %q (%s): %v", e.Title, e.URL, e.Err)
}

// Unwrap returns the underlying retrieval tool error.
func (e *RetrievalError) Unwrap() error {
	return e.Err
}
