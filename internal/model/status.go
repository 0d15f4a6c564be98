package model

// FetchStatus represents the outcome of retrieving a single playlist item.
// An explicit status keeps skipped items visible to callers instead of
// silently dropping them.
type FetchStatus string

const (
	// FetchStatusDownloaded means the item was retrieved and encoded
	FetchStatusDownloaded FetchStatus = "Downloaded"

	// FetchStatusSkipped means retrieval failed and the item was skipped
	FetchStatusSkipped FetchStatus = "Skipped"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// OK returns true if the item was successfully downloaded
func (fs FetchStatus) OK() bool {
	return fs == FetchStatusDownloaded
}

// FetchResult pairs a playlist item with its retrieval outcome. Track is
// non-nil only when Status is FetchStatusDownloaded.
type FetchResult struct {
	Item   *PlaylistItem
	Track  *Track
	Status FetchStatus
	Reason string // failure description when skipped
	Err    error  // underlying failure when skipped, nil otherwise
}
