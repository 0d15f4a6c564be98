package model

// PlaylistItem represents a single remote item in a playlist, as reported by
// the retrieval tool before any download happens.
type PlaylistItem struct {
	ID       string
	Title    string
	Uploader string // uploader/channel name
	Duration int    // seconds, 0 when the extractor does not report one
	URL      string // resolvable item URL
}

// Playlist represents a remote playlist with its items.
type Playlist struct {
	ID    string
	Title string
	URL   string
	Items []*PlaylistItem
}

// TotalItems returns the number of items in the playlist.
func (p *Playlist) TotalItems() int {
	return len(p.Items)
}

// DownloadRun is the outcome of one playlist download: every item's fetch
// result, in playlist order, plus where the files ended up.
type DownloadRun struct {
	PlaylistTitle string
	PlaylistURL   string
	Dir           string // directory holding the encoded files
	TotalTracks   int    // items in the source playlist
	Results       []FetchResult
}

// Tracks returns the successfully downloaded tracks in playlist order.
func (r *DownloadRun) Tracks() []*Track {
	tracks := make([]*Track, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Status.OK() && res.Track != nil {
			tracks = append(tracks, res.Track)
		}
	}
	return tracks
}

// Downloaded returns the number of successfully retrieved items.
func (r *DownloadRun) Downloaded() int {
	n := 0
	for _, res := range r.Results {
		if res.Status.OK() {
			n++
		}
	}
	return n
}

// Skipped returns the results for items that failed retrieval.
func (r *DownloadRun) Skipped() []FetchResult {
	var skipped []FetchResult
	for _, res := range r.Results {
		if !res.Status.OK() {
			skipped = append(skipped, res)
		}
	}
	return skipped
}
