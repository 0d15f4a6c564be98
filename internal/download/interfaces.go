package download

import (
	"context"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
)

// Fetcher is the narrow contract over the external retrieval tool. It
// resolves a playlist into its items and fetches single items into encoded
// audio files.
type Fetcher interface {
	// PlaylistInfo resolves the playlist without downloading anything.
	PlaylistInfo(ctx context.Context, url string) (*model.Playlist, error)

	// FetchItem downloads one item and produces an encoded file following
	// outputTemplate (retrieval-tool output template syntax).
	FetchItem(ctx context.Context, itemURL, outputTemplate string) error
}
