package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwhittlestone/tools-streamstofiles/internal/concat"
	"github.com/jonwhittlestone/tools-streamstofiles/internal/model"
)

func sampleTracks() []*model.Track {
	return []*model.Track{
		{
			Path:        "/music/mix/01-First_Song.mp3",
			Title:       "First Song",
			Artist:      "Some Uploader",
			TrackNumber: 1,
			TotalTracks: 2,
			Duration:    185,
		},
		{
			Path:        "/music/mix/02-Second_Song.mp3",
			Title:       "Second Song",
			Artist:      "Some Uploader",
			TrackNumber: 2,
			TotalTracks: 2,
			Duration:    0, // unknown
		},
	}
}

func TestWriteM3U(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u")

	require.NoError(t, WriteM3U(path, sampleTracks()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "#EXTM3U", lines[0])
	assert.Equal(t, "#EXTINF:185,Some Uploader - First Song", lines[1])
	assert.Equal(t, "01-First_Song.mp3", lines[2])
	assert.Equal(t, "#EXTINF:-1,Some Uploader - Second Song", lines[3])
	assert.Equal(t, "02-Second_Song.mp3", lines[4])
}

func TestWriteM3UEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u")

	require.NoError(t, WriteM3U(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#EXTM3U\n", string(data))
}

func TestVerifyM3U(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u")
	require.NoError(t, WriteM3U(path, sampleTracks()))

	info, err := VerifyM3U(path)
	require.NoError(t, err)
	assert.Equal(t, 2, info.TrackCount)
	assert.Equal(t, path, info.Path)
}

func TestVerifyM3UInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u")
	require.NoError(t, os.WriteFile(path, []byte("not a playlist\n"), 0644))

	_, err := VerifyM3U(path)
	assert.Error(t, err)
}

func TestVerifyM3UMissing(t *testing.T) {
	_, err := VerifyM3U(filepath.Join(t.TempDir(), "absent.m3u"))
	assert.Error(t, err)
}

func TestWriteInfo(t *testing.T) {
	tracks := sampleTracks()
	run := &model.DownloadRun{
		PlaylistTitle: "Evening Mix",
		PlaylistURL:   "https://example.com/playlist?list=PL123",
		TotalTracks:   3,
		Results: []model.FetchResult{
			{Track: tracks[0], Status: model.FetchStatusDownloaded},
			{Track: tracks[1], Status: model.FetchStatusDownloaded},
			{
				Item:   &model.PlaylistItem{Title: "Third Song"},
				Status: model.FetchStatusSkipped,
				Reason: "video unavailable",
			},
		},
	}
	result := &concat.Result{OutputPath: "/music/mix/Evening_Mix_complete.mp3", TotalDuration: 185}

	path := filepath.Join(t.TempDir(), "playlist_info.txt")
	require.NoError(t, WriteInfo(path, run, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "Playlist: Evening Mix")
	assert.Contains(t, text, "Source: https://example.com/playlist?list=PL123")
	assert.Contains(t, text, "Tracks: 2/3 downloaded")
	assert.Contains(t, text, " 1. Some Uploader - First Song (00:03:05)")
	assert.Contains(t, text, "Third Song: video unavailable")
	assert.Contains(t, text, "Concatenated file: Evening_Mix_complete.mp3")
	assert.Contains(t, text, "Total duration: 00:03:05")
}

func TestWriteInfoWithoutConcat(t *testing.T) {
	run := &model.DownloadRun{PlaylistTitle: "Mix", PlaylistURL: "https://example.com", TotalTracks: 0}

	path := filepath.Join(t.TempDir(), "playlist_info.txt")
	require.NoError(t, WriteInfo(path, run, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Concatenated file")
}
