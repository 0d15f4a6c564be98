package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackValidate(t *testing.T) {
	valid := &Track{Title: "Song", TrackNumber: 1, TotalTracks: 10, Duration: 180}
	assert.NoError(t, valid.Validate())

	zeroDuration := &Track{Title: "Song", TrackNumber: 1, TotalTracks: 1, Duration: 0}
	assert.NoError(t, zeroDuration.Validate())

	negative := &Track{Title: "Song", TrackNumber: 1, TotalTracks: 1, Duration: -1}
	assert.Error(t, negative.Validate())

	badNumber := &Track{Title: "Song", TrackNumber: 0, TotalTracks: 1, Duration: 10}
	assert.Error(t, badNumber.Validate())

	badTotal := &Track{Title: "Song", TrackNumber: 1, TotalTracks: 0, Duration: 10}
	assert.Error(t, badTotal.Validate())
}

func TestTrackDisplayName(t *testing.T) {
	track := &Track{Title: "First Song", Artist: "Some Uploader"}
	assert.Equal(t, "Some Uploader - First Song", track.DisplayName())

	anonymous := &Track{Title: "First Song"}
	assert.Equal(t, "Unknown - First Song", anonymous.DisplayName())

	untitled := &Track{Artist: "Some Uploader"}
	assert.Equal(t, "Some Uploader - Unknown", untitled.DisplayName())
}

func TestTrackTrackOf(t *testing.T) {
	track := &Track{TrackNumber: 3, TotalTracks: 12}
	assert.Equal(t, "3/12", track.TrackOf())
}

func TestTrackFileName(t *testing.T) {
	assert.Equal(t, "01-Song.mp3", (&Track{Path: "/music/mix/01-Song.mp3"}).FileName())
	assert.Equal(t, "01-Song.mp3", (&Track{Path: `C:\music\01-Song.mp3`}).FileName())
	assert.Equal(t, "01-Song.mp3", (&Track{Path: "01-Song.mp3"}).FileName())
}

func TestDownloadRunCounts(t *testing.T) {
	run := &DownloadRun{
		TotalTracks: 3,
		Results: []FetchResult{
			{Track: &Track{Title: "A"}, Status: FetchStatusDownloaded},
			{Item: &PlaylistItem{Title: "B"}, Status: FetchStatusSkipped, Reason: "unavailable"},
			{Track: &Track{Title: "C"}, Status: FetchStatusDownloaded},
		},
	}

	assert.Equal(t, 2, run.Downloaded())
	assert.Len(t, run.Tracks(), 2)
	assert.Len(t, run.Skipped(), 1)
	assert.Equal(t, "A", run.Tracks()[0].Title)
	assert.Equal(t, "C", run.Tracks()[1].Title)
	assert.Equal(t, "unavailable", run.Skipped()[0].Reason)
}

func TestFetchStatus(t *testing.T) {
	assert.True(t, FetchStatusDownloaded.OK())
	assert.False(t, FetchStatusSkipped.OK())
	assert.Equal(t, "Downloaded", FetchStatusDownloaded.String())
}
