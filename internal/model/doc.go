package model

// Package model defines domain data structures used across the app: tracks,
// playlists, and per-item fetch outcomes. Tracks are created once per
// successful download and treated as read-only by downstream stages.
