package platform

// Package platform holds filesystem helpers shared by the pipeline stages:
// filename sanitization, directory creation, and track number formatting.
