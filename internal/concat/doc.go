package concat

// Package concat plans and executes the merge of encoded tracks into one
// long-form audio file. The planner resolves the final order (as given, or a
// shuffled copy), writes the muxer manifest, delegates the physical merge to
// an external ffmpeg process, and returns the timestamp table bound to the
// exact order that was merged.
