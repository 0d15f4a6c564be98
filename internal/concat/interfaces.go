package concat

import "context"

// Muxer defines the interface for the external merge process. It reads the
// manifest of input files and writes one merged audio file at outputPath.
type Muxer interface {
	Merge(ctx context.Context, manifestPath, outputPath, quality string) error
}
