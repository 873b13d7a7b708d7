package model

// SourceMetadata describes one source file in the metadata catalog.
type SourceMetadata struct {
	Collection  string
	License     string
	DurationSec float64
}
