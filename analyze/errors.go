package analyze

import "errors"

// Sentinel errors for input rejected at the analysis boundary. They are
// wrapped with detail at the call site; match with errors.Is.
var (
	ErrInvalidNamespace    = errors.New("unsupported annotation namespace")
	ErrInvalidCropDuration = errors.New("crop duration must be a finite positive number")
	ErrMalformedInterval   = errors.New("malformed event interval")
)
