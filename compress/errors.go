package compress

import "github.com/pkg/errors"

// Error categories of the compress package. Failures returned by Compressors
// and the format factory wrap one of these sentinels; use errors.Cause to
// discriminate.
var (
	// ErrCompression indicates an internal invariant was broken while
	// compressing, which is a defect rather than bad input
	ErrCompression = errors.New("compression failed")
	// ErrDecompression indicates a malformed, truncated or corrupt
	// compressed stream
	ErrDecompression = errors.New("decompression failed")
	// ErrInvalidLevel indicates a compression level outside the codec's
	// valid range
	ErrInvalidLevel = errors.New("invalid compression level")
	// ErrUnknownFormat indicates a compress format the factory does not know
	ErrUnknownFormat = errors.New("unknown compress format")
	// ErrConfiguration indicates an invalid codec construction parameter
	ErrConfiguration = errors.New("invalid compressor configuration")
)
