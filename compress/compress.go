package compress

import (
	"compress/flate"

	"strings"

	"github.com/pkg/errors"
)

// DefaultLzwTableSize is the dictionary size used when the lzw format is
// constructed through the format factory
const DefaultLzwTableSize = 4096

// DefaultLevel selects the codec's own default compression level
const DefaultLevel = flate.DefaultCompression

// Compressor compresses and decompresses whole byte buffers
type Compressor interface {
	Compress(b []byte) ([]byte, error)
	Decompress(c []byte) ([]byte, error)
}

var (
	errNotFullyCompressed = errors.Wrapf(ErrCompression, "not fully compressed")
)

// NewCompressor creates a Compressor of the specified format using the
// format's default level
func NewCompressor(compressFormat string) (Compressor, error) {
	return NewCompressorLevel(compressFormat, DefaultLevel)
}

// NewCompressorLevel creates a Compressor of the specified format and level.
// The level applies to flate and zlib only and is ignored by the other
// formats.
func NewCompressorLevel(compressFormat string, level int) (Compressor, error) {
	compressFormat = strings.ToLower(compressFormat)
	if compressFormat == "lzw" {
		return NewLzwCompressor(DefaultLzwTableSize)
	} else if compressFormat == "flate" {
		return NewFlateCompressor(level)
	} else if compressFormat == "zlib" {
		return NewZlibCompressor(level)
	} else if compressFormat == "snappy" {
		return NewSnappyCompressor(), nil
	} else if compressFormat == "lz4" {
		return NewLz4Compressor(), nil
	} else {
		return nil, errors.Wrapf(ErrUnknownFormat, "unknown compress format: %s", compressFormat)
	}
}
