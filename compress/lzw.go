package compress

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	// each code occupies 2 bytes on the wire, most significant byte first
	lzwCodeBytes = 2
	// codes 0~255 are pre-seeded single-byte literals
	lzwLiteralCodes = 256
	// hard ceiling imposed by the 16-bit code width
	lzwMaxCodes = 65536
)

// NewLzwCompressor creates an adaptive dictionary-based LZW Compressor.
// maxTableSize caps the number of dictionary entries and must be in
// [256, 65536]; both sides of a stream must use the same table size since the
// stream itself carries no header to detect a mismatch.
func NewLzwCompressor(maxTableSize int) (Compressor, error) {
	if maxTableSize < lzwLiteralCodes || maxTableSize > lzwMaxCodes {
		return nil, errors.Wrapf(ErrConfiguration, "lzw table size %d not in [%d, %d]", maxTableSize, lzwLiteralCodes, lzwMaxCodes)
	}
	return &lzwCompressor{maxTableSize: maxTableSize}, nil
}

type lzwCompressor struct {
	maxTableSize int
}

// Compress encodes b as a flat stream of 16-bit big-endian codes. The
// dictionary is local to the call, so concurrent calls are safe.
func (lc *lzwCompressor) Compress(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, nil
	}

	dictionary := make(map[string]int, lzwLiteralCodes)
	for i := 0; i < lzwLiteralCodes; i++ {
		dictionary[string([]byte{byte(i)})] = i
	}
	nextCode := lzwLiteralCodes

	c := make([]byte, 0, len(b))
	var w []byte
	for _, k := range b {
		wk := append(w, k)
		if _, ok := dictionary[string(wk)]; ok {
			// extend the match greedily
			w = wk
			continue
		}

		// emit the old match, then insert the new combination; this order
		// mirrors the decoder's one-step-behind growth
		code, ok := dictionary[string(w)]
		if !ok {
			return nil, errors.Wrapf(ErrCompression, "lzw: match %v has no code", w)
		}
		c = append(c, byte(code>>8), byte(code))

		if nextCode < lc.maxTableSize {
			dictionary[string(wk)] = nextCode
			nextCode++
		}
		w = []byte{k}
	}

	// flush the final pending match
	if len(w) > 0 {
		code, ok := dictionary[string(w)]
		if !ok {
			return nil, errors.Wrapf(ErrCompression, "lzw: match %v has no code", w)
		}
		c = append(c, byte(code>>8), byte(code))
	}

	return c, nil
}

// Decompress decodes a stream produced by Compress with the same table size
func (lc *lzwCompressor) Decompress(c []byte) ([]byte, error) {
	if len(c) == 0 {
		return nil, nil
	}
	if len(c)%lzwCodeBytes != 0 {
		return nil, errors.Wrapf(ErrDecompression, "lzw: stream length %d is not a multiple of %d", len(c), lzwCodeBytes)
	}

	dictionary := make([][]byte, lzwLiteralCodes, lc.maxTableSize)
	for i := 0; i < lzwLiteralCodes; i++ {
		dictionary[i] = []byte{byte(i)}
	}

	firstCode := int(binary.BigEndian.Uint16(c))
	if firstCode >= len(dictionary) {
		return nil, errors.Wrapf(ErrDecompression, "lzw: invalid first code %d", firstCode)
	}
	w := dictionary[firstCode]
	b := append([]byte(nil), w...)

	for pos := lzwCodeBytes; pos < len(c); pos += lzwCodeBytes {
		k := int(binary.BigEndian.Uint16(c[pos:]))

		var entry []byte
		if k < len(dictionary) {
			entry = dictionary[k]
		} else if k == len(dictionary) {
			// the encoder emitted the code it inserted one step ago, so the
			// entry is not in our table yet: it must be w + w[0]
			entry = appendByte(w, w[0])
		} else {
			return nil, errors.Wrapf(ErrDecompression, "lzw: invalid code %d for table of %d entries", k, len(dictionary))
		}

		b = append(b, entry...)
		if len(dictionary) < lc.maxTableSize {
			dictionary = append(dictionary, appendByte(w, entry[0]))
		}
		w = entry
	}

	return b, nil
}

// appendByte returns a fresh copy of s with k appended, never aliasing s
func appendByte(s []byte, k byte) []byte {
	e := make([]byte, 0, len(s)+1)
	e = append(e, s...)
	return append(e, k)
}
