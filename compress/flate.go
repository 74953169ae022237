package compress

import (
	"bytes"

	"compress/flate"

	"io/ioutil"

	"github.com/pkg/errors"
)

// NewFlateCompressor creates a Compressor over DEFLATE streams.
// Valid levels are flate.HuffmanOnly (-2) through flate.BestCompression (9);
// flate.DefaultCompression (-1) selects the library default.
func NewFlateCompressor(level int) (Compressor, error) {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return nil, errors.Wrapf(ErrInvalidLevel, "flate level %d not in [%d, %d]", level, flate.HuffmanOnly, flate.BestCompression)
	}
	return &flateCompressor{level: level}, nil
}

type flateCompressor struct {
	level int
}

func (fc *flateCompressor) Compress(b []byte) ([]byte, error) {
	wb := bytes.NewBuffer(nil)
	writer, err := flate.NewWriter(wb, fc.level)
	if err != nil {
		return nil, errors.Wrapf(ErrCompression, "flate: %v", err)
	}
	n, err := writer.Write(b)
	if err != nil {
		return nil, errors.Wrapf(ErrCompression, "flate: %v", err)
	}
	if n != len(b) {
		return nil, errNotFullyCompressed
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(ErrCompression, "flate: %v", err)
	}
	return wb.Bytes(), nil
}

func (fc *flateCompressor) Decompress(c []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(c))
	defer reader.Close()

	b, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(ErrDecompression, "flate: %v", err)
	}
	return b, nil
}
