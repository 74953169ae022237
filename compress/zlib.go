package compress

import (
	"bytes"

	"compress/zlib"

	"io/ioutil"

	"github.com/pkg/errors"
)

// NewZlibCompressor creates a Compressor over zlib streams. The zlib
// checksum makes corrupt streams observable during decompression.
func NewZlibCompressor(level int) (Compressor, error) {
	if level < zlib.HuffmanOnly || level > zlib.BestCompression {
		return nil, errors.Wrapf(ErrInvalidLevel, "zlib level %d not in [%d, %d]", level, zlib.HuffmanOnly, zlib.BestCompression)
	}
	return &zlibCompressor{level: level}, nil
}

type zlibCompressor struct {
	level int
}

func (zc *zlibCompressor) Compress(b []byte) ([]byte, error) {
	wb := bytes.NewBuffer(nil)
	writer, err := zlib.NewWriterLevel(wb, zc.level)
	if err != nil {
		return nil, errors.Wrapf(ErrCompression, "zlib: %v", err)
	}
	n, err := writer.Write(b)
	if err != nil {
		return nil, errors.Wrapf(ErrCompression, "zlib: %v", err)
	}
	if n != len(b) {
		return nil, errNotFullyCompressed
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(ErrCompression, "zlib: %v", err)
	}
	return wb.Bytes(), nil
}

func (zc *zlibCompressor) Decompress(c []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(c))
	if err != nil {
		return nil, errors.Wrapf(ErrDecompression, "zlib: %v", err)
	}
	defer reader.Close()

	b, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(ErrDecompression, "zlib: %v", err)
	}
	return b, nil
}
