package compress

import (
	"bytes"

	"io/ioutil"

	"github.com/pierrec/lz4"
	"github.com/pkg/errors"
)

// NewLz4Compressor creates a Compressor over lz4 frame format
func NewLz4Compressor() Compressor {
	return &lz4Compressor{}
}

type lz4Compressor struct {
}

func (lc *lz4Compressor) Compress(b []byte) ([]byte, error) {
	wb := bytes.NewBuffer(nil)
	writer := lz4.NewWriter(wb)
	n, err := writer.Write(b)
	if err != nil {
		return nil, errors.Wrapf(ErrCompression, "lz4: %v", err)
	}
	if n != len(b) {
		return nil, errNotFullyCompressed
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(ErrCompression, "lz4: %v", err)
	}
	return wb.Bytes(), nil
}

func (lc *lz4Compressor) Decompress(c []byte) ([]byte, error) {
	reader := lz4.NewReader(bytes.NewReader(c))
	b, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(ErrDecompression, "lz4: %v", err)
	}
	return b, nil
}
