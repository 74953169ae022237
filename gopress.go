package gopress

import (
	"strings"

	"github.com/xiaonanln/gopress/compress"
	"github.com/xiaonanln/gopress/config"
	"github.com/xiaonanln/gopress/imgutil"
)

// Compress compresses data using the specified compress format with its
// default settings
func Compress(format string, data []byte) ([]byte, error) {
	cr, err := compress.NewCompressor(format)
	if err != nil {
		return nil, err
	}
	return cr.Compress(data)
}

// Decompress decompresses data using the specified compress format with its
// default settings
func Decompress(format string, data []byte) ([]byte, error) {
	cr, err := compress.NewCompressor(format)
	if err != nil {
		return nil, err
	}
	return cr.Decompress(data)
}

// NewConfiguredCompressor creates the Compressor selected by the config file
func NewConfiguredCompressor() (compress.Compressor, error) {
	cc := config.GetCompression()
	if strings.ToLower(cc.Algorithm) == "lzw" {
		return compress.NewLzwCompressor(cc.LzwMaxTableSize)
	}
	return compress.NewCompressorLevel(cc.Algorithm, cc.Level)
}

// CompressImageFile decodes the image at inputPath to raw RGB bytes,
// compresses them with the configured Compressor and writes the result to
// outputPath
func CompressImageFile(inputPath string, outputPath string) error {
	rgb, err := imgutil.ReadImageRGB(inputPath)
	if err != nil {
		return err
	}

	cr, err := NewConfiguredCompressor()
	if err != nil {
		return err
	}
	c, err := cr.Compress(rgb)
	if err != nil {
		return err
	}

	return imgutil.WriteFile(outputPath, c)
}

// DecompressFile decompresses the file at inputPath with the configured
// Compressor and writes the raw bytes to outputPath. The stream carries no
// image dimensions, so the output is a flat RGB byte buffer.
func DecompressFile(inputPath string, outputPath string) error {
	c, err := imgutil.ReadFile(inputPath)
	if err != nil {
		return err
	}

	cr, err := NewConfiguredCompressor()
	if err != nil {
		return err
	}
	b, err := cr.Decompress(c)
	if err != nil {
		return err
	}

	return imgutil.WriteFile(outputPath, b)
}
