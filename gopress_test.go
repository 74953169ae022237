package gopress

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/xiaonanln/gopress/config"
	"github.com/xiaonanln/gopress/imgutil"
)

func init() {
	config.SetConfigFile("gopress.ini.sample")
}

func TestCompressDecompress(t *testing.T) {
	data := bytes.Repeat([]byte("gopress "), 1000)
	for _, format := range []string{"lzw", "flate", "zlib", "snappy", "lz4"} {
		c, err := Compress(format, data)
		if err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		t.Logf("format %s: %d -> %d bytes", format, len(data), len(c))

		b, err := Decompress(format, c)
		if err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		assert.T(t, bytes.Equal(data, b), "round trip mismatch")
	}
}

func TestCompressUnknownFormat(t *testing.T) {
	if _, err := Compress("bzip2", []byte("data")); err == nil {
		t.Errorf("expect error for unknown format")
	}
}

func TestNewConfiguredCompressor(t *testing.T) {
	cr, err := NewConfiguredCompressor()
	if err != nil {
		t.Fatal(err)
	}
	assert.T(t, cr != nil, "configured compressor is nil")
}

func TestCompressImageFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "test.png")
	writeTestPNG(t, imgPath, 32, 24)

	want, err := imgutil.ReadImageRGB(imgPath)
	if err != nil {
		t.Fatal(err)
	}

	compressedPath := filepath.Join(dir, "test.lzw")
	if err := CompressImageFile(imgPath, compressedPath); err != nil {
		t.Fatal(err)
	}

	rawPath := filepath.Join(dir, "test.rgb")
	if err := DecompressFile(compressedPath, rawPath); err != nil {
		t.Fatal(err)
	}

	got, err := imgutil.ReadFile(rawPath)
	if err != nil {
		t.Fatal(err)
	}
	assert.T(t, bytes.Equal(want, got), "decompressed RGB bytes mismatch")
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: byte(x * 3), G: byte(y * 5), B: byte(x ^ y), A: 255})
		}
	}

	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}
