package imgutil

import (
	"image"
	"os"

	// register the decodable image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"
	"github.com/xiaonanln/gopress/gpioutil"
)

// ReadImage reads and decodes the image file at path
func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}
	return img, nil
}

// ImageToRGB converts an image to raw 8-bit RGB bytes, row-major,
// 3 bytes per pixel
func ImageToRGB(img image.Image) []byte {
	bounds := img.Bounds()
	rgb := make([]byte, 0, bounds.Dx()*bounds.Dy()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rgb = append(rgb, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return rgb
}

// ReadImageRGB reads the image file at path as raw RGB bytes
func ReadImageRGB(path string) ([]byte, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	return ImageToRGB(img), nil
}

// ReadFile reads the whole file at path
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	data := make([]byte, fi.Size())
	if err := gpioutil.ReadAll(f, data); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// WriteFile writes data to the file at path, truncating it first
func WriteFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	if err := gpioutil.WriteAll(f, data); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}
