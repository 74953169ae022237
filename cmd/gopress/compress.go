package main

import (
	"github.com/xiaonanln/gopress"
	"github.com/xiaonanln/gopress/config"
	"github.com/xiaonanln/gopress/imgutil"
)

func compressImage(inputPath string, outputPath string) {
	rgb, err := imgutil.ReadImageRGB(inputPath)
	checkErrorOrQuit(err, "read image failed")

	cr, err := gopress.NewConfiguredCompressor()
	checkErrorOrQuit(err, "create compressor failed")

	c, err := cr.Compress(rgb)
	checkErrorOrQuit(err, "compress failed")

	err = imgutil.WriteFile(outputPath, c)
	checkErrorOrQuit(err, "write output failed")

	if len(rgb) > 0 {
		showMsg("compressed %s with %s: %d bytes RGB -> %d bytes (%d%%)",
			inputPath, config.GetCompression().Algorithm, len(rgb), len(c), len(c)*100/len(rgb))
	} else {
		showMsg("compressed %s: image has no pixels", inputPath)
	}
}
