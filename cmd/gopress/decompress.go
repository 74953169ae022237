package main

import (
	"github.com/xiaonanln/gopress"
	"github.com/xiaonanln/gopress/config"
	"github.com/xiaonanln/gopress/imgutil"
)

func decompressFile(inputPath string, outputPath string) {
	c, err := imgutil.ReadFile(inputPath)
	checkErrorOrQuit(err, "read input failed")

	cr, err := gopress.NewConfiguredCompressor()
	checkErrorOrQuit(err, "create compressor failed")

	b, err := cr.Decompress(c)
	checkErrorOrQuit(err, "decompress failed")

	err = imgutil.WriteFile(outputPath, b)
	checkErrorOrQuit(err, "write output failed")

	showMsg("decompressed %s with %s: %d bytes -> %d bytes",
		inputPath, config.GetCompression().Algorithm, len(c), len(b))
}
