package main

import (
	"math"

	"github.com/xiaonanln/gopress/compress"
	"github.com/xiaonanln/gopress/imgutil"
)

func info(path string) {
	data, err := imgutil.ReadFile(path)
	checkErrorOrQuit(err, "read input failed")

	entropy := compress.Entropy(data)
	// entropy bounds the size any lossless codec can reach for this histogram
	minSize := int(math.Ceil(entropy * float64(len(data)) / 8))

	showMsg("%s: %d bytes", path, len(data))
	showMsg("entropy: %.4f bits/byte", entropy)
	showMsg("entropy-implied minimum size: %d bytes", minSize)
}
