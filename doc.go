/*
Gopress is a lossless compression toolkit for images and raw byte buffers. It
provides a set of whole-buffer compressors behind one Compressor interface,
including an adaptive dictionary-based LZW codec, plus DEFLATE, zlib, snappy
and lz4 wrappers.

LZW Codec

The LZW codec is the core of gopress. It compresses a byte buffer into a flat
stream of fixed-width 16-bit big-endian codes with no header. Both sides seed
a dictionary with the 256 single-byte literals and grow it one entry per step
up to a configured maximum table size (4096 by default, 65536 at most), so the
decoder can reconstruct every dictionary entry without it ever being
transmitted. Encoder and decoder must be configured with the same table size;
a mismatch is not detectable from the stream.

Package gopress

The gopress package provides one-shot helpers over the compress package:

	c, err := gopress.Compress("lzw", data)
	b, err := gopress.Decompress("lzw", c)

and file-level operations driven by the config file:

	err := gopress.CompressImageFile("photo.png", "photo.lzw")
	err := gopress.DecompressFile("photo.lzw", "photo.rgb")

Configuration

Gopress uses `gopress.ini` as the default config file. The [compression]
section selects the algorithm, its level (flate/zlib) and the LZW maximum
table size; the [log] section controls log file, level and stderr echo.

*/
package gopress
