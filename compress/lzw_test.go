package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func newLzw(t *testing.T, maxTableSize int) Compressor {
	cr, err := NewLzwCompressor(maxTableSize)
	if err != nil {
		t.Fatal(err)
	}
	return cr
}

func TestLzwTableSizeValidation(t *testing.T) {
	if _, err := NewLzwCompressor(255); errors.Cause(err) != ErrConfiguration {
		t.Errorf("expect configuration error for table size 255, got %v", err)
	}
	if _, err := NewLzwCompressor(65537); errors.Cause(err) != ErrConfiguration {
		t.Errorf("expect configuration error for table size 65537, got %v", err)
	}
	if _, err := NewLzwCompressor(256); err != nil {
		t.Errorf("table size 256 should be valid: %v", err)
	}
	if _, err := NewLzwCompressor(65536); err != nil {
		t.Errorf("table size 65536 should be valid: %v", err)
	}
}

func TestLzwRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0},
		{0xff},
		[]byte("A"),
		[]byte("AAAAAAAAAA"),
		[]byte("TOBEORNOTTOBEORTOBEORNOT"),
		[]byte("abcabcabcabcabcabcabc"),
		bytes.Repeat([]byte{0x00, 0xff}, 500),
	}
	for _, maxTableSize := range []int{256, 300, 4096, 65536} {
		cr := newLzw(t, maxTableSize)
		for _, b := range inputs {
			c, err := cr.Compress(b)
			if err != nil {
				t.Fatalf("table size %d: compress %v: %v", maxTableSize, b, err)
			}
			rb, err := cr.Decompress(c)
			if err != nil {
				t.Fatalf("table size %d: decompress %v: %v", maxTableSize, b, err)
			}
			if !bytes.Equal(rb, b) {
				t.Errorf("table size %d: round trip mismatch: %v != %v", maxTableSize, rb, b)
			}
		}
	}
}

func TestLzwDeterminism(t *testing.T) {
	cr := newLzw(t, DefaultLzwTableSize)
	b := make([]byte, 4096)
	for i := range b {
		b[i] = byte(rand.Intn(8))
	}
	c1, err := cr.Compress(b)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := cr.Compress(b)
	if err != nil {
		t.Fatal(err)
	}
	assert.T(t, bytes.Equal(c1, c2), "identical input must compress identically")
}

func TestLzwCapacityFreeze(t *testing.T) {
	// input long enough to exhaust small tables; matching must continue
	// against the frozen table and still round trip
	b := make([]byte, 64*1024)
	for i := range b {
		b[i] = byte(97 + rand.Intn(4))
	}
	for _, maxTableSize := range []int{256, 300, 4096} {
		cr := newLzw(t, maxTableSize)
		c, err := cr.Compress(b)
		if err != nil {
			t.Fatal(err)
		}
		rb, err := cr.Decompress(c)
		if err != nil {
			t.Fatal(err)
		}
		assert.T(t, bytes.Equal(rb, b), "capacity freeze round trip failed")
	}
}

func TestLzwSingleByteAlphabet(t *testing.T) {
	cr := newLzw(t, DefaultLzwTableSize)

	b := bytes.Repeat([]byte{0x41}, 1000)
	c, err := cr.Compress(b)
	if err != nil {
		t.Fatal(err)
	}
	assert.Tf(t, len(c) < len(b), "expect compression, got %d -> %d", len(b), len(c))
	rb, err := cr.Decompress(c)
	if err != nil {
		t.Fatal(err)
	}
	assert.T(t, bytes.Equal(rb, b), "round trip mismatch")

	// 10 bytes of A become 4 codes: A, AA, AAA, AAAA
	c, err = cr.Compress([]byte("AAAAAAAAAA"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 4*lzwCodeBytes, len(c))
	rb, err = cr.Decompress(c)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "AAAAAAAAAA", string(rb))
}

func TestLzwLiteralOnlyFallback(t *testing.T) {
	// 256 distinct bytes with a 256-entry table: no growth is possible, so
	// the stream degenerates to one code per input byte
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	cr := newLzw(t, 256)
	c, err := cr.Compress(b)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(b)*lzwCodeBytes, len(c))
	rb, err := cr.Decompress(c)
	if err != nil {
		t.Fatal(err)
	}
	assert.T(t, bytes.Equal(rb, b), "round trip mismatch")
}

func TestLzwDecodePendingCode(t *testing.T) {
	// "AAA" encodes to codes [65, 256]; code 256 equals the table length at
	// the moment it is read and must be reconstructed as w + w[0]
	cr := newLzw(t, DefaultLzwTableSize)
	c, err := cr.Compress([]byte("AAA"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []byte{0x00, 0x41, 0x01, 0x00}, c)
	rb, err := cr.Decompress(c)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "AAA", string(rb))
}

func TestLzwCorruptStream(t *testing.T) {
	cr := newLzw(t, DefaultLzwTableSize)

	// odd length
	if _, err := cr.Decompress([]byte{0x00, 0x41, 0x00}); errors.Cause(err) != ErrDecompression {
		t.Errorf("expect decompression error for odd length, got %v", err)
	}

	// first code beyond the freshly seeded table
	if _, err := cr.Decompress([]byte{0x01, 0x00}); errors.Cause(err) != ErrDecompression {
		t.Errorf("expect decompression error for first code 256, got %v", err)
	}

	// later code past the next unassigned code
	if _, err := cr.Decompress([]byte{0x00, 0x41, 0x01, 0x0a}); errors.Cause(err) != ErrDecompression {
		t.Errorf("expect decompression error for code 266, got %v", err)
	}
}
