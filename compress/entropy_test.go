package compress

import (
	"bytes"
	"math"
	"testing"
)

func TestEntropy(t *testing.T) {
	if e := Entropy(nil); e != 0 {
		t.Errorf("empty data entropy should be 0, got %f", e)
	}
	if e := Entropy(bytes.Repeat([]byte{0x41}, 1000)); e != 0 {
		t.Errorf("single-symbol entropy should be 0, got %f", e)
	}

	uniform := make([]byte, 256)
	for i := range uniform {
		uniform[i] = byte(i)
	}
	if e := Entropy(uniform); math.Abs(e-8.0) > 1e-9 {
		t.Errorf("uniform 256-symbol entropy should be 8.0, got %f", e)
	}

	// two equiprobable symbols carry exactly one bit per byte
	if e := Entropy([]byte{0, 1, 0, 1}); math.Abs(e-1.0) > 1e-9 {
		t.Errorf("two-symbol entropy should be 1.0, got %f", e)
	}
}
