package gputils

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestRunPanicless(t *testing.T) {
	ran := false
	paniced := RunPanicless(func() {
		ran = true
	})
	assert.T(t, ran, "function did not run")
	assert.T(t, !paniced, "function should not panic")

	paniced = RunPanicless(func() {
		panic("boom")
	})
	assert.T(t, paniced, "panic not detected")
}

func TestRepeatUntilPanicless(t *testing.T) {
	count := 0
	RepeatUntilPanicless(func() {
		count++
		if count < 3 {
			panic("not yet")
		}
	})
	// must keep retrying past panics and stop on the first clean run
	assert.Equal(t, 3, count)
}

func TestRepeatUntilPaniclessCleanRun(t *testing.T) {
	count := 0
	RepeatUntilPanicless(func() {
		count++
	})
	assert.Equal(t, 1, count)
}
