package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "unused %d", 1) })
	assert.PanicsWithValue(t, "assertion failed: byte 04/08 out of range", func() {
		Assert(false, "byte %s out of range", "04/08")
	})
	assert.PanicsWithValue(t, "assertion failed: plain", func() { Assert(false, "plain") })
}
