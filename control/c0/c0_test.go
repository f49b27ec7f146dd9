package c0

import (
	"testing"

	"github.com/hnimtadd/ecma48/control"
	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	assert.Len(t, Codes, 31)

	seen := map[string]bool{}
	for _, code := range Codes {
		assert.Equal(t, control.KindC0, code.Kind())
		assert.False(t, code.Equal(ESC), "ESC needs lookahead and must not be listed")
		assert.False(t, seen[code.Identifier()], "duplicate code %#v", code)
		seen[code.Identifier()] = true
	}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "\x1b", ESC.String())
	assert.Equal(t, "\a", BEL.String())
	assert.Equal(t, "\r\n", CR.String()+LF.String())
	assert.Equal(t, "\x1b!@", AnnouncerSequence)
	assert.True(t, LS0.Equal(SI))
	assert.True(t, LS1.Equal(SO))
}

func TestMnemonic(t *testing.T) {
	assert.Equal(t, "ESC", ESC.Mnemonic())
	assert.Equal(t, "LF", LF.Mnemonic())
	assert.Equal(t, "NUL", NUL.Mnemonic())
}
