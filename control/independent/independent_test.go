package independent

import (
	"testing"

	"github.com/hnimtadd/ecma48/control"
	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	assert.Len(t, Codes, 10)
	for _, code := range Codes {
		assert.Equal(t, control.KindIndependent, code.Kind())
	}
	assert.Equal(t, "\x1ba", INT.String())
	assert.Equal(t, "\x1b~", LS1R.String())
	assert.Equal(t, "RIS", RIS.Mnemonic())
}
