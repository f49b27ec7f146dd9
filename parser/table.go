package parser

import (
	"github.com/hnimtadd/ecma48/control"
	"github.com/hnimtadd/ecma48/control/c0"
	"github.com/hnimtadd/ecma48/control/c1"
	"github.com/hnimtadd/ecma48/control/independent"
)

// lookupTable maps a 7-bit byte to the single-byte or escape function it
// completes. A nil entry means the byte completes nothing.
type lookupTable [128]*control.ControlFunction

// Tables are generated once and only read afterwards, so streams can share
// them.
var (
	// C0 functions, indexed by their byte. ESC is not in the table since it
	// may introduce a longer function.
	c0Table = newLookupTable(c0.Codes)

	// Functions of the form ESC Fe and ESC Fs, indexed by the byte after
	// ESC. CSI is not in the table since it introduces a control sequence.
	escapeTable = newLookupTable(c1.Codes, independent.Codes)
)

func newLookupTable(sets ...[]control.ControlFunction) lookupTable {
	var t lookupTable
	for _, set := range sets {
		for i := range set {
			t.add(set[i])
		}
	}
	return t
}

func (t *lookupTable) add(f control.ControlFunction) {
	id := f.Identifier()
	t[id[len(id)-1]] = &f
}

func (t *lookupTable) get(b byte) (control.ControlFunction, bool) {
	if b >= 0x80 || t[b] == nil {
		return control.ControlFunction{}, false
	}
	return *t[b], true
}
