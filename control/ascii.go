package control

import (
	"fmt"

	"github.com/hnimtadd/ecma48/utils"
)

// Bytes with a fixed role in the ECMA-48 grammar. The comments give the
// position in the 7-bit code table in xx/yy notation.
const (
	Escape             byte = 0x1B // 01/11
	Introducer         byte = 0x5B // 05/11, follows ESC to form CSI
	Intermediate       byte = 0x20 // 02/00
	ParameterSeparator byte = 0x3B // 03/11

	ParameterLow  byte = 0x30 // 03/00
	ParameterHigh byte = 0x3F // 03/15
	FinalLow      byte = 0x40 // 04/00
	FinalHigh     byte = 0x7F // 07/15
	PrivateLow    byte = 0x70 // 07/00

	c0High          byte = 0x1F // 01/15
	c1Low           byte = 0x40 // 04/00
	c1High          byte = 0x5F // 05/15
	independentLow  byte = 0x60 // 06/00
	independentHigh byte = 0x7E // 07/14
)

// At converts the table notation col/row into the byte it names, so that
// 04/08 is At(4, 8) == 'H'. Only the 7-bit table exists: col must be in
// [0,7] and row in [0,15].
func At(col, row byte) byte {
	utils.Assert(col <= 7, "column %d out of the 7-bit code table", col)
	utils.Assert(row <= 15, "row %d out of the 7-bit code table", row)
	return col<<4 | row
}

// Notation renders b in col/row notation, e.g. 'H' is "04/08".
func Notation(b byte) string {
	return fmt.Sprintf("%02d/%02d", b>>4, b&0x0F)
}

// IsFinal reports whether b terminates a control sequence.
func IsFinal(b byte) bool {
	return b >= FinalLow && b <= FinalHigh
}

// IsParameter reports whether b may appear in the parameter string of a
// control sequence.
func IsParameter(b byte) bool {
	return b >= ParameterLow && b <= ParameterHigh
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// validParameter reports whether p only holds parameter bytes other than the
// separator.
func validParameter(p string) bool {
	for i := 0; i < len(p); i++ {
		if !IsParameter(p[i]) || p[i] == ParameterSeparator {
			return false
		}
	}
	return true
}
