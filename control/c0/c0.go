// Package c0 holds the C0 control functions of ECMA-48.
//
// C0 functions are represented in 7-bit codes by the bit combinations
// 00/00 to 01/15 and need no prefix.
package c0

import "github.com/hnimtadd/ecma48/control"

// AnnouncerSequence announces the C0 set: ESC 02/01 04/00.
var AnnouncerSequence = string([]byte{control.Escape, control.At(2, 1), control.At(4, 0)})

var (
	NUL = control.NewC0(control.At(0, 0))  // Null (Caret: ^@, Char: \0)
	SOH = control.NewC0(control.At(0, 1))  // Start of Heading (Caret: ^A)
	STX = control.NewC0(control.At(0, 2))  // Start of Text (Caret: ^B)
	ETX = control.NewC0(control.At(0, 3))  // End of Text (Caret: ^C)
	EOT = control.NewC0(control.At(0, 4))  // End of Transmission (Caret: ^D)
	ENQ = control.NewC0(control.At(0, 5))  // Enquiry (Caret: ^E)
	ACK = control.NewC0(control.At(0, 6))  // Acknowledge (Caret: ^F)
	BEL = control.NewC0(control.At(0, 7))  // Bell (Caret: ^G, Char: \a)
	BS  = control.NewC0(control.At(0, 8))  // Backspace (Caret: ^H, Char: \b)
	HT  = control.NewC0(control.At(0, 9))  // Character Tabulation (Caret: ^I, Char: \t)
	LF  = control.NewC0(control.At(0, 10)) // Line Feed (Caret: ^J, Char: \n)
	VT  = control.NewC0(control.At(0, 11)) // Line Tabulation (Caret: ^K, Char: \v)
	FF  = control.NewC0(control.At(0, 12)) // Form Feed (Caret: ^L, Char: \f)
	CR  = control.NewC0(control.At(0, 13)) // Carriage Return (Caret: ^M, Char: \r)
	SO  = control.NewC0(control.At(0, 14)) // Shift-Out (Caret: ^N)
	SI  = control.NewC0(control.At(0, 15)) // Shift-In (Caret: ^O)
	DLE = control.NewC0(control.At(1, 0))  // Data Link Escape (Caret: ^P)
	DC1 = control.NewC0(control.At(1, 1))  // Device Control One (Caret: ^Q)
	DC2 = control.NewC0(control.At(1, 2))  // Device Control Two (Caret: ^R)
	DC3 = control.NewC0(control.At(1, 3))  // Device Control Three (Caret: ^S)
	DC4 = control.NewC0(control.At(1, 4))  // Device Control Four (Caret: ^T)
	NAK = control.NewC0(control.At(1, 5))  // Negative Acknowledge (Caret: ^U)
	SYN = control.NewC0(control.At(1, 6))  // Synchronous Idle (Caret: ^V)
	ETB = control.NewC0(control.At(1, 7))  // End of Transmission Block (Caret: ^W)
	CAN = control.NewC0(control.At(1, 8))  // Cancel (Caret: ^X)
	EM  = control.NewC0(control.At(1, 9))  // End of Medium (Caret: ^Y)
	SUB = control.NewC0(control.At(1, 10)) // Substitute (Caret: ^Z)
	ESC = control.NewC0(control.At(1, 11)) // Escape (Caret: ^[)
	IS4 = control.NewC0(control.At(1, 12)) // Information Separator Four, FS
	IS3 = control.NewC0(control.At(1, 13)) // Information Separator Three, GS
	IS2 = control.NewC0(control.At(1, 14)) // Information Separator Two, RS
	IS1 = control.NewC0(control.At(1, 15)) // Information Separator One, US

	// Locking-Shift Zero, the name of SI in an 8-bit environment.
	LS0 = SI
	// Locking-Shift One, the name of SO in an 8-bit environment.
	LS1 = SO
)

// Codes lists every C0 function except ESC. These are recognized from a
// single byte; ESC may start a longer function and needs lookahead.
var Codes = []control.ControlFunction{
	NUL, SOH, STX, ETX, EOT, ENQ, ACK, BEL, BS, HT, LF, VT, FF, CR, SO, SI,
	DLE, DC1, DC2, DC3, DC4, NAK, SYN, ETB, CAN, EM, SUB, IS4, IS3, IS2, IS1,
}
