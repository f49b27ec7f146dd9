// Package c1 holds the C1 control functions of ECMA-48.
//
// In a 7-bit environment C1 functions are represented as ESC Fe, where Fe
// is a bit combination from 04/00 to 05/15.
package c1

import "github.com/hnimtadd/ecma48/control"

var (
	// AnnouncerSequence announces the C1 set: ESC 02/06 04/00.
	AnnouncerSequence = string([]byte{control.Escape, control.At(2, 6), control.At(4, 0)})
	// AlternativeAnnouncerSequence is the alternative C1 announcer:
	// ESC 02/02 04/06.
	AlternativeAnnouncerSequence = string([]byte{control.Escape, control.At(2, 2), control.At(4, 6)})
)

var (
	BPH = control.NewC1(control.At(4, 2))  // Break Permitted Here
	NBH = control.NewC1(control.At(4, 3))  // No Break Here
	NEL = control.NewC1(control.At(4, 5))  // Next Line
	SSA = control.NewC1(control.At(4, 6))  // Start of Selected Area
	ESA = control.NewC1(control.At(4, 7))  // End of Selected Area
	HTS = control.NewC1(control.At(4, 8))  // Character Tabulation Set
	HTJ = control.NewC1(control.At(4, 9))  // Character Tabulation With Justification
	VTS = control.NewC1(control.At(4, 10)) // Line Tabulation Set
	PLD = control.NewC1(control.At(4, 11)) // Partial Line Forward
	PLU = control.NewC1(control.At(4, 12)) // Partial Line Backward
	RI  = control.NewC1(control.At(4, 13)) // Reverse Line Feed
	SS2 = control.NewC1(control.At(4, 14)) // Single-Shift Two
	SS3 = control.NewC1(control.At(4, 15)) // Single-Shift Three
	DCS = control.NewC1(control.At(5, 0))  // Device Control String
	PU1 = control.NewC1(control.At(5, 1))  // Private Use One
	PU2 = control.NewC1(control.At(5, 2))  // Private Use Two
	STS = control.NewC1(control.At(5, 3))  // Set Transmit State
	CCH = control.NewC1(control.At(5, 4))  // Cancel Character
	MW  = control.NewC1(control.At(5, 5))  // Message Waiting
	SPA = control.NewC1(control.At(5, 6))  // Start of Guarded Area
	EPA = control.NewC1(control.At(5, 7))  // End of Guarded Area
	SOS = control.NewC1(control.At(5, 8))  // Start of String
	SCI = control.NewC1(control.At(5, 10)) // Single Character Introducer
	CSI = control.NewC1(control.At(5, 11)) // Control Sequence Introducer
	ST  = control.NewC1(control.At(5, 12)) // String Terminator
	OSC = control.NewC1(control.At(5, 13)) // Operating System Command
	PM  = control.NewC1(control.At(5, 14)) // Privacy Message
	APC = control.NewC1(control.At(5, 15)) // Application Program Command
)

// Codes lists every C1 function except CSI, which introduces a control
// sequence rather than standing on its own.
var Codes = []control.ControlFunction{
	BPH, NBH, NEL, SSA, ESA, HTS, HTJ, VTS, PLD, PLU, RI, SS2, SS3, DCS, PU1,
	PU2, STS, CCH, MW, SPA, EPA, SOS, SCI, ST, OSC, PM, APC,
}
