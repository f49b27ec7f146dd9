// Package independent holds the independent control functions of ECMA-48,
// represented as ESC Fs with Fs from 06/00 to 07/14.
package independent

import "github.com/hnimtadd/ecma48/control"

var (
	DMI  = control.NewIndependent(control.At(6, 0))  // Disable Manual Input
	INT  = control.NewIndependent(control.At(6, 1))  // Interrupt
	EMI  = control.NewIndependent(control.At(6, 2))  // Enable Manual Input
	RIS  = control.NewIndependent(control.At(6, 3))  // Reset to Initial State
	CMD  = control.NewIndependent(control.At(6, 4))  // Coding Method Delimiter
	LS2  = control.NewIndependent(control.At(6, 14)) // Locking-Shift Two
	LS3  = control.NewIndependent(control.At(6, 15)) // Locking-Shift Three
	LS3R = control.NewIndependent(control.At(7, 12)) // Locking-Shift Three Right
	LS2R = control.NewIndependent(control.At(7, 13)) // Locking-Shift Two Right
	LS1R = control.NewIndependent(control.At(7, 14)) // Locking-Shift One Right
)

var Codes = []control.ControlFunction{DMI, INT, EMI, RIS, CMD, LS2, LS3, LS3R, LS2R, LS1R}
