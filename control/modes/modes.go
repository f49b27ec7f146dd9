// Package modes lists the modes of ECMA-48 and builds the SET MODE and
// RESET MODE control sequences for them.
//
// Each mode has a set and a reset state. ECMA-48 deprecates their use; they
// are kept for devices that still need them.
package modes

import (
	"slices"
	"strconv"

	"github.com/hnimtadd/ecma48/control"
)

// Mode is a settable mode, identified by its parameter value in SM and RM.
type Mode struct {
	Name  string
	Value int
}

func entryForMode(name string, value int) Mode {
	return Mode{Name: name, Value: value}
}

var (
	GATM = entryForMode("GATM", 1)  // Guarded Area Transfer Mode
	KAM  = entryForMode("KAM", 2)   // Keyboard Action Mode
	CRM  = entryForMode("CRM", 3)   // Control Presentation Mode
	IRM  = entryForMode("IRM", 4)   // Insertion Replacement Mode
	SRTM = entryForMode("SRTM", 5)  // Status Report Transfer Mode
	ERM  = entryForMode("ERM", 6)   // Erasure Mode
	VEM  = entryForMode("VEM", 7)   // Line Editing Mode
	BDSM = entryForMode("BDSM", 8)  // Bi-Directional Support Mode
	DCSM = entryForMode("DCSM", 9)  // Device Component Select Mode
	HEM  = entryForMode("HEM", 10)  // Character Editing Mode
	PUM  = entryForMode("PUM", 11)  // Positioning Unit Mode
	SRM  = entryForMode("SRM", 12)  // Send/Receive Mode
	FEAM = entryForMode("FEAM", 13) // Format Effector Action Mode
	FETM = entryForMode("FETM", 14) // Format Effector Transfer Mode
	MATM = entryForMode("MATM", 15) // Multiple Area Transfer Mode
	TTM  = entryForMode("TTM", 16)  // Transfer Termination Mode
	SATM = entryForMode("SATM", 17) // Selected Area Transfer Mode
	TSM  = entryForMode("TSM", 18)  // Tabulation Stop Mode
	// 19 and 20 were withdrawn from the standard.
	GRCM = entryForMode("GRCM", 21) // Graphic Rendition Combination Mode
	ZDM  = entryForMode("ZDM", 22)  // Zero Default Mode

	// The full list of available entries, ordered by value.
	entries = []Mode{
		GATM, KAM, CRM, IRM, SRTM, ERM, VEM, BDSM, DCSM, HEM, PUM,
		SRM, FEAM, FETM, MATM, TTM, SATM, TSM, GRCM, ZDM,
	}
)

// All returns every mode, ordered by value.
func All() []Mode {
	return slices.Clone(entries)
}

// FromValue returns the mode selected by the parameter value v, or nil if
// no mode has that value.
func FromValue(v int) *Mode {
	for entry := range slices.Values(entries) {
		if entry.Value == v {
			return &entry
		}
	}
	return nil
}

func (m Mode) String() string {
	return m.Name
}

// Set returns SM for this mode.
func (m Mode) Set() control.ControlFunction {
	return Set(m)
}

// Reset returns RM for this mode.
func (m Mode) Reset() control.ControlFunction {
	return Reset(m)
}

// Set returns SET MODE (SM, CSI Ps... 06/08) for the given modes.
func Set(modes ...Mode) control.ControlFunction {
	return control.NewSequence(string(control.At(6, 8)), values(modes)...)
}

// Reset returns RESET MODE (RM, CSI Ps... 06/12) for the given modes.
func Reset(modes ...Mode) control.ControlFunction {
	return control.NewSequence(string(control.At(6, 12)), values(modes)...)
}

func values(modes []Mode) []string {
	if len(modes) == 0 {
		// keeps the rendering "CSI h" decodable to the same value
		return []string{""}
	}
	params := make([]string, 0, len(modes))
	for _, m := range modes {
		params = append(params, strconv.Itoa(m.Value))
	}
	return params
}
