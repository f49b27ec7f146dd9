package sequences

import (
	"strconv"

	"github.com/hnimtadd/ecma48/control"
	"github.com/hnimtadd/ecma48/control/modes"
)

func final(col, row byte) string {
	return string([]byte{control.At(col, row)})
}

func intermediate(col, row byte) string {
	return string([]byte{control.Intermediate, control.At(col, row)})
}

func orDefault(n, def uint32) uint32 {
	if n == 0 {
		return def
	}
	return n
}

func build(identifier string, values ...uint32) control.ControlFunction {
	params := make([]string, len(values))
	for i, v := range values {
		params[i] = strconv.FormatUint(uint64(v), 10)
	}
	return control.NewSequence(identifier, params...)
}

// ICH Insert Character. Default 1.
func ICH(n uint32) control.ControlFunction { return build(final(4, 0), orDefault(n, 1)) }

// CUU Cursor Up. Default 1.
func CUU(n uint32) control.ControlFunction { return build(final(4, 1), orDefault(n, 1)) }

// CUD Cursor Down. Default 1.
func CUD(n uint32) control.ControlFunction { return build(final(4, 2), orDefault(n, 1)) }

// CUF Cursor Right. Default 1.
func CUF(n uint32) control.ControlFunction { return build(final(4, 3), orDefault(n, 1)) }

// CUB Cursor Left. Default 1.
func CUB(n uint32) control.ControlFunction { return build(final(4, 4), orDefault(n, 1)) }

// CNL Cursor Next Line. Default 1.
func CNL(n uint32) control.ControlFunction { return build(final(4, 5), orDefault(n, 1)) }

// CPL Cursor Preceding Line. Default 1.
func CPL(n uint32) control.ControlFunction { return build(final(4, 6), orDefault(n, 1)) }

// CHA Cursor Character Absolute. Default 1.
func CHA(n uint32) control.ControlFunction { return build(final(4, 7), orDefault(n, 1)) }

// CUP Cursor Position, moves the active position to line n, character m.
// Both default to 1.
func CUP(n, m uint32) control.ControlFunction {
	return build(final(4, 8), orDefault(n, 1), orDefault(m, 1))
}

// CHT Cursor Forward Tabulation. Default 1.
func CHT(n uint32) control.ControlFunction { return build(final(4, 9), orDefault(n, 1)) }

// ED Erase In Page.
func ED(s ErasePage) control.ControlFunction { return build(final(4, 10), uint32(s)) }

// EL Erase In Line.
func EL(s EraseLine) control.ControlFunction { return build(final(4, 11), uint32(s)) }

// IL Insert Line. Default 1.
func IL(n uint32) control.ControlFunction { return build(final(4, 12), orDefault(n, 1)) }

// DL Delete Line. Default 1.
func DL(n uint32) control.ControlFunction { return build(final(4, 13), orDefault(n, 1)) }

// EF Erase In Field.
func EF(s EraseField) control.ControlFunction { return build(final(4, 14), uint32(s)) }

// EA Erase In Area.
func EA(s EraseArea) control.ControlFunction { return build(final(4, 15), uint32(s)) }

// DCH Delete Character. Default 1.
func DCH(n uint32) control.ControlFunction { return build(final(5, 0), orDefault(n, 1)) }

// SEE Select Editing Extent. s selects page (0), line (1), field (2),
// qualified area (3) or relevant area (4).
func SEE(s uint32) control.ControlFunction { return build(final(5, 1), s) }

// CPR Active Position Report, line n and character m. Both default to 1.
func CPR(n, m uint32) control.ControlFunction {
	return build(final(5, 2), orDefault(n, 1), orDefault(m, 1))
}

// SU Scroll Up. Default 1.
func SU(n uint32) control.ControlFunction { return build(final(5, 3), orDefault(n, 1)) }

// SD Scroll Down. Default 1.
func SD(n uint32) control.ControlFunction { return build(final(5, 4), orDefault(n, 1)) }

// NP Next Page. Default 1.
func NP(n uint32) control.ControlFunction { return build(final(5, 5), orDefault(n, 1)) }

// PP Preceding Page. Default 1.
func PP(n uint32) control.ControlFunction { return build(final(5, 6), orDefault(n, 1)) }

// CTC Cursor Tabulation Control.
func CTC(s TabulationControl) control.ControlFunction { return build(final(5, 7), uint32(s)) }

// ECH Erase Character. Default 1.
func ECH(n uint32) control.ControlFunction { return build(final(5, 8), orDefault(n, 1)) }

// CVT Cursor Line Tabulation. Default 1.
func CVT(n uint32) control.ControlFunction { return build(final(5, 9), orDefault(n, 1)) }

// CBT Cursor Backward Tabulation. Default 1.
func CBT(n uint32) control.ControlFunction { return build(final(5, 10), orDefault(n, 1)) }

// SRS Start Reversed String.
func SRS(s ReversedString) control.ControlFunction { return build(final(5, 11), uint32(s)) }

// PTX Parallel Texts. s ranges from end (0) to end of phonetic
// annotation (5).
func PTX(s uint32) control.ControlFunction { return build(final(5, 12), s) }

// SDS Start Directed String. s is end (0), left-to-right (1) or
// right-to-left (2).
func SDS(s uint32) control.ControlFunction { return build(final(5, 13), s) }

// SIMD Select Implicit Movement Direction. s is normal (0) or opposite (1).
func SIMD(s uint32) control.ControlFunction { return build(final(5, 14), s) }

// HPA Character Position Absolute. Default 1.
func HPA(n uint32) control.ControlFunction { return build(final(6, 0), orDefault(n, 1)) }

// HPR Character Position Forward. Default 1.
func HPR(n uint32) control.ControlFunction { return build(final(6, 1), orDefault(n, 1)) }

// REP Repeat the preceding graphic character. Default 1.
func REP(n uint32) control.ControlFunction { return build(final(6, 2), orDefault(n, 1)) }

// DA Device Attributes. 0 requests the attributes of the receiving device.
func DA(n uint32) control.ControlFunction { return build(final(6, 3), n) }

// VPA Line Position Absolute. Default 1.
func VPA(n uint32) control.ControlFunction { return build(final(6, 4), orDefault(n, 1)) }

// VPR Line Position Forward. Default 1.
func VPR(n uint32) control.ControlFunction { return build(final(6, 5), orDefault(n, 1)) }

// HVP Character And Line Position, line n and character m. Both default
// to 1.
func HVP(n, m uint32) control.ControlFunction {
	return build(final(6, 6), orDefault(n, 1), orDefault(m, 1))
}

// TBC Tabulation Clear.
func TBC(s ClearTabulation) control.ControlFunction { return build(final(6, 7), uint32(s)) }

// SM Set Mode.
func SM(m ...modes.Mode) control.ControlFunction { return modes.Set(m...) }

// MC Media Copy. s ranges from 0 to 6.
func MC(s uint32) control.ControlFunction { return build(final(6, 9), s) }

// HPB Character Position Backward. Default 1.
func HPB(n uint32) control.ControlFunction { return build(final(6, 10), orDefault(n, 1)) }

// VPB Line Position Backward. Default 1.
func VPB(n uint32) control.ControlFunction { return build(final(6, 11), orDefault(n, 1)) }

// RM Reset Mode.
func RM(m ...modes.Mode) control.ControlFunction { return modes.Reset(m...) }

// SGR Select Graphic Rendition. Without arguments it selects the default
// rendition.
func SGR(s ...GraphicRendition) control.ControlFunction {
	if len(s) == 0 {
		return build(final(6, 13), uint32(RenditionDefault))
	}
	values := make([]uint32, len(s))
	for i, r := range s {
		values[i] = uint32(r)
	}
	return build(final(6, 13), values...)
}

// DSR Device Status Report.
func DSR(s DeviceStatusReport) control.ControlFunction { return build(final(6, 14), uint32(s)) }

// DAQ Define Area Qualification. s ranges from 0 to 11.
func DAQ(s uint32) control.ControlFunction { return build(final(6, 15), s) }

// SL Scroll Left. Default 1.
func SL(n uint32) control.ControlFunction { return build(intermediate(4, 0), orDefault(n, 1)) }

// SR Scroll Right. Default 1.
func SR(n uint32) control.ControlFunction { return build(intermediate(4, 1), orDefault(n, 1)) }

// GSM Graphic Size Modification, height h and width w in percent. Both
// default to 100.
func GSM(h, w uint32) control.ControlFunction {
	return build(intermediate(4, 2), orDefault(h, 100), orDefault(w, 100))
}

// GSS Graphic Size Selection.
func GSS(n uint32) control.ControlFunction { return build(intermediate(4, 3), n) }

// FNT Font Selection. s selects the primary (0) or an alternative font
// (1 to 9), t the font.
func FNT(s, t uint32) control.ControlFunction { return build(intermediate(4, 4), s, t) }

// TSS Thin Space Specification.
func TSS(n uint32) control.ControlFunction { return build(intermediate(4, 5), n) }

// JFY Justify. s ranges from 0 to 8.
func JFY(s uint32) control.ControlFunction { return build(intermediate(4, 6), s) }

// SPI Spacing Increment, line spacing l and character spacing c.
func SPI(l, c uint32) control.ControlFunction { return build(intermediate(4, 7), l, c) }

// QUAD ranges from 0 to 6.
func QUAD(s uint32) control.ControlFunction { return build(intermediate(4, 8), s) }

// SSU Select Size Unit. s ranges from 0 to 8.
func SSU(s uint32) control.ControlFunction { return build(intermediate(4, 9), s) }

// PFS Page Format Selection. s ranges from 0 to 15.
func PFS(s uint32) control.ControlFunction { return build(intermediate(4, 10), s) }

// SHS Select Character Spacing. s ranges from 0 to 6.
func SHS(s uint32) control.ControlFunction { return build(intermediate(4, 11), s) }

// SVS Select Line Spacing. s ranges from 0 to 9.
func SVS(s uint32) control.ControlFunction { return build(intermediate(4, 12), s) }

// IGS Identify Graphic Subrepertoire.
func IGS(n uint32) control.ControlFunction { return build(intermediate(4, 13), n) }

// IDCS Identify Device Control String. s is diagnostic (1) or dynamically
// redefinable character sets (2).
func IDCS(s uint32) control.ControlFunction { return build(intermediate(4, 15), s) }

// PPA Page Position Absolute. Default 1.
func PPA(n uint32) control.ControlFunction { return build(intermediate(5, 0), orDefault(n, 1)) }

// PPR Page Position Forward. Default 1.
func PPR(n uint32) control.ControlFunction { return build(intermediate(5, 1), orDefault(n, 1)) }

// PPB Page Position Backward. Default 1.
func PPB(n uint32) control.ControlFunction { return build(intermediate(5, 2), orDefault(n, 1)) }

// SPD Select Presentation Directions, direction s and scope t.
func SPD(s, t uint32) control.ControlFunction { return build(intermediate(5, 3), s, t) }

// DTA Dimension Text Area.
func DTA(n, m uint32) control.ControlFunction { return build(intermediate(5, 4), n, m) }

// SLH Set Line Home.
func SLH(n uint32) control.ControlFunction { return build(intermediate(5, 5), n) }

// SLL Set Line Limit.
func SLL(n uint32) control.ControlFunction { return build(intermediate(5, 6), n) }

// FNK Function Key.
func FNK(n uint32) control.ControlFunction { return build(intermediate(5, 7), n) }

// SPQR Select Print Quality And Rapidity.
func SPQR(s PrintQuality) control.ControlFunction { return build(intermediate(5, 8), uint32(s)) }

// SEF Sheet Eject And Feed, load l and stack s.
func SEF(l, s uint32) control.ControlFunction { return build(intermediate(5, 9), l, s) }

// PEC Presentation Expand Or Contract. s is normal (0), expanded (1) or
// condensed (2).
func PEC(s uint32) control.ControlFunction { return build(intermediate(5, 10), s) }

// SSW Set Space Width.
func SSW(n uint32) control.ControlFunction { return build(intermediate(5, 11), n) }

// SACS Set Additional Character Separation. Default 0.
func SACS(n uint32) control.ControlFunction { return build(intermediate(5, 12), n) }

// SAPV Select Alternative Presentation Variants. s ranges from 0 to 22.
func SAPV(s uint32) control.ControlFunction { return build(intermediate(5, 13), s) }

// STAB Selective Tabulation.
func STAB(n uint32) control.ControlFunction { return build(intermediate(5, 14), n) }

// GCC Graphic Character Combination. s ranges from 0 to 2.
func GCC(s uint32) control.ControlFunction { return build(intermediate(5, 15), s) }

// TATE Tabulation Aligned Trailing Edge.
func TATE(n uint32) control.ControlFunction { return build(intermediate(6, 0), n) }

// TALE Tabulation Aligned Leading Edge.
func TALE(n uint32) control.ControlFunction { return build(intermediate(6, 1), n) }

// TAC Tabulation Aligned Centred.
func TAC(n uint32) control.ControlFunction { return build(intermediate(6, 2), n) }

// TCC Tabulation Centred On Character, at tab stop n on character m.
// m defaults to 32, SPACE.
func TCC(n, m uint32) control.ControlFunction {
	return build(intermediate(6, 3), n, orDefault(m, 32))
}

// TSR Tabulation Stop Remove.
func TSR(n uint32) control.ControlFunction { return build(intermediate(6, 4), n) }

// SCO Select Character Orientation. s ranges from 0 to 7.
func SCO(s uint32) control.ControlFunction { return build(intermediate(6, 5), s) }

// SRCS Set Reduced Character Separation. Default 0.
func SRCS(n uint32) control.ControlFunction { return build(intermediate(6, 6), n) }

// SCS Set Character Spacing.
func SCS(n uint32) control.ControlFunction { return build(intermediate(6, 7), n) }

// SLS Set Line Spacing.
func SLS(n uint32) control.ControlFunction { return build(intermediate(6, 8), n) }

// SPH Set Page Home.
func SPH(n uint32) control.ControlFunction { return build(intermediate(6, 9), n) }

// SPL Set Page Limit.
func SPL(n uint32) control.ControlFunction { return build(intermediate(6, 10), n) }

// SCP Select Character Path, path s and scope t.
func SCP(s, t uint32) control.ControlFunction { return build(intermediate(6, 11), s, t) }
