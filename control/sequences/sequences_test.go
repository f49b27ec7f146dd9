package sequences

import (
	"testing"

	"github.com/hnimtadd/ecma48/control"
	"github.com/hnimtadd/ecma48/control/modes"
	"github.com/stretchr/testify/assert"
)

func TestBuilders(t *testing.T) {
	tcs := []struct {
		name     string
		function control.ControlFunction
		expected string
		mnemonic string
	}{
		{name: "cursor position", function: CUP(5, 13), expected: "\x1b[5;13H", mnemonic: "CUP"},
		{name: "cursor position defaults", function: CUP(0, 0), expected: "\x1b[1;1H", mnemonic: "CUP"},
		{name: "cursor up default", function: CUU(0), expected: "\x1b[1A", mnemonic: "CUU"},
		{name: "cursor down", function: CUD(3), expected: "\x1b[3B", mnemonic: "CUD"},
		{name: "cursor back", function: CUB(2), expected: "\x1b[2D", mnemonic: "CUB"},
		{name: "erase in page", function: ED(ErasePageBeginToEnd), expected: "\x1b[2J", mnemonic: "ED"},
		{name: "erase in line default", function: EL(EraseLineActivePositionToEnd), expected: "\x1b[0K", mnemonic: "EL"},
		{name: "device attributes", function: DA(0), expected: "\x1b[0c", mnemonic: "DA"},
		{name: "device status report", function: DSR(RequestActivePositionReport), expected: "\x1b[6n", mnemonic: "DSR"},
		{name: "active position report", function: CPR(23, 6), expected: "\x1b[23;6R", mnemonic: "CPR"},
		{name: "tabulation clear", function: TBC(AllTabulationStops), expected: "\x1b[5g", mnemonic: "TBC"},
		{name: "sgr default", function: SGR(), expected: "\x1b[0m", mnemonic: "SGR"},
		{name: "sgr bold red", function: SGR(RenditionBold, RenditionForegroundRed), expected: "\x1b[1;31m", mnemonic: "SGR"},
		{name: "scroll left", function: SL(0), expected: "\x1b[1 @", mnemonic: "SL"},
		{name: "scroll right", function: SR(4), expected: "\x1b[4 A", mnemonic: "SR"},
		{name: "graphic size modification", function: GSM(0, 50), expected: "\x1b[100;50 B", mnemonic: "GSM"},
		{name: "print quality", function: SPQR(LowQualityHighSpeed), expected: "\x1b[2 X", mnemonic: "SPQR"},
		{name: "tabulation centred on character", function: TCC(3, 0), expected: "\x1b[3;32 c", mnemonic: "TCC"},
		{name: "character path", function: SCP(1, 0), expected: "\x1b[1;0 k", mnemonic: "SCP"},
		{name: "set mode", function: SM(modes.IRM), expected: "\x1b[4h", mnemonic: "SM"},
		{name: "reset mode", function: RM(modes.KAM, modes.SRM), expected: "\x1b[2;12l", mnemonic: "RM"},
		{name: "repeat", function: REP(7), expected: "\x1b[7b", mnemonic: "REP"},
		{name: "reversed string", function: SRS(ReversedStringStart), expected: "\x1b[1[", mnemonic: "SRS"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, control.KindControlSequence, tc.function.Kind())
			assert.Equal(t, tc.expected, tc.function.String())
			assert.Equal(t, tc.mnemonic, tc.function.Mnemonic())
		})
	}
}

func TestBuildersAlwaysCarryParameters(t *testing.T) {
	for _, cf := range []control.ControlFunction{
		ICH(0), CHT(0), IL(0), DL(0), DCH(0), SU(0), SD(0), NP(0), PP(0), ECH(0),
		CVT(0), CBT(0), HPA(0), HPR(0), VPA(0), VPR(0), HPB(0), VPB(0), PPA(0),
		PPR(0), PPB(0), SACS(0), SRCS(0), SGR(), SM(), RM(),
	} {
		assert.NotEmpty(t, cf.Parameters(), cf.GoString())
	}
}

func TestIntermediateIdentifiers(t *testing.T) {
	assert.Equal(t, " @", SL(1).Identifier())
	assert.Equal(t, " k", SCP(0, 0).Identifier())
	assert.Equal(t, "H", CUP(1, 1).Identifier())
}
