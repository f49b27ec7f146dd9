package control

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	assert.EqualValues(t, 0x1B, At(1, 11))
	assert.EqualValues(t, 'H', At(4, 8))
	assert.EqualValues(t, ';', At(3, 11))
	assert.EqualValues(t, 0x7F, At(7, 15))

	assert.Panics(t, func() { At(8, 0) })
	assert.Panics(t, func() { At(0, 16) })
}

func TestNotation(t *testing.T) {
	assert.Equal(t, "04/08", Notation('H'))
	assert.Equal(t, "00/07", Notation(0x07))
	assert.Equal(t, "02/00", Notation(' '))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "C0", KindC0.String())
	assert.Equal(t, "C1", KindC1.String())
	assert.Equal(t, "Control Sequence", KindControlSequence.String())
	assert.Equal(t, "Independent Control Function", KindIndependent.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestConstructorsRejectInvalidLiterals(t *testing.T) {
	assert.Panics(t, func() { NewC0(0x20) })
	assert.Panics(t, func() { NewC1(0x60) })
	assert.Panics(t, func() { NewC1(0x3F) })
	assert.Panics(t, func() { NewIndependent(0x7F) })
	assert.Panics(t, func() { NewIndependent(0x5F) })
	assert.Panics(t, func() { NewSequence("") })
	assert.Panics(t, func() { NewSequence("abc") })
	assert.Panics(t, func() { NewSequence("!H") })
	assert.Panics(t, func() { NewSequence("1") })
	assert.Panics(t, func() { NewSequence("H", "1;2") })
	assert.Panics(t, func() { NewSequence("H", "x") })

	assert.NotPanics(t, func() { NewSequence(" @", "1") })
	assert.NotPanics(t, func() { NewSequence("H", "", "13") })
}

func TestRender(t *testing.T) {
	tcs := []struct {
		name     string
		function ControlFunction
		expected string
	}{
		{name: "c0 bell", function: NewC0(0x07), expected: "\a"},
		{name: "c0 escape", function: NewC0(0x1B), expected: "\x1b"},
		{name: "c1 next line", function: NewC1('E'), expected: "\x1bE"},
		{name: "c1 csi", function: NewC1('['), expected: "\x1b["},
		{name: "independent interrupt", function: NewIndependent('a'), expected: "\x1ba"},
		{name: "cursor position", function: NewSequence("H", "5", "13"), expected: "\x1b[5;13H"},
		{name: "default field", function: NewSequence("H", "5", ""), expected: "\x1b[5;H"},
		{name: "no parameters", function: NewSequence("m"), expected: "\x1b[m"},
		{name: "intermediate byte", function: NewSequence(" @", "3"), expected: "\x1b[3 @"},
		{name: "zero value", function: ControlFunction{}, expected: ""},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.function.String())
			assert.Equal(t, []byte(tc.expected), tc.function.Bytes())
		})
	}
}

func TestParametersAreCopied(t *testing.T) {
	params := []string{"5", "13"}
	cf := NewSequence("H", params...)

	params[0] = "9"
	assert.Equal(t, []string{"5", "13"}, cf.Parameters())

	got := cf.Parameters()
	got[1] = "1"
	assert.Equal(t, []string{"5", "13"}, cf.Parameters())
	assert.Nil(t, NewC0(0x07).Parameters())
}

func TestEqual(t *testing.T) {
	a := NewSequence("H", "5", "13")
	b := NewSequence("H", []string{"5", "13"}...)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())

	assert.False(t, a.Equal(NewSequence("H", "5", "12")))
	assert.False(t, a.Equal(NewSequence("f", "5", "13")))
	assert.False(t, NewC1('E').Equal(NewSequence("E")))
	assert.NotEqual(t, a.Hash(), NewSequence("H", "13", "5").Hash())
	assert.NotEqual(t, NewC1('a'-0x20).Hash(), NewIndependent('a').Hash())

	// empty and missing parameter lists are the same list
	assert.True(t, NewSequence("m").Equal(NewSequence("m", []string{}...)))
	assert.Equal(t, NewSequence("m"), NewSequence("m", []string{}...))
}

func TestEqualString(t *testing.T) {
	tcs := []struct {
		name     string
		function ControlFunction
		same     string
		other    string
	}{
		{name: "c0", function: NewC0(0x1B), same: "\x1b", other: "\a"},
		{name: "c1", function: NewC1('['), same: "\x1b[", other: "\x1b]"},
		{name: "independent", function: NewIndependent('a'), same: "\x1ba", other: "\x1bb"},
		{name: "sequence", function: NewSequence("E", "4"), same: "\x1b[4E", other: "\x1b[3E"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.function.EqualString(tc.same))
			assert.False(t, tc.function.EqualString(tc.other))
			assert.False(t, tc.function.EqualString(tc.same+"x"))
		})
	}
}

func TestGoString(t *testing.T) {
	assert.Equal(t,
		`ControlFunction{Kind: C0, Function: "00/07", Parameters: []}`,
		fmt.Sprintf("%#v", NewC0(0x07)),
	)
	assert.Equal(t,
		`ControlFunction{Kind: Control Sequence, Function: "04/08", Parameters: ["1" "10"]}`,
		NewSequence("H", "1", "10").GoString(),
	)
	assert.Equal(t,
		`ControlFunction{Kind: Control Sequence, Function: "02/00 05/08", Parameters: ["0"]}`,
		NewSequence(" X", "0").GoString(),
	)
}

func TestPrivateUse(t *testing.T) {
	tcs := []struct {
		name       string
		identifier string
		params     []string
		expected   error
		rendered   string
	}{
		{name: "lowest private byte", identifier: "\x70", rendered: "\x1b[p"},
		{name: "highest private byte", identifier: "\x7f", params: []string{"1"}, rendered: "\x1b[1\x7f"},
		{name: "with intermediate", identifier: " u", params: []string{"0", ""}, rendered: "\x1b[0; u"},
		{name: "standard final byte", identifier: "\x40", expected: ErrInvalidPrivateUse},
		{name: "standard final byte with intermediate", identifier: " c", expected: ErrInvalidPrivateUse},
		{name: "three bytes", identifier: "  p", expected: ErrInvalidFunctionValue},
		{name: "empty", identifier: "", expected: ErrInvalidFunctionValue},
		{name: "wrong intermediate", identifier: "!p", expected: ErrInvalidIntermediateByte},
		{name: "non ascii", identifier: "ä", expected: ErrInvalidASCII},
		{name: "non ascii checked before length", identifier: "äää", expected: ErrInvalidASCII},
		{name: "length checked before intermediate", identifier: "!!p", expected: ErrInvalidFunctionValue},
		{name: "separator in parameter", identifier: "p", params: []string{"1;2"}, expected: ErrInvalidParameter},
		{name: "identifier checked before parameters", identifier: "H", params: []string{"x"}, expected: ErrInvalidPrivateUse},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cf, err := PrivateUse(tc.identifier, tc.params...)
			if tc.expected != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.expected), "got %v", err)
				assert.Equal(t, ControlFunction{}, cf)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, KindControlSequence, cf.Kind())
			assert.Equal(t, tc.identifier, cf.Identifier())
			assert.Equal(t, tc.rendered, cf.String())
		})
	}
}

func TestMnemonic(t *testing.T) {
	assert.Equal(t, "CUP", NewSequence("H", "5", "13").Mnemonic())
	assert.Equal(t, "NEL", NewC1('E').Mnemonic())
	assert.Equal(t, "BEL", NewC0(0x07).Mnemonic())
	assert.Equal(t, "RIS", NewIndependent('c').Mnemonic())
	assert.Equal(t, "SPQR", NewSequence(" X", "0").Mnemonic())

	private, err := PrivateUse("p")
	require.NoError(t, err)
	assert.Equal(t, "", private.Mnemonic())
}

func TestLookup(t *testing.T) {
	cup, err := Lookup("CUP", "5", "13")
	require.NoError(t, err)
	assert.Equal(t, NewSequence("H", "5", "13"), cup)

	defaults, err := Lookup("CUP")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;1H", defaults.String())

	nel, err := Lookup("NEL")
	require.NoError(t, err)
	assert.Equal(t, NewC1('E'), nel)

	ris, err := Lookup("RIS")
	require.NoError(t, err)
	assert.Equal(t, NewIndependent('c'), ris)

	bel, err := Lookup("BEL")
	require.NoError(t, err)
	assert.Equal(t, NewC0(0x07), bel)

	_, err = Lookup("NOPE")
	assert.ErrorIs(t, err, ErrUnknownMnemonic)

	_, err = Lookup("NEL", "1")
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Lookup("CUP", "a")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
