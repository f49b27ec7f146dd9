package sequences

import (
	"testing"

	"github.com/hnimtadd/ecma48/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgb(r, g, b uint8) *RGB {
	return &RGB{R: r, G: g, B: b}
}

func index(i uint8) *uint8 {
	return &i
}

func TestParseSGR(t *testing.T) {
	tcs := []struct {
		name     string
		function control.ControlFunction
		expected []Rendition
	}{
		{
			name:     "no parameters",
			function: control.NewSequence("m"),
			expected: []Rendition{{Aspect: RenditionDefault}},
		},
		{
			name:     "empty parameter",
			function: control.NewSequence("m", ""),
			expected: []Rendition{{Aspect: RenditionDefault}},
		},
		{
			name:     "builder output",
			function: SGR(RenditionBold, RenditionForegroundRed),
			expected: []Rendition{{Aspect: RenditionBold}, {Aspect: RenditionForegroundRed}},
		},
		{
			name:     "direct color foreground",
			function: control.NewSequence("m", "0", "38", "2", "40", "44", "52"),
			expected: []Rendition{
				{Aspect: RenditionDefault},
				{Aspect: RenditionForegroundColor, Color: rgb(40, 44, 52)},
			},
		},
		{
			name:     "direct color background clamped",
			function: control.NewSequence("m", "48", "2", "300", "0", "255", "1"),
			expected: []Rendition{
				{Aspect: RenditionBackgroundColor, Color: rgb(255, 0, 255)},
				{Aspect: RenditionBold},
			},
		},
		{
			name:     "indexed color",
			function: control.NewSequence("m", "38", "5", "208"),
			expected: []Rendition{{Aspect: RenditionForegroundColor, Index: index(208)}},
		},
		{
			name:     "colon direct color",
			function: control.NewSequence("m", "58:2:1:2:3"),
			expected: []Rendition{{Aspect: RenditionUnderlineColor, Color: rgb(1, 2, 3)}},
		},
		{
			name:     "colon direct color with color space",
			function: control.NewSequence("m", "38:2::10:20:30", "4"),
			expected: []Rendition{
				{Aspect: RenditionForegroundColor, Color: rgb(10, 20, 30)},
				{Aspect: RenditionUnderline},
			},
		},
		{
			name:     "curly underline",
			function: control.NewSequence("m", "4:3"),
			expected: []Rendition{{Aspect: RenditionUnderline, Underline: UnderlineCurly}},
		},
		{
			name:     "underline off",
			function: control.NewSequence("m", "4:0"),
			expected: []Rendition{{Aspect: RenditionNotUnderlined}},
		},
		{
			name:     "unknown underline style",
			function: control.NewSequence("m", "4:9"),
			expected: []Rendition{{Aspect: RenditionUnderline, Underline: UnderlineSingle}},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSGR(tc.function)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseSGRErrors(t *testing.T) {
	_, err := ParseSGR(CUP(1, 1))
	assert.ErrorIs(t, err, ErrNotSGR)

	_, err = ParseSGR(control.NewSequence(" m", "1"))
	assert.ErrorIs(t, err, ErrNotSGR)

	for _, params := range [][]string{
		{"38"},
		{"38", "2", "1", "2"},
		{"48", "5"},
		{"38", "7", "1"},
		{"1:2"},
		{"38:2:1"},
		{"?1"},
	} {
		_, err := ParseSGR(control.NewSequence("m", params...))
		assert.ErrorIs(t, err, control.ErrInvalidParameter, "%q", params)
	}
}

func TestRenditionString(t *testing.T) {
	assert.Equal(t, "1", Rendition{Aspect: RenditionBold}.String())
	assert.Equal(t, "38 #282c34", Rendition{Aspect: RenditionForegroundColor, Color: rgb(40, 44, 52)}.String())
	assert.Equal(t, "48 index 7", Rendition{Aspect: RenditionBackgroundColor, Index: index(7)}.String())
	assert.Equal(t, "4 style 3", Rendition{Aspect: RenditionUnderline, Underline: UnderlineCurly}.String())
}
