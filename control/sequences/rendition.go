package sequences

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hnimtadd/ecma48/control"
)

var ErrNotSGR = errors.New("control function is not SGR")

type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// RGB is a direct color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Rendition is one aspect selected by an SGR sequence.
type Rendition struct {
	Aspect GraphicRendition

	// Set for the color aspects 38, 48 and 58: either a direct color
	// (sub-parameter 2) or a palette index (sub-parameter 5).
	Color *RGB
	Index *uint8

	// Style of the colon form 4:n.
	Underline UnderlineStyle
}

func (r Rendition) String() string {
	switch {
	case r.Color != nil:
		return fmt.Sprintf("%d %s", r.Aspect, r.Color)
	case r.Index != nil:
		return fmt.Sprintf("%d index %d", r.Aspect, *r.Index)
	case r.Underline > UnderlineSingle:
		return fmt.Sprintf("%d style %d", r.Aspect, r.Underline)
	default:
		return strconv.FormatUint(uint64(r.Aspect), 10)
	}
}

// ParseSGR lists the aspects selected by an SGR control sequence, in order.
//
// Empty parameters select the default rendition 0. The color aspects accept
// both the semicolon form (38;2;r;g;b, 38;5;n) and the colon form
// (38:2:r:g:b, 38:2:id:r:g:b, 38:5:n); color components above 255 are
// clamped. 4:n selects an underline style, 4:0 removes the underline.
func ParseSGR(f control.ControlFunction) ([]Rendition, error) {
	if f.Kind() != control.KindControlSequence || f.Identifier() != final(6, 13) {
		return nil, fmt.Errorf("%w: %#v", ErrNotSGR, f)
	}
	params := f.Parameters()
	if len(params) == 0 {
		return []Rendition{{Aspect: RenditionDefault}}, nil
	}

	renditions := make([]Rendition, 0, len(params))
	for i := 0; i < len(params); i++ {
		if strings.ContainsRune(params[i], ':') {
			r, err := parseSubParameters(strings.Split(params[i], ":"))
			if err != nil {
				return nil, err
			}
			renditions = append(renditions, r)
			continue
		}

		v, err := parseValue(params[i])
		if err != nil {
			return nil, err
		}
		aspect := GraphicRendition(v)
		if !isColorAspect(aspect) {
			renditions = append(renditions, Rendition{Aspect: aspect})
			continue
		}

		// the color takes the following parameters
		r, n, err := parseColor(aspect, params[i+1:])
		if err != nil {
			return nil, err
		}
		renditions = append(renditions, r)
		i += n
	}
	return renditions, nil
}

func isColorAspect(a GraphicRendition) bool {
	return a == RenditionForegroundColor || a == RenditionBackgroundColor || a == RenditionUnderlineColor
}

func parseValue(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", control.ErrInvalidParameter, s)
	}
	return uint32(v), nil
}

func parseValues(s []string) ([]uint32, error) {
	values := make([]uint32, len(s))
	for i := range s {
		v, err := parseValue(s[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func clamp(v uint32) uint8 {
	return uint8(min(math.MaxUint8, v))
}

// parseColor reads a color selection from the parameters following aspect
// and reports how many it used.
func parseColor(aspect GraphicRendition, rest []string) (Rendition, int, error) {
	if len(rest) == 0 {
		return Rendition{}, 0, fmt.Errorf("%w: %d needs a color", control.ErrInvalidParameter, aspect)
	}
	values, err := parseValues(rest[:min(len(rest), 4)])
	if err != nil {
		return Rendition{}, 0, err
	}
	switch values[0] {
	case 2:
		if len(values) < 4 {
			return Rendition{}, 0, fmt.Errorf("%w: %d;2 needs three color components", control.ErrInvalidParameter, aspect)
		}
		rgb := RGB{R: clamp(values[1]), G: clamp(values[2]), B: clamp(values[3])}
		return Rendition{Aspect: aspect, Color: &rgb}, 4, nil
	case 5:
		if len(values) < 2 {
			return Rendition{}, 0, fmt.Errorf("%w: %d;5 needs an index", control.ErrInvalidParameter, aspect)
		}
		index := clamp(values[1])
		return Rendition{Aspect: aspect, Index: &index}, 2, nil
	default:
		return Rendition{}, 0, fmt.Errorf("%w: unknown color space %d", control.ErrInvalidParameter, values[0])
	}
}

func parseSubParameters(subs []string) (Rendition, error) {
	values, err := parseValues(subs)
	if err != nil {
		return Rendition{}, err
	}
	aspect := GraphicRendition(values[0])
	switch {
	case aspect == RenditionUnderline && len(values) == 2:
		switch style := UnderlineStyle(values[1]); {
		case style == UnderlineNone:
			return Rendition{Aspect: RenditionNotUnderlined}, nil
		case style > UnderlineDashed:
			// unknown styles are drawn as a single underline
			return Rendition{Aspect: RenditionUnderline, Underline: UnderlineSingle}, nil
		default:
			return Rendition{Aspect: RenditionUnderline, Underline: style}, nil
		}
	case isColorAspect(aspect) && len(values) >= 2:
		switch {
		case values[1] == 2 && len(values) == 5:
			rgb := RGB{R: clamp(values[2]), G: clamp(values[3]), B: clamp(values[4])}
			return Rendition{Aspect: aspect, Color: &rgb}, nil
		case values[1] == 2 && len(values) == 6:
			// the color space id is ignored
			rgb := RGB{R: clamp(values[3]), G: clamp(values[4]), B: clamp(values[5])}
			return Rendition{Aspect: aspect, Color: &rgb}, nil
		case values[1] == 5 && len(values) == 3:
			index := clamp(values[2])
			return Rendition{Aspect: aspect, Index: &index}, nil
		}
	}
	return Rendition{}, fmt.Errorf("%w: unsupported sub-parameters %q", control.ErrInvalidParameter, strings.Join(subs, ":"))
}
