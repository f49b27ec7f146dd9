package control

import "strings"

// String renders f in its canonical 7-bit form:
//
//   - C0: the identifier byte
//   - C1 and independent functions: ESC followed by the identifier byte
//   - control sequences: CSI, the parameters joined by 03/11, then the
//     identifier bytes
func (f ControlFunction) String() string {
	switch f.kind {
	case KindC0:
		return f.identifier
	case KindC1, KindIndependent:
		return string(Escape) + f.identifier
	case KindControlSequence:
		var b strings.Builder
		b.Grow(2 + len(f.identifier) + 4*len(f.parameters))
		b.WriteByte(Escape)
		b.WriteByte(Introducer)
		for i, p := range f.parameters {
			if i > 0 {
				b.WriteByte(ParameterSeparator)
			}
			b.WriteString(p)
		}
		b.WriteString(f.identifier)
		return b.String()
	default:
		// zero value
		return ""
	}
}

// Bytes returns the rendered form of f, ready to be written to a terminal.
func (f ControlFunction) Bytes() []byte {
	return []byte(f.String())
}
