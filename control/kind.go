package control

// Kind is the class of a control function. It decides how the identifier
// is framed when rendered.
type Kind int

const (
	kindInvalid Kind = iota

	// KindC0 functions are single bytes from 00/00 to 01/15.
	KindC0
	// KindC1 functions are ESC Fe, Fe from 04/00 to 05/15.
	KindC1
	// KindControlSequence functions are CSI, parameters, an optional
	// intermediate byte and a final byte.
	KindControlSequence
	// KindIndependent functions are ESC Fs, Fs from 06/00 to 07/14.
	KindIndependent
)

func (k Kind) String() string {
	switch k {
	case KindC0:
		return "C0"
	case KindC1:
		return "C1"
	case KindControlSequence:
		return "Control Sequence"
	case KindIndependent:
		return "Independent Control Function"
	default:
		return "Unknown"
	}
}
