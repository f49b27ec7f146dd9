package parser

// State of the scanner while it reads a possible control function.
type State int

const (
	StateGround State = iota
	StateEscape
	StateCSIParam
	StateCSIIntermediate
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateCSIParam:
		return "CSIParam"
	case StateCSIIntermediate:
		return "CSIIntermediate"
	default:
		return "Unknown"
	}
}
