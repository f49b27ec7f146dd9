package control

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hnimtadd/ecma48/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// ControlFunction is a control function as defined by ECMA-48.
//
// Values are immutable: the fields are only set by the constructors in this
// package, which check the invariants of the function's kind. Two values are
// the same function if Equal reports true; comparing rendered strings is
// done with EqualString.
type ControlFunction struct {
	kind Kind

	// The byte, or intermediate byte and final byte, identifying the
	// function.
	identifier string

	// Positional parameters, control sequences only. An empty entry selects
	// the default value of that parameter.
	parameters []string
}

// NewC0 returns the C0 function identified by b.
//
// It is meant for fixed catalog literals and panics if b is not in the
// range 00/00 to 01/15.
func NewC0(b byte) ControlFunction {
	utils.Assert(b <= c0High, "C0 function %s out of range 00/00 to 01/15", Notation(b))
	return ControlFunction{kind: KindC0, identifier: string([]byte{b})}
}

// NewC1 returns the C1 function ESC b. Panics if b is not in the range
// 04/00 to 05/15.
func NewC1(b byte) ControlFunction {
	utils.Assert(b >= c1Low && b <= c1High, "C1 function %s out of range 04/00 to 05/15", Notation(b))
	return ControlFunction{kind: KindC1, identifier: string([]byte{b})}
}

// NewIndependent returns the independent control function ESC b. Panics if
// b is not in the range 06/00 to 07/14.
func NewIndependent(b byte) ControlFunction {
	utils.Assert(b >= independentLow && b <= independentHigh, "independent function %s out of range 06/00 to 07/14", Notation(b))
	return ControlFunction{kind: KindIndependent, identifier: string([]byte{b})}
}

// NewSequence returns the control sequence identified by identifier with the
// given parameters.
//
// The identifier is a final byte, optionally preceded by the intermediate
// byte 02/00. Parameters may only hold parameter bytes (03/00 to 03/15)
// other than the separator. Invalid literals panic; use PrivateUse for
// identifiers that come from outside the program.
func NewSequence(identifier string, parameters ...string) ControlFunction {
	utils.Assert(len(identifier) == 1 || len(identifier) == 2, "control sequence identifier must have one or two bytes")
	if len(identifier) == 2 {
		utils.Assert(identifier[0] == Intermediate, "control sequence intermediate byte must be 02/00")
	}
	utils.Assert(IsFinal(identifier[len(identifier)-1]), "control sequence final byte out of range 04/00 to 07/15")
	for _, p := range parameters {
		utils.Assert(validParameter(p), "invalid control sequence parameter %q", p)
	}
	return newSequence(identifier, parameters)
}

func newSequence(identifier string, parameters []string) ControlFunction {
	cf := ControlFunction{kind: KindControlSequence, identifier: identifier}
	if len(parameters) > 0 {
		cf.parameters = slices.Clone(parameters)
	}
	return cf
}

func (f ControlFunction) Kind() Kind {
	return f.kind
}

// Identifier returns the byte(s) selecting the function, without the ESC or
// CSI prefix.
func (f ControlFunction) Identifier() string {
	return f.identifier
}

// Parameters returns a copy of the parameter list.
func (f ControlFunction) Parameters() []string {
	return slices.Clone(f.parameters)
}

// Equal reports whether f and other are the same function with the same
// parameters.
func (f ControlFunction) Equal(other ControlFunction) bool {
	return f.kind == other.kind &&
		f.identifier == other.identifier &&
		slices.Equal(f.parameters, other.parameters)
}

// EqualString reports whether s is exactly the rendered form of f.
func (f ControlFunction) EqualString(s string) bool {
	switch f.kind {
	case KindC0:
		return f.identifier == s
	case KindC1, KindIndependent:
		return len(s) == 2 && s[0] == Escape && s[1:] == f.identifier
	default:
		return f.String() == s
	}
}

// Hash returns a structural hash of f, consistent with Equal.
func (f ControlFunction) Hash() uint64 {
	// hashstructure skips unexported fields
	shadow := struct {
		Kind       Kind
		Identifier string
		Parameters []string
	}{f.kind, f.identifier, f.parameters}
	hashed, err := hashstructure.Hash(shadow, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "failed to hash control function: %v", err)
	return hashed
}

// GoString prints the function with its identifier in col/row notation:
//
//	ControlFunction{Kind: Control Sequence, Function: "04/08", Parameters: ["1" "10"]}
func (f ControlFunction) GoString() string {
	function := make([]string, 0, len(f.identifier))
	for i := 0; i < len(f.identifier); i++ {
		function = append(function, Notation(f.identifier[i]))
	}
	return fmt.Sprintf(
		"ControlFunction{Kind: %s, Function: %q, Parameters: %q}",
		f.kind,
		strings.Join(function, " "),
		f.parameters,
	)
}
