package control

import (
	"errors"
	"fmt"

	"github.com/pborman/ansi"
)

var (
	ErrUnknownMnemonic  = errors.New("unknown control function mnemonic")
	ErrInvalidParameter = errors.New("invalid control sequence parameter")
)

// byMnemonic indexes the ECMA-48 table by short name. Built once, read-only
// afterwards.
var byMnemonic = func() map[string]*ansi.Sequence {
	index := make(map[string]*ansi.Sequence, len(ansi.Table))
	for _, seq := range ansi.Table {
		index[seq.Name] = seq
	}
	return index
}()

// name is the parameterless rendering of f, the key of ansi.Table.
func (f ControlFunction) name() ansi.Name {
	switch f.kind {
	case KindControlSequence:
		return ansi.Name([]byte{Escape, Introducer}) + ansi.Name(f.identifier)
	default:
		return ansi.Name(f.String())
	}
}

// Mnemonic returns the ECMA-48 short name of f, such as "CUP" or "NEL".
// Parameters are ignored. Functions without a standard name, like private
// use sequences, return "".
func (f ControlFunction) Mnemonic() string {
	if seq := f.name().S(); seq != nil {
		return seq.Name
	}
	return ""
}

// Lookup builds the standard function named by mnemonic.
//
// Parameters are only accepted for control sequences. When none are given
// the function's documented defaults are used, if it has any.
func Lookup(mnemonic string, parameters ...string) (ControlFunction, error) {
	seq, ok := byMnemonic[mnemonic]
	if !ok {
		return ControlFunction{}, fmt.Errorf("%w: %q", ErrUnknownMnemonic, mnemonic)
	}
	code := string(seq.Code)

	switch seq.Type {
	case ansi.CSI:
		if len(parameters) == 0 {
			parameters = seq.Defaults
		}
		for _, p := range parameters {
			if !validParameter(p) {
				return ControlFunction{}, fmt.Errorf("%w: %q", ErrInvalidParameter, p)
			}
		}
		if len(code) == 0 || len(code) > 2 || !IsFinal(code[len(code)-1]) ||
			(len(code) == 2 && code[0] != Intermediate) {
			return ControlFunction{}, fmt.Errorf("%w: %q is not a single control function", ErrUnknownMnemonic, mnemonic)
		}
		return newSequence(code, parameters), nil
	case ansi.ESC:
		if len(parameters) > 0 {
			return ControlFunction{}, fmt.Errorf("%w: %s takes no parameters", ErrInvalidParameter, mnemonic)
		}
		if len(code) == 1 {
			switch b := code[0]; {
			case b >= c1Low && b <= c1High:
				return NewC1(b), nil
			case b >= independentLow && b <= independentHigh:
				return NewIndependent(b), nil
			}
		}
	default:
		if len(parameters) > 0 {
			return ControlFunction{}, fmt.Errorf("%w: %s takes no parameters", ErrInvalidParameter, mnemonic)
		}
		if len(code) == 1 && code[0] <= c0High {
			return NewC0(code[0]), nil
		}
	}
	// announcers and other multi-byte escapes are not a single function
	return ControlFunction{}, fmt.Errorf("%w: %q is not a single control function", ErrUnknownMnemonic, mnemonic)
}
