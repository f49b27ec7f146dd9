package control

import (
	"errors"
	"fmt"
)

// Reasons a private-use control sequence is rejected by PrivateUse.
var (
	// ErrInvalidASCII: every byte of the identifier must be 7-bit ASCII.
	ErrInvalidASCII = errors.New("control function must be valid ASCII")
	// ErrInvalidFunctionValue: the identifier must have one or two bytes.
	ErrInvalidFunctionValue = errors.New("control function must have one- or two-byte identifier")
	// ErrInvalidIntermediateByte: a two byte identifier must start with 02/00.
	ErrInvalidIntermediateByte = errors.New("intermediate byte must be 02/00")
	// ErrInvalidPrivateUse: the final byte must be in 07/00 to 07/15.
	ErrInvalidPrivateUse = errors.New("private use functions are only allowed in range 07/00 to 07/15")
)

// PrivateUse returns a control sequence for a private-use (experimental)
// function. ECMA-48 reserves the final bytes 07/00 to 07/15 for these, with
// or without the intermediate byte 02/00.
//
// The identifier is checked in this order and the first failing check is
// returned: ASCII, length, intermediate byte, private-use range. Parameters
// are checked last and must only hold parameter bytes other than 03/11.
func PrivateUse(identifier string, parameters ...string) (ControlFunction, error) {
	if !isASCII(identifier) {
		return ControlFunction{}, fmt.Errorf("%w: %q", ErrInvalidASCII, identifier)
	}
	if len(identifier) != 1 && len(identifier) != 2 {
		return ControlFunction{}, fmt.Errorf("%w: got %d bytes", ErrInvalidFunctionValue, len(identifier))
	}
	final := identifier[0]
	if len(identifier) == 2 {
		if identifier[0] != Intermediate {
			return ControlFunction{}, fmt.Errorf("%w: got %s", ErrInvalidIntermediateByte, Notation(identifier[0]))
		}
		final = identifier[1]
	}
	if final>>4 != PrivateLow>>4 {
		return ControlFunction{}, fmt.Errorf("%w: got %s", ErrInvalidPrivateUse, Notation(final))
	}
	for _, p := range parameters {
		if !validParameter(p) {
			return ControlFunction{}, fmt.Errorf("%w: %q", ErrInvalidParameter, p)
		}
	}
	return newSequence(identifier, parameters), nil
}
