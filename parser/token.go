package parser

import (
	"fmt"

	"github.com/hnimtadd/ecma48/control"
)

type TokenType int

const (
	// TokenText is a run of characters that are not part of any control
	// function.
	TokenText TokenType = iota
	// TokenFunction is a recognized control function.
	TokenFunction
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Token is one element of a decoded string. Exactly one of Text and Function
// is set, as told by Type.
type Token struct {
	Type     TokenType
	Text     string
	Function control.ControlFunction
}

// TextToken returns a text token holding s.
func TextToken(s string) Token {
	return Token{Type: TokenText, Text: s}
}

// FunctionToken returns a token holding f.
func FunctionToken(f control.ControlFunction) Token {
	return Token{Type: TokenFunction, Function: f}
}

// Raw returns the input consumed by the token. Decoded functions render back
// to exactly the bytes they were read from, so joining the raw form of all
// tokens of a stream gives back its input.
func (t Token) Raw() string {
	if t.Type == TokenFunction {
		return t.Function.String()
	}
	return t.Text
}

func (t Token) String() string {
	switch t.Type {
	case TokenText:
		return fmt.Sprintf("text %q", t.Text)
	case TokenFunction:
		if name := t.Function.Mnemonic(); name != "" {
			return fmt.Sprintf("func %s %#v", name, t.Function)
		}
		return fmt.Sprintf("func %#v", t.Function)
	default:
		return "unknown"
	}
}
