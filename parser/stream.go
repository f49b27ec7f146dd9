package parser

import (
	"iter"
	"strings"

	"github.com/hnimtadd/ecma48/control"
	"github.com/hnimtadd/ecma48/control/c0"
	"github.com/hnimtadd/ecma48/logger"
)

// TokenStream splits a string into text and the control functions embedded
// in it.
//
// Control functions are recognized in 7-bit form only: C0 functions, ESC Fe
// (C1), ESC Fs (independent functions), and control sequences introduced by
// ESC 05/11. Everything else, including all non-ASCII characters, is text.
// Adjacent text is merged into one token.
//
// A stream holds a cursor and is not safe for concurrent use. It is consumed
// once.
type TokenStream struct {
	input string

	// start of the text not yet emitted
	start int
	// next byte to scan
	cursor int

	// function recognized at cursor while text was still pending
	held    *control.ControlFunction
	heldLen int

	logger logger.Logger
}

type Option func(*TokenStream)

// WithLogger makes the stream report input it could not recognize as a
// control function at debug level.
func WithLogger(l logger.Logger) Option {
	return func(s *TokenStream) {
		s.logger = l
	}
}

func NewTokenStream(input string, opts ...Option) *TokenStream {
	s := &TokenStream{
		input:  input,
		logger: logger.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next token, or false once the input is exhausted.
func (s *TokenStream) Next() (Token, bool) {
	if s.held != nil {
		return s.emitHeld(), true
	}

	for s.cursor < len(s.input) {
		f, n, ok := s.recognize(s.cursor)
		if !ok {
			s.cursor++
			continue
		}
		if s.cursor > s.start {
			// text comes first; the function is returned on the next call
			s.held, s.heldLen = &f, n
			return s.flush(), true
		}
		s.held, s.heldLen = &f, n
		return s.emitHeld(), true
	}

	if s.cursor > s.start {
		return s.flush(), true
	}
	return Token{}, false
}

// All yields the remaining tokens.
func (s *TokenStream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, ok := s.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// Tokenize decodes input at once.
func Tokenize(input string, opts ...Option) []Token {
	var tokens []Token
	for token := range NewTokenStream(input, opts...).All() {
		tokens = append(tokens, token)
	}
	return tokens
}

func (s *TokenStream) flush() Token {
	token := TextToken(s.input[s.start:s.cursor])
	s.start = s.cursor
	return token
}

func (s *TokenStream) emitHeld() Token {
	token := FunctionToken(*s.held)
	s.cursor += s.heldLen
	s.start = s.cursor
	s.held, s.heldLen = nil, 0
	return token
}

// recognize reports the control function starting at i and the number of
// bytes it spans.
func (s *TokenStream) recognize(i int) (control.ControlFunction, int, bool) {
	b := s.input[i]
	if b != control.Escape {
		f, ok := c0Table.get(b)
		return f, 1, ok
	}

	// StateEscape
	if i+1 == len(s.input) {
		return c0.ESC, 1, true
	}
	next := s.input[i+1]
	if f, ok := escapeTable.get(next); ok {
		return f, 2, true
	}
	if next == control.Introducer {
		if f, n, ok := s.scanSequence(i + 2); ok {
			return f, n + 2, true
		}
	}
	// ESC stands alone, scanning resumes right after it
	return c0.ESC, 1, true
}

// scanSequence reads the parameters, optional intermediate byte and final
// byte of a control sequence starting at i, just after CSI. It returns the
// sequence and the number of bytes read.
func (s *TokenStream) scanSequence(i int) (control.ControlFunction, int, bool) {
	state := StateCSIParam
	for j := i; j < len(s.input); j++ {
		b := s.input[j]
		switch {
		case b >= 0x80:
			s.logger.Debug("non-ASCII character in control sequence", "offset", j, "state", state)
			return control.ControlFunction{}, 0, false
		case control.IsFinal(b):
			paramsEnd := j
			if state == StateCSIIntermediate {
				paramsEnd--
			}
			params := strings.Split(s.input[i:paramsEnd], string(control.ParameterSeparator))
			return control.NewSequence(s.input[paramsEnd:j+1], params...), j + 1 - i, true
		case state == StateCSIIntermediate:
			s.logger.Debug("control sequence not terminated after intermediate byte", "offset", j, "byte", control.Notation(b))
			return control.ControlFunction{}, 0, false
		case control.IsParameter(b):
			continue
		case b == control.Intermediate:
			state = StateCSIIntermediate
		default:
			s.logger.Debug("invalid byte in control sequence", "offset", j, "byte", control.Notation(b), "state", state)
			return control.ControlFunction{}, 0, false
		}
	}
	s.logger.Debug("control sequence not terminated", "offset", len(s.input), "state", state)
	return control.ControlFunction{}, 0, false
}
