package allstar

import "fmt"

// Reserved symbol values shared by every package in this module. Symbols
// produced by a token stream are non-negative integers; these constants
// carry the handful of reserved meanings a parser/lexer pair needs.
const (
	// InvalidType is the token type used for uninitialized token slots.
	InvalidType = 0
	// MinUserTokenType is the first token type value grammar authors may use.
	MinUserTokenType = 1
	// EOF is the symbol returned by a token stream once input is exhausted.
	EOF = -1
	// Epsilon denotes a transition that consumes no input symbol.
	Epsilon = -2
)

// InvalidAltNumber represents an alternative number that has not yet been
// computed, or that is invalid for a given configuration or context.
const InvalidAltNumber = 0

// Span captures a run of input positions, e.g. the token range covered by
// a rule invocation. A zero Span denotes "not yet set".
type Span [2]int

// From returns the start position of the span.
func (s Span) From() int { return s[0] }

// To returns the position just behind the end of the span.
func (s Span) To() int { return s[1] }

// IsNull reports whether the span has never been extended.
func (s Span) IsNull() bool { return s == Span{} }

// Extend grows s to also cover other, returning the union span.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
