package token

import (
	"fmt"

	"github.com/npillmayer/allstar"
)

// Default channel a token travels on; HiddenChannel is the conventional
// channel for whitespace/comments a parser should skip but a formatter
// might still want.
const (
	DefaultChannel = 0
	HiddenChannel  = 1
)

// Token is a single terminal produced by a lexer: an integer type drawn
// from a Vocabulary, the literal text it matched, a position within the
// input, a channel, and a 0-based index into the token stream it came
// from.
type Token interface {
	Type() int
	Text() string
	Span() allstar.Span
	Channel() int
	Index() int
}

// Basic is a minimal, concrete Token good enough for hand-assembled test
// input and the demo CLI's lexmachine adapter; real lexers are free to
// provide their own Token implementation instead.
type Basic struct {
	Typ       int
	TokenText string
	SpanValue allstar.Span
	Chan      int
	Idx       int
}

var _ Token = (*Basic)(nil)

func (t *Basic) Type() int            { return t.Typ }
func (t *Basic) Text() string         { return t.TokenText }
func (t *Basic) Span() allstar.Span   { return t.SpanValue }
func (t *Basic) Channel() int         { return t.Chan }
func (t *Basic) Index() int           { return t.Idx }
func (t *Basic) String() string {
	return fmt.Sprintf("[@%d,%q,<%d>]", t.Idx, t.TokenText, t.Typ)
}
