package token

import (
	"fmt"

	"github.com/npillmayer/allstar/atn/config"
)

// RecognitionError is the common interface of every recoverable parsing
// error named in spec §6. All of them carry enough context (offending
// token, rule index, and the parser's current rule context) for a caller
// to build a diagnostic without re-deriving it from the ATN.
type RecognitionError interface {
	error
	OffendingToken() Token
	RuleIndex() int
	Context() interface{}
}

type baseError struct {
	offending Token
	rule      int
	ctx       interface{}
}

func (e baseError) OffendingToken() Token { return e.offending }
func (e baseError) RuleIndex() int        { return e.rule }
func (e baseError) Context() interface{}  { return e.ctx }

// InputMismatchError reports that the current token does not satisfy the
// set of tokens a match/consume call expected. Expected is typed as
// fmt.Stringer, which *atn.IntervalSet satisfies; only its String form is
// used, to format the error message.
type InputMismatchError struct {
	baseError
	Expected fmt.Stringer
}

func (e *InputMismatchError) Error() string {
	return fmt.Sprintf("mismatched input %v expecting %v", e.offending, e.Expected)
}

// NewInputMismatchError builds an InputMismatchError.
func NewInputMismatchError(offending Token, rule int, ctx interface{}, expected fmt.Stringer) *InputMismatchError {
	return &InputMismatchError{baseError: baseError{offending, rule, ctx}, Expected: expected}
}

// NoViableAltError reports that prediction ran out of viable
// alternatives; Configs preserves the ATNConfigSet at the point of
// failure so a caller can render which alternatives were still alive.
type NoViableAltError struct {
	baseError
	Configs *config.Set
}

func (e *NoViableAltError) Error() string {
	return fmt.Sprintf("no viable alternative at input %v", e.offending)
}

// NewNoViableAltError builds a NoViableAltError.
func NewNoViableAltError(offending Token, rule int, ctx interface{}, configs *config.Set) *NoViableAltError {
	return &NoViableAltError{baseError: baseError{offending, rule, ctx}, Configs: configs}
}

// FailedPredicateError reports that a semantic or precedence predicate
// evaluated false. Message is the user-supplied predicate text, if the
// grammar carried one; it may be empty.
type FailedPredicateError struct {
	baseError
	PredIndex int
	Message   string
}

func (e *FailedPredicateError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rule %d predicate %d failed: %s", e.rule, e.PredIndex, e.Message)
	}
	return fmt.Sprintf("rule %d predicate %d failed", e.rule, e.PredIndex)
}

// NewFailedPredicateError builds a FailedPredicateError.
func NewFailedPredicateError(offending Token, rule, predIndex int, ctx interface{}, message string) *FailedPredicateError {
	return &FailedPredicateError{baseError: baseError{offending, rule, ctx}, PredIndex: predIndex, Message: message}
}

// LexerNoViableAltError is the lexer-side counterpart of NoViableAltError:
// no rule in the current lexer mode matched the input at all. It has no
// rule index (lexers don't have parser rules) or parser context, but
// keeps the shape close to RecognitionError for uniform handling upstream.
type LexerNoViableAltError struct {
	Input    string
	StartIdx int
}

func (e *LexerNoViableAltError) Error() string {
	return fmt.Sprintf("lexer: no viable alternative at position %d: %q", e.StartIdx, e.Input)
}
