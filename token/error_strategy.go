package token

import (
	"github.com/npillmayer/allstar"
	"github.com/npillmayer/allstar/atn"
)

// Recognizer is the minimal parser-side contract ErrorStrategy needs:
// enough to read and rewind the input, inspect the current ATN state, and
// report an error, without this package depending on package interp (which
// depends back on this one). The shape mirrors semctx.Recognizer's same
// trick of keeping the collaborator interface as small as the consumer
// actually needs.
type Recognizer interface {
	InputStream() Stream
	CurrentState() int
	RuleIndex() int
	Context() interface{}
	Match(expected int) (Token, error)
	ExpectedTokens() *atn.IntervalSet
	NotifyError(err RecognitionError)
}

// ErrorStrategy decides how a parser responds to and recovers from a
// RecognitionError, per spec §6's four-method interface.
type ErrorStrategy interface {
	// Sync is called before matching an optional/loop construct's
	// lookahead, giving the strategy a chance to resynchronize (skip
	// tokens) before a decision is even attempted.
	Sync(r Recognizer) error
	// ReportError surfaces err through r.NotifyError and records that this
	// strategy has already reported an error for the current input
	// position, so cascading failures from the same bad token aren't
	// reported again.
	ReportError(r Recognizer, err RecognitionError)
	// Recover is called after a failed Match; it consumes tokens until the
	// input looks synchronized with some ancestor rule's follow set.
	Recover(r Recognizer, err RecognitionError) error
	// RecoverInline is called when a single expected token is missing or
	// wrong; it decides between single-token deletion, single-token
	// insertion, and giving up (reporting InputMismatchError).
	RecoverInline(r Recognizer) (Token, error)
}

// DefaultErrorStrategy implements the conventional ANTLR recovery policy:
// report at most one error per erroneous input position, and recover
// inline by single-token deletion (skip the bad token, retry). It does not
// attempt single-token insertion.
type DefaultErrorStrategy struct {
	errorRecoveryMode bool
	lastErrorIndex    int
}

var _ ErrorStrategy = (*DefaultErrorStrategy)(nil)

// NewDefaultErrorStrategy returns a DefaultErrorStrategy ready for use.
func NewDefaultErrorStrategy() *DefaultErrorStrategy {
	return &DefaultErrorStrategy{lastErrorIndex: -1}
}

// Sync is a no-op in the default strategy; subclasses of heavier
// strategies (not provided here) would skip to a safe resync point.
func (d *DefaultErrorStrategy) Sync(r Recognizer) error { return nil }

// ReportError reports err unless the parser already reported one at this
// exact input position (avoids a cascade of errors from one bad token).
func (d *DefaultErrorStrategy) ReportError(r Recognizer, err RecognitionError) {
	idx := r.InputStream().Index()
	if d.errorRecoveryMode && idx == d.lastErrorIndex {
		return
	}
	d.lastErrorIndex = idx
	d.errorRecoveryMode = true
	tracer().Infof("rule %d: %s", r.RuleIndex(), err.Error())
	r.NotifyError(err)
}

// Recover consumes tokens up to, but not including, one in the expected set,
// per spec §8 scenario 5: on a mismatch, drop tokens until the stream
// realigns with what an enclosing rule can still accept.
func (d *DefaultErrorStrategy) Recover(r Recognizer, err RecognitionError) error {
	expected := r.ExpectedTokens()
	stream := r.InputStream()
	for {
		la := stream.LA(1)
		if la == allstar.EOF || expected.Contains(la) {
			return nil
		}
		stream.Consume()
	}
}

// RecoverInline implements single-token deletion: if the token after the
// unexpected one matches what was expected, the unexpected token is
// silently dropped and parsing continues as though it had never been
// there. Otherwise it reports InputMismatchError and returns the current
// (wrong) token unconsumed, leaving the caller's match loop to decide.
func (d *DefaultErrorStrategy) RecoverInline(r Recognizer) (Token, error) {
	expected := r.ExpectedTokens()
	stream := r.InputStream()
	if expected.Contains(stream.LA(2)) {
		deleted := stream.Consume() // drop the unexpected token
		d.ReportError(r, NewInputMismatchError(deleted, r.RuleIndex(), r.Context(), expected))
		return stream.Consume(), nil // now consume the token that matches
	}
	bad := stream.Get(stream.Index())
	err := NewInputMismatchError(bad, r.RuleIndex(), r.Context(), expected)
	d.ReportError(r, err)
	return bad, err
}

// EndErrorRecovery clears the strategy's error-recovery-mode flag; called
// by the interpreter once a rule matches at least one token successfully
// after recovering.
func (d *DefaultErrorStrategy) EndErrorRecovery() { d.errorRecoveryMode = false }

// InErrorRecoveryMode reports whether the strategy is still suppressing
// cascading error reports.
func (d *DefaultErrorStrategy) InErrorRecoveryMode() bool { return d.errorRecoveryMode }
