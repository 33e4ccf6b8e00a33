package token

import (
	"testing"

	"github.com/npillmayer/allstar/atn"
)

// fakeRecognizer is the minimal stand-in for a ParserInterpreter that the
// ErrorStrategy tests need: just enough state to drive Sync/Recover/
// RecoverInline without pulling in package interp (which would make this a
// circular import).
type fakeRecognizer struct {
	stream   *BufferedStream
	expected *atn.IntervalSet
	reported []RecognitionError
}

func (f *fakeRecognizer) InputStream() Stream               { return f.stream }
func (f *fakeRecognizer) CurrentState() int                 { return 0 }
func (f *fakeRecognizer) RuleIndex() int                    { return 0 }
func (f *fakeRecognizer) Context() interface{}              { return nil }
func (f *fakeRecognizer) ExpectedTokens() *atn.IntervalSet   { return f.expected }
func (f *fakeRecognizer) NotifyError(err RecognitionError)   { f.reported = append(f.reported, err) }
func (f *fakeRecognizer) Match(expected int) (Token, error) {
	if f.stream.LA(1) == expected {
		return f.stream.Consume(), nil
	}
	return nil, NewInputMismatchError(f.stream.Get(f.stream.Index()), 0, nil, f.expected)
}

func TestDefaultErrorStrategyReportsOnceUntilRecovery(t *testing.T) {
	d := NewDefaultErrorStrategy()
	r := &fakeRecognizer{stream: NewBufferedStream([]Token{tok(1, 0)})}
	err := NewInputMismatchError(tok(9, 0), 0, nil, atn.NewIntervalSetFrom(1))

	d.ReportError(r, err)
	d.ReportError(r, err)
	if len(r.reported) != 1 {
		t.Fatalf("expected cascading reports at the same index to be suppressed, got %d reports", len(r.reported))
	}

	d.EndErrorRecovery()
	d.ReportError(r, err)
	if len(r.reported) != 2 {
		t.Fatalf("expected a fresh report once recovery ended, got %d reports", len(r.reported))
	}
}

func TestDefaultErrorStrategyRecoverConsumesUntilExpected(t *testing.T) {
	d := NewDefaultErrorStrategy()
	expected := atn.NewIntervalSetFrom(3)
	r := &fakeRecognizer{
		stream:   NewBufferedStream([]Token{tok(1, 0), tok(2, 1), tok(3, 2)}),
		expected: expected,
	}
	if err := d.Recover(r, NewInputMismatchError(tok(1, 0), 0, nil, expected)); err != nil {
		t.Fatalf("Recover returned an error: %v", err)
	}
	if r.stream.LA(1) != 3 {
		t.Fatalf("expected Recover to skip to the token in the expected set, got LA(1)=%d", r.stream.LA(1))
	}
}

func TestDefaultErrorStrategyRecoverInlineDeletesUnexpectedToken(t *testing.T) {
	d := NewDefaultErrorStrategy()
	expected := atn.NewIntervalSetFrom(5)
	r := &fakeRecognizer{
		stream:   NewBufferedStream([]Token{tok(9, 0), tok(5, 1)}),
		expected: expected,
	}
	got, err := d.RecoverInline(r)
	if err != nil {
		t.Fatalf("RecoverInline returned an error: %v", err)
	}
	if got.Type() != 5 {
		t.Fatalf("expected single-token deletion to land on the matching token, got type %d", got.Type())
	}
	if len(r.reported) != 1 {
		t.Fatalf("expected the deleted token to be reported as a mismatch, got %d reports", len(r.reported))
	}
}

func TestDefaultErrorStrategyRecoverInlineGivesUpWithoutAMatchAhead(t *testing.T) {
	d := NewDefaultErrorStrategy()
	expected := atn.NewIntervalSetFrom(5)
	r := &fakeRecognizer{
		stream:   NewBufferedStream([]Token{tok(9, 0), tok(9, 1)}),
		expected: expected,
	}
	got, err := d.RecoverInline(r)
	if err == nil {
		t.Fatalf("expected RecoverInline to report InputMismatchError when no deletion would resync")
	}
	if got == nil || got.Type() != 9 {
		t.Fatalf("expected the unconsumed offending token to be returned, got %v", got)
	}
}
