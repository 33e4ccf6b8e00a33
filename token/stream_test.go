package token

import (
	"testing"

	"github.com/npillmayer/allstar"
)

func tok(typ int, idx int) Token {
	return &Basic{Typ: typ, TokenText: "x", Idx: idx}
}

func TestBufferedStreamLAAndConsume(t *testing.T) {
	s := NewBufferedStream([]Token{tok(1, 0), tok(2, 1)})
	if s.LA(1) != 1 || s.LA(2) != 2 {
		t.Fatalf("unexpected lookahead: LA(1)=%d LA(2)=%d", s.LA(1), s.LA(2))
	}
	if s.LA(3) != allstar.EOF {
		t.Fatalf("expected EOF lookahead past appended sentinel, got %d", s.LA(3))
	}
	c := s.Consume()
	if c.Type() != 1 || s.Index() != 1 {
		t.Fatalf("expected to consume token type 1 and advance to index 1")
	}
}

func TestBufferedStreamMarkReleaseSeek(t *testing.T) {
	s := NewBufferedStream([]Token{tok(1, 0), tok(2, 1), tok(3, 2)})
	s.Consume()
	start := s.Index()
	mark := s.Mark()
	s.Consume()
	s.Consume()
	s.Seek(start)
	if s.Index() != 1 {
		t.Fatalf("expected Seek to restore the marked position, got %d", s.Index())
	}
	s.Release(mark)
}

func TestBufferedStreamAppendsSyntheticEOF(t *testing.T) {
	s := NewBufferedStream([]Token{tok(1, 0)})
	if s.Size() != 2 {
		t.Fatalf("expected a synthetic EOF token to be appended, size=%d", s.Size())
	}
	if s.Get(1).Type() != allstar.EOF {
		t.Fatalf("expected final token to be EOF")
	}
}
