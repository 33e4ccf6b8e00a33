package token

import "github.com/npillmayer/allstar"

// Stream is a seekable source of Tokens. LA(1) is the lookahead the
// predictor and the interpreter use most, but the simulator needs LA(k)
// for k > 1 while exploring an ATNConfigSet several symbols ahead of the
// parser's own position; Mark/Release/Seek let it do that exploration
// speculatively and then rewind as if it had never happened.
type Stream interface {
	// LA returns the type of the token k positions ahead (1-based; LA(1)
	// is the next token to be consumed), or allstar.EOF beyond the end.
	LA(k int) int
	// Get returns the token at absolute index i, fetching and buffering
	// from the underlying source as needed.
	Get(i int) Token
	// Index returns the stream's current position.
	Index() int
	// Consume returns the current token and advances the position by one.
	Consume() Token
	// Mark records the current position so a later Seek can return to it
	// even after the stream has buffered further ahead; it returns an
	// opaque marker. Markers nest: Release must be called in LIFO order.
	Mark() int
	// Release discards a marker obtained from Mark, permitting the stream
	// to free buffered tokens before it once no outstanding marker needs
	// them.
	Release(marker int)
	// Seek moves the stream's position to index, which must be within a
	// currently marked region (or not past the furthest point already
	// buffered).
	Seek(index int)
	// Size reports how many tokens have been buffered so far; it grows as
	// the stream reads further ahead and is not a bound on total input
	// length.
	Size() int
}

// BufferedStream is a concrete Stream backed by a fully materialized
// token slice, good for hand-assembled test input and for any lexer that
// already produces its tokens eagerly (as the demo CLI's lexmachine
// adapter does, package cmd/allstarc/lexer). It intentionally does not
// implement lazy fetch-on-demand from an io.Reader — that responsibility
// belongs to whatever lexer produces the slice, not to the parser side
// named by this package.
type BufferedStream struct {
	tokens []Token
	pos    int
	marks  []int
}

var _ Stream = (*BufferedStream)(nil)

// NewBufferedStream wraps an already-lexed slice of tokens. If the slice's
// last element is not an EOF token, NewBufferedStream appends a synthetic
// one so LA/Get never run off the end.
func NewBufferedStream(tokens []Token) *BufferedStream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type() != allstar.EOF {
		idx := len(tokens)
		tokens = append(tokens, &Basic{Typ: allstar.EOF, Idx: idx})
	}
	return &BufferedStream{tokens: tokens}
}

func (b *BufferedStream) LA(k int) int {
	i := b.pos + k - 1
	if i < 0 || i >= len(b.tokens) {
		return allstar.EOF
	}
	return b.tokens[i].Type()
}

func (b *BufferedStream) Get(i int) Token {
	if i < 0 || i >= len(b.tokens) {
		return b.tokens[len(b.tokens)-1]
	}
	return b.tokens[i]
}

func (b *BufferedStream) Index() int { return b.pos }

func (b *BufferedStream) Consume() Token {
	t := b.Get(b.pos)
	if t.Type() != allstar.EOF {
		b.pos++
	}
	return t
}

func (b *BufferedStream) Mark() int {
	b.marks = append(b.marks, b.pos)
	return len(b.marks) - 1
}

func (b *BufferedStream) Release(marker int) {
	if marker < 0 || marker >= len(b.marks) {
		panic("token: Release called with an unknown marker")
	}
	b.marks = b.marks[:marker]
}

func (b *BufferedStream) Seek(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(b.tokens) {
		index = len(b.tokens)
	}
	b.pos = index
}

func (b *BufferedStream) Size() int { return len(b.tokens) }
