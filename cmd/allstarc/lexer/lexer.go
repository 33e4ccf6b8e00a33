/*
Package lexer adapts timtadh/lexmachine into a token.Stream for the
cmd/allstarc demo, the same way the teacher's lr/scanner package adapts
lexmachine into its own Tokenizer interface (see NewLMAdapter in
lr/scanner/lexmachine.go). The interpreter core never imports lexmachine
itself — lexing stays a concern of the demo CLI only, per spec §1's
Non-goals — so this package exists purely to give cmd/allstarc *some* real
token source to drive ParserInterpreter with.

Unlike the teacher's adapter, which hands out tokens one at a time through
a Tokenizer.NextToken method, this one drains the lexmachine scanner
eagerly and wraps the result in a token.BufferedStream: ParserInterpreter
needs Mark/Seek/Release to support speculative ALL(*) lookahead, and
BufferedStream is the only Stream implementation this module ships.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/allstar"
	"github.com/npillmayer/allstar/token"
)

// Token type values the demo expr grammar's ATN (see cmd/allstarc's
// buildExprATN) was built against. A real grammar compiler would emit
// these as part of its generated Vocabulary; the demo hand-assembles both
// sides from the same constants instead.
const (
	Int = iota + 1
	Plus
	Star
	LParen
	RParen
)

// Names gives the symbolic names of the token types above, indexed by
// type, suitable for building a vocab.Vocabulary.
var Names = []string{
	0:      "",
	Int:    "INT",
	Plus:   "PLUS",
	Star:   "STAR",
	LParen: "LPAREN",
	RParen: "RPAREN",
}

// Lexer wraps a compiled lexmachine DFA for the demo expression language:
// integers, '+', '*', '(', ')', with whitespace skipped.
type Lexer struct {
	m *lexmachine.Lexer
}

// New compiles the demo's lexmachine rules. It returns an error if the
// underlying regular expressions fail to compile into a DFA, mirroring
// NewLMAdapter's contract in the teacher package.
func New() (*Lexer, error) {
	m := lexmachine.NewLexer()
	m.Add([]byte(`[0-9]+`), makeToken(Int))
	m.Add([]byte(`\+`), makeToken(Plus))
	m.Add([]byte(`\*`), makeToken(Star))
	m.Add([]byte(`\(`), makeToken(LParen))
	m.Add([]byte(`\)`), makeToken(RParen))
	m.Add([]byte(`( |\t|\n|\r)+`), skip)
	if err := m.Compile(); err != nil {
		tracer().Errorf("compiling lexer DFA: %v", err)
		return nil, err
	}
	return &Lexer{m: m}, nil
}

// Tokenize runs input through the lexer to completion and returns the
// resulting tokens as a token.Stream, ready to hand to
// interp.ParserInterpreter.Parse. On a lexical error it skips the
// offending byte and keeps going, the same resynchronization lexmachine's
// own UnconsumedInput recovery uses in the teacher's adapter, and reports
// the error in its own return value rather than aborting the whole scan.
func (l *Lexer) Tokenize(input string) (token.Stream, error) {
	s, err := l.m.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []token.Token
	var firstErr error
	for {
		tok, err, eof := s.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				if firstErr == nil {
					firstErr = &token.LexerNoViableAltError{Input: input, StartIdx: ui.FailTC}
				}
				s.TC = ui.FailTC
				continue
			}
			return nil, err
		}
		lt := tok.(*lexmachine.Token)
		toks = append(toks, &token.Basic{
			Typ:       lt.Type,
			TokenText: string(lt.Lexeme),
			SpanValue: allstar.Span{lt.StartColumn, lt.EndColumn},
			Idx:       len(toks),
		})
	}
	tracer().Infof("lexed %d tokens from %d bytes of input", len(toks), len(input))
	return token.NewBufferedStream(toks), firstErr
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}
