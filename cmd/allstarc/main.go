/*
Command allstarc is a small interactive demo of package interp: it
hand-assembles the toy arithmetic ATN in grammar.go, lexes each line of
input with the lexmachine adapter in package lexer, drives
interp.ParserInterpreter over the resulting token stream, and prints the
tree the interpreter built — the same "sandbox for experiments" role the
teacher's terex/terexlang/trepl tool fills for TeREx s-expressions, here
retargeted at exercising the ATN simulator instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/simulator"
	"github.com/npillmayer/allstar/cmd/allstarc/lexer"
	"github.com/npillmayer/allstar/interp"
	"github.com/npillmayer/allstar/token"
	"github.com/npillmayer/allstar/vocab"
)

func tracer() tracing.Trace {
	return tracing.Select("allstar.allstarc")
}

func main() {
	initDisplay()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to allstarc — type an arithmetic expression, <ctrl>D to quit")

	grammar := buildExprATN()
	voc := exprVocabulary()
	lx, err := lexer.New()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	rl, err := readline.New("allstarc> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer rl.Close()

	if rest := strings.TrimSpace(strings.Join(flag.Args(), " ")); rest != "" {
		run(grammar, voc, lx, rest)
	}
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		run(grammar, voc, lx, line)
	}
	pterm.Info.Println("bye")
}

// run lexes and parses a single line against grammar, rendering either the
// resulting tree or the recognition error pterm reported.
func run(grammar *atn.ATN, voc *vocab.Vocabulary, lx *lexer.Lexer, line string) {
	stream, lexErr := lx.Tokenize(line)
	if lexErr != nil {
		pterm.Error.Println(lexErr.Error())
	}
	sim := simulator.New(grammar)
	p := interp.New(grammar, sim, stream, token.NewDefaultErrorStrategy(), []string{"expr"}, voc)
	ctx, err := p.Parse(exprRule)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tree := p.TreeString(ctx)
	root := pterm.NewTreeFromLeveledList(leveledFromSExpr(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledFromSExpr turns the parenthesized tree TreeString renders (e.g.
// "(expr (expr 1) + (expr 2))") into a pterm.LeveledList, the same
// indentation-by-nesting-depth shape the teacher's trepl builds from a
// TeREx s-expr in makeTreeOps/leveledElem.
func leveledFromSExpr(s string) pterm.LeveledList {
	var ll pterm.LeveledList
	level := -1
	var tok strings.Builder
	flush := func() {
		if tok.Len() == 0 {
			return
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: tok.String()})
		tok.Reset()
	}
	for _, r := range s {
		switch r {
		case '(':
			flush()
			level++
		case ')':
			flush()
			level--
		case ' ':
			flush()
		default:
			tok.WriteRune(r)
		}
	}
	flush()
	return ll
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{Text: "  >>", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: "  Error", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
}
