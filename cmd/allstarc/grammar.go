package main

import (
	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/cmd/allstarc/lexer"
	"github.com/npillmayer/allstar/vocab"
)

// exprRule is the only rule in the demo grammar, expressed informally as
//
//	expr : expr '*' expr   // precedence 2, right operand re-enters at 3
//	     | expr '+' expr   // precedence 1, right operand re-enters at 2
//	     | '(' expr ')'
//	     | INT
//	     ;
//
// This is the same shape ANTLR itself generates for a left-recursive rule
// with more than one operator: a single StarLoopEntry decision after the
// primary alternative, with one alt per operator, each gated by a
// precedence predicate for its own binding power and re-entering the rule
// at one more than that so same- or lower-precedence continuations fall
// through to the enclosing loop instead of being swallowed by the right
// operand. buildExprATN wires it by hand, the way atn_test.go and
// interp/interpreter_test.go build their toy grammars, since this module
// has no grammar compiler of its own (spec §1 Non-goals).
const exprRule = 0

// buildExprATN assembles the ATN described above using atn.Builder, the
// ergonomic hand-assembly helper atn/builder.go provides for exactly this
// purpose.
func buildExprATN() *atn.ATN {
	b := atn.NewBuilder(1, lexer.RParen)

	ruleStart, ruleStop := b.Rule(exprRule, true)

	primary := b.Basic(exprRule)
	ruleStart.AddTransition(atn.NewEpsilonTransition(primary.Number))

	intEntry := b.Basic(exprRule)
	intAfter := b.Basic(exprRule)
	intEntry.AddTransition(atn.NewAtomTransition(intAfter.Number, lexer.Int))

	lparenEntry := b.Basic(exprRule)
	beforeSubExpr := b.Basic(exprRule)
	afterSubExpr := b.Basic(exprRule)
	afterRParen := b.Basic(exprRule)
	lparenEntry.AddTransition(atn.NewAtomTransition(beforeSubExpr.Number, lexer.LParen))
	beforeSubExpr.AddTransition(atn.NewRuleTransition(ruleStart.Number, exprRule, 0, afterSubExpr.Number))
	afterSubExpr.AddTransition(atn.NewAtomTransition(afterRParen.Number, lexer.RParen))

	primary.AddTransition(atn.NewEpsilonTransition(intEntry.Number))
	primary.AddTransition(atn.NewEpsilonTransition(lparenEntry.Number))
	b.Decision(primary, intEntry.Number, lparenEntry.Number)

	loopEntry, loopBack, loopEnd := b.StarLoop(exprRule)
	loopEntry.PrecedenceRuleDecision = true
	intAfter.AddTransition(atn.NewEpsilonTransition(loopEntry.Number))
	afterRParen.AddTransition(atn.NewEpsilonTransition(loopEntry.Number))

	plusAlt := b.Basic(exprRule)
	plusGate := b.Basic(exprRule)
	afterPlusTok := b.Basic(exprRule)
	afterPlusRHS := b.Basic(exprRule)
	plusAlt.AddTransition(atn.NewPrecedencePredicateTransition(plusGate.Number, 1))
	plusGate.AddTransition(atn.NewAtomTransition(afterPlusTok.Number, lexer.Plus))
	afterPlusTok.AddTransition(atn.NewRuleTransition(ruleStart.Number, exprRule, 2, afterPlusRHS.Number))
	afterPlusRHS.AddTransition(atn.NewEpsilonTransition(loopBack.Number))

	mulAlt := b.Basic(exprRule)
	mulGate := b.Basic(exprRule)
	afterMulTok := b.Basic(exprRule)
	afterMulRHS := b.Basic(exprRule)
	mulAlt.AddTransition(atn.NewPrecedencePredicateTransition(mulGate.Number, 2))
	mulGate.AddTransition(atn.NewAtomTransition(afterMulTok.Number, lexer.Star))
	afterMulTok.AddTransition(atn.NewRuleTransition(ruleStart.Number, exprRule, 3, afterMulRHS.Number))
	afterMulRHS.AddTransition(atn.NewEpsilonTransition(loopBack.Number))

	loopEntry.AddTransition(atn.NewEpsilonTransition(plusAlt.Number))
	loopEntry.AddTransition(atn.NewEpsilonTransition(mulAlt.Number))
	loopEntry.AddTransition(atn.NewEpsilonTransition(loopEnd.Number))
	b.Decision(loopEntry, plusAlt.Number, mulAlt.Number, loopEnd.Number)
	loopBack.AddTransition(atn.NewEpsilonTransition(loopEntry.Number))
	loopEnd.AddTransition(atn.NewEpsilonTransition(ruleStop.Number))

	return b.ATN()
}

// exprVocabulary names the demo's token types for diagnostics and for
// ParserInterpreter.TreeString-adjacent rendering.
func exprVocabulary() *vocab.Vocabulary {
	literals := make([]string, lexer.RParen+1)
	literals[lexer.Plus] = "'+'"
	literals[lexer.Star] = "'*'"
	literals[lexer.LParen] = "'('"
	literals[lexer.RParen] = "')'"
	return vocab.New(literals, lexer.Names, nil)
}
