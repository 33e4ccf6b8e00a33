package interp

import (
	"testing"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/simulator"
	"github.com/npillmayer/allstar/token"
)

const (
	intTok   = 1
	plusTok  = 2
	ruleExpr = 0
)

// buildAddExpr constructs the ATN for the left-recursive rule
//
//	expr: expr '+' expr | INT ;
//
// by hand, the same shape the real grammar compiler would emit for a
// single-precedence-level left-recursive rule: a primary alternative
// (INT), a StarLoopEntry precedence decision choosing between continuing
// the loop (matching '+' and recursing) and exiting it, and a loopback
// edge from the end of the recursive alternative back to the loop entry.
func buildAddExpr() *atn.ATN {
	a := atn.New(atn.GrammarParser, 8)

	ruleStart := atn.NewState(atn.StateRuleStart, ruleExpr)
	ruleStart.IsPrecedenceRule = true
	a.AddState(ruleStart)
	ruleStop := atn.NewState(atn.StateRuleStop, ruleExpr)
	a.AddState(ruleStop)
	ruleStart.EndState = ruleStop.Number
	a.RuleToStartState = []*atn.State{ruleStart}
	a.RuleToStopState = []*atn.State{ruleStop}

	primary := atn.NewState(atn.StateBasic, ruleExpr)
	a.AddState(primary)
	intEntry := atn.NewState(atn.StateBasic, ruleExpr)
	a.AddState(intEntry)
	intAfter := atn.NewState(atn.StateBasic, ruleExpr)
	a.AddState(intAfter)

	loopEntry := atn.NewState(atn.StateStarLoopEntry, ruleExpr)
	loopEntry.PrecedenceRuleDecision = true
	a.AddState(loopEntry)
	continueEntry := atn.NewState(atn.StateBasic, ruleExpr)
	a.AddState(continueEntry)
	afterOp := atn.NewState(atn.StateBasic, ruleExpr)
	a.AddState(afterOp)
	afterRHS := atn.NewState(atn.StateBasic, ruleExpr)
	a.AddState(afterRHS)
	loopBack := atn.NewState(atn.StateStarLoopback, ruleExpr)
	a.AddState(loopBack)
	exitEntry := atn.NewState(atn.StateLoopEnd, ruleExpr)
	a.AddState(exitEntry)

	loopEntry.LoopBack = loopBack.Number
	loopBack.LoopBack = loopEntry.Number
	loopEntry.EndState = exitEntry.Number

	ruleStart.AddTransition(atn.NewEpsilonTransition(primary.Number))
	primary.AddTransition(atn.NewEpsilonTransition(intEntry.Number))

	intEntry.AddTransition(atn.NewAtomTransition(intAfter.Number, intTok))
	intAfter.AddTransition(atn.NewEpsilonTransition(loopEntry.Number))

	loopEntry.AddTransition(atn.NewEpsilonTransition(continueEntry.Number))
	loopEntry.AddTransition(atn.NewEpsilonTransition(exitEntry.Number))
	loopEntry.AltStates = []int{continueEntry.Number, exitEntry.Number}
	a.DefineDecisionState(loopEntry)

	// continueEntry is gated by a precedence predicate (this alt's own
	// binding power, 1) before it ever matches '+': the recursive call for
	// the right operand is entered at threshold 2, one above this level, so
	// that same-level chaining is only ever consumed by the loopback edge
	// here, giving left-associative grouping instead of right-associative.
	predGate := atn.NewState(atn.StateBasic, ruleExpr)
	a.AddState(predGate)
	continueEntry.AddTransition(atn.NewPrecedencePredicateTransition(predGate.Number, 1))
	predGate.AddTransition(atn.NewAtomTransition(afterOp.Number, plusTok))
	afterOp.AddTransition(atn.NewRuleTransition(ruleStart.Number, ruleExpr, 2, afterRHS.Number))
	afterRHS.AddTransition(atn.NewEpsilonTransition(loopBack.Number))
	loopBack.AddTransition(atn.NewEpsilonTransition(loopEntry.Number))

	exitEntry.AddTransition(atn.NewEpsilonTransition(ruleStop.Number))

	return a
}

func addExprTokens(types ...int) token.Stream {
	toks := make([]token.Token, len(types))
	for i, typ := range types {
		toks[i] = &token.Basic{Typ: typ, Idx: i}
	}
	return token.NewBufferedStream(toks)
}

func newAddExprInterpreter(input token.Stream) *ParserInterpreter {
	a := buildAddExpr()
	sim := simulator.New(a)
	return New(a, sim, input, token.NewDefaultErrorStrategy(), []string{"expr"}, nil)
}

func TestParseSingleIntDoesNotRecurse(t *testing.T) {
	p := newAddExprInterpreter(addExprTokens(intTok))
	ctx, err := p.Parse(ruleExpr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.ChildCount() != 1 {
		t.Fatalf("expected a single INT child, got %d", ctx.ChildCount())
	}
	if got := p.TreeString(ctx); got[:5] != "(expr" {
		t.Fatalf("unexpected tree: %q", got)
	}
}

func TestParseSingleAddition(t *testing.T) {
	p := newAddExprInterpreter(addExprTokens(intTok, plusTok, intTok))
	ctx, err := p.Parse(ruleExpr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// one level of wrapping: [leftOperand, '+', rightOperand]
	if ctx.ChildCount() != 3 {
		t.Fatalf("expected 3 children (left, '+', right), got %d: %s", ctx.ChildCount(), ctx.String())
	}
}

func TestParseChainedAdditionUnwindsFully(t *testing.T) {
	// "1+2+3": left-associative, so the outermost node's right child is the
	// rightmost INT and its left child is the wrapped "1+2" subtree.
	p := newAddExprInterpreter(addExprTokens(intTok, plusTok, intTok, plusTok, intTok))
	ctx, err := p.Parse(ruleExpr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.ChildCount() != 3 {
		t.Fatalf("expected 3 top-level children, got %d: %s", ctx.ChildCount(), ctx.String())
	}
	left, ok := ctx.Children[0].(*ParserRuleContext)
	if !ok {
		t.Fatalf("expected the left child to be a nested expr context, got %T", ctx.Children[0])
	}
	if left.ChildCount() != 3 {
		t.Fatalf("expected the nested \"1+2\" subtree to have 3 children, got %d", left.ChildCount())
	}
	if ctx.Parent != nil {
		t.Fatalf("expected the fully reduced top-level context to have no parent")
	}
}

func TestParseReportsRecognitionErrorOnLeadingPlus(t *testing.T) {
	p := newAddExprInterpreter(addExprTokens(plusTok))
	_, err := p.Parse(ruleExpr)
	if err == nil {
		t.Fatalf("expected a recognition error when input starts with '+'")
	}
}
