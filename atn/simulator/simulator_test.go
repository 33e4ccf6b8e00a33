package simulator

import (
	"testing"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/token"
)

const (
	idTok   = 1
	bangTok = 2
)

// buildAmbiguousE constructs the ATN for `e: ID | ID '!' ;` from spec §8
// scenario 2: a single decision whose two alternatives share a common ID
// prefix, one of them requiring a further '!' the other doesn't.
func buildAmbiguousE() (*atn.ATN, int) {
	a := atn.New(atn.GrammarParser, 8)

	ruleStart := atn.NewState(atn.StateRuleStart, 0)
	a.AddState(ruleStart)
	decisionStart := atn.NewState(atn.StateBlockStart, 0)
	a.AddState(decisionStart)

	alt1Entry := atn.NewState(atn.StateBasic, 0)
	a.AddState(alt1Entry)
	alt1AfterID := atn.NewState(atn.StateBasic, 0)
	a.AddState(alt1AfterID)

	alt2Entry := atn.NewState(atn.StateBasic, 0)
	a.AddState(alt2Entry)
	alt2AfterID := atn.NewState(atn.StateBasic, 0)
	a.AddState(alt2AfterID)
	alt2AfterBang := atn.NewState(atn.StateBasic, 0)
	a.AddState(alt2AfterBang)

	blockEnd := atn.NewState(atn.StateBlockEnd, 0)
	a.AddState(blockEnd)
	ruleStop := atn.NewState(atn.StateRuleStop, 0)
	a.AddState(ruleStop)

	ruleStart.AddTransition(atn.NewEpsilonTransition(decisionStart.Number))
	decisionStart.AltStates = []int{alt1Entry.Number, alt2Entry.Number}
	decision := a.DefineDecisionState(decisionStart)

	alt1Entry.AddTransition(atn.NewAtomTransition(alt1AfterID.Number, idTok))
	alt1AfterID.AddTransition(atn.NewEpsilonTransition(blockEnd.Number))

	alt2Entry.AddTransition(atn.NewAtomTransition(alt2AfterID.Number, idTok))
	alt2AfterID.AddTransition(atn.NewAtomTransition(alt2AfterBang.Number, bangTok))
	alt2AfterBang.AddTransition(atn.NewEpsilonTransition(blockEnd.Number))

	blockEnd.AddTransition(atn.NewEpsilonTransition(ruleStop.Number))

	return a, decision
}

func tokenStream(types ...int) token.Stream {
	toks := make([]token.Token, len(types))
	for i, typ := range types {
		toks[i] = &token.Basic{Typ: typ, Idx: i}
	}
	return token.NewBufferedStream(toks)
}

func TestAdaptivePredictPicksFinishedAltWhenTheOtherDies(t *testing.T) {
	a, decision := buildAmbiguousE()
	sim := New(a)
	input := tokenStream(idTok) // just "x", no '!' follows

	alt, err := sim.AdaptivePredict(decision, input, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alt != 1 {
		t.Fatalf("expected alt 1 (ID alone) to win when '!' is absent, got %d", alt)
	}
	if input.Index() != 0 {
		t.Fatalf("expected AdaptivePredict to restore the stream position, got %d", input.Index())
	}
}

func TestAdaptivePredictPicksAlt2WhenBangPresent(t *testing.T) {
	a, decision := buildAmbiguousE()
	sim := New(a)
	input := tokenStream(idTok, bangTok)

	alt, err := sim.AdaptivePredict(decision, input, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alt != 2 {
		t.Fatalf("expected alt 2 (ID '!') to win when '!' follows, got %d", alt)
	}
}

func TestAdaptivePredictNoViableAlternative(t *testing.T) {
	a, decision := buildAmbiguousE()
	sim := New(a)
	input := tokenStream(bangTok) // neither alt starts with '!'

	_, err := sim.AdaptivePredict(decision, input, nil, nil, nil, nil)
	if err == nil {
		t.Fatalf("expected a NoViableAltError")
	}
	if _, ok := err.(*token.NoViableAltError); !ok {
		t.Fatalf("expected *token.NoViableAltError, got %T", err)
	}
}

func TestOverrideForcesAlternative(t *testing.T) {
	a, decision := buildAmbiguousE()
	sim := New(a)
	sim.Overrides.Add(decision, 0, 2)
	input := tokenStream(idTok) // would normally resolve to alt 1

	alt, err := sim.AdaptivePredict(decision, input, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alt != 2 {
		t.Fatalf("expected the override to force alt 2, got %d", alt)
	}
}

func TestDFACachesStateAcrossRepeatedPredictions(t *testing.T) {
	a, decision := buildAmbiguousE()
	sim := New(a)
	sim.AdaptivePredict(decision, tokenStream(idTok), nil, nil, nil, nil)
	sim.AdaptivePredict(decision, tokenStream(idTok), nil, nil, nil, nil)
	d := sim.DFAs.ForDecision(decision)
	if d.NumStates() == 0 {
		t.Fatalf("expected the decision's DFA to have registered at least one state")
	}
}
