package atn

import "testing"

// buildSEqualsInt builds the ATN for `s: ID '=' INT ;` used throughout this
// module's tests (seed scenario 1 of spec §8).
func buildSEqualsInt() (*Builder, *State, *State) {
	const (
		ruleS = 0
		ID    = 1
		EQ    = 2
		INT   = 3
	)
	b := NewBuilder(1, INT)
	start, stop := b.Rule(ruleS, false)
	s1 := b.Basic(ruleS)
	s2 := b.Basic(ruleS)
	start.AddTransition(NewEpsilonTransition(s1.Number))
	s1.AddTransition(NewAtomTransition(s2.Number, ID))
	s3 := b.Basic(ruleS)
	s2.AddTransition(NewAtomTransition(s3.Number, EQ))
	s4 := b.Basic(ruleS)
	s3.AddTransition(NewAtomTransition(s4.Number, INT))
	s4.AddTransition(NewEpsilonTransition(stop.Number))
	return b, start, stop
}

func TestBuilderWiresRuleStartStop(t *testing.T) {
	b, start, stop := buildSEqualsInt()
	if start.Type != StateRuleStart {
		t.Fatalf("expected rule-start, got %s", start.Type)
	}
	if stop.Type != StateRuleStop {
		t.Fatalf("expected rule-stop, got %s", stop.Type)
	}
	if start.EndState != stop.Number {
		t.Fatalf("start.EndState = %d, want %d", start.EndState, stop.Number)
	}
	if b.ATN().RuleToStartState[0] != start {
		t.Fatalf("rule table not wired to start state")
	}
}

func TestNextTokensNoContextFollowsEpsilon(t *testing.T) {
	b, start, _ := buildSEqualsInt()
	iset := b.ATN().NextTokensNoContext(start)
	if !iset.Contains(1) { // ID
		t.Fatalf("expected ID (1) to be in NextTokens(start), got %v", iset)
	}
}

func TestNextTokensMemoizesAndFreezes(t *testing.T) {
	b, start, _ := buildSEqualsInt()
	first := b.ATN().NextTokensNoContext(start)
	second := b.ATN().NextTokensNoContext(start)
	if first != second {
		t.Fatalf("expected memoized IntervalSet instance to be reused")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected mutating a frozen IntervalSet to panic")
		}
	}()
	first.AddOne(99)
}

func TestDecisionStateRegistration(t *testing.T) {
	b := NewBuilder(1, 10)
	s := b.Basic(0)
	alt1 := b.Basic(0)
	alt2 := b.Basic(0)
	d := b.Decision(s, alt1.Number, alt2.Number)
	if d != 0 {
		t.Fatalf("expected first decision to be numbered 0, got %d", d)
	}
	if b.ATN().DecisionState(0) != s {
		t.Fatalf("decision state lookup did not return registered state")
	}
	if !s.IsDecisionState() {
		t.Fatalf("expected s.IsDecisionState() to be true after Decision()")
	}
}

func TestExpectedTokensPanicsOnInvalidState(t *testing.T) {
	b := NewBuilder(1, 10)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected ExpectedTokens on an invalid state number to panic")
		}
	}()
	b.ATN().ExpectedTokens(999, nil)
}

func TestIntervalSetMergesAdjacentRanges(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(1, 3)
	s.AddRange(4, 6)
	s.AddOne(10)
	if s.String() != "{1..6, 10}" {
		t.Fatalf("unexpected merged set: %s", s.String())
	}
	s.RemoveOne(10)
	if s.Contains(10) {
		t.Fatalf("expected 10 to be removed")
	}
}

func TestStarLoopWiresLoopbackAndEndLinks(t *testing.T) {
	b := NewBuilder(1, 10)
	entry, loopback, end := b.StarLoop(0)
	if entry.Type != StateStarLoopEntry {
		t.Fatalf("expected entry to be a StarLoopEntry, got %s", entry.Type)
	}
	if loopback.Type != StateStarLoopback {
		t.Fatalf("expected loopback to be a StarLoopback, got %s", loopback.Type)
	}
	if end.Type != StateLoopEnd {
		t.Fatalf("expected end to be a LoopEnd, got %s", end.Type)
	}
	if entry.LoopBack != loopback.Number || loopback.LoopBack != entry.Number {
		t.Fatalf("expected entry and loopback to reference each other")
	}
	if entry.EndState != end.Number {
		t.Fatalf("expected entry.EndState to point at end, got %d want %d", entry.EndState, end.Number)
	}
}

func TestDeserializeRejectsUnknownVersion(t *testing.T) {
	bogus := make([]byte, 16)
	_, err := Deserialize(bogus)
	if err == nil {
		t.Fatalf("expected an error for an unrecognized UUID")
	}
	if _, ok := err.(*ErrUnknownSerializationVersion); !ok {
		t.Fatalf("expected ErrUnknownSerializationVersion, got %T: %v", err, err)
	}
}
