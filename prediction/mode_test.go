package prediction

import (
	"testing"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/config"
	"github.com/npillmayer/allstar/atn/pcontext"
)

func altSet(alts ...int) *config.AltSet {
	s := config.NewAltSet()
	for _, a := range alts {
		s.Add(a)
	}
	return s
}

func TestGetAltsUnion(t *testing.T) {
	got := GetAlts([]*config.AltSet{altSet(1, 2), altSet(2, 3)})
	if got.Size() != 3 {
		t.Fatalf("expected union of size 3, got %d", got.Size())
	}
}

func TestGetUniqueAltWhenAllGroupsAgree(t *testing.T) {
	if got := GetUniqueAlt([]*config.AltSet{altSet(1), altSet(1)}); got != 1 {
		t.Fatalf("expected unique alt 1, got %d", got)
	}
	if got := GetUniqueAlt([]*config.AltSet{altSet(1), altSet(2)}); got != InvalidAltNumber {
		t.Fatalf("expected InvalidAltNumber when groups disagree, got %d", got)
	}
}

func TestGetSingleViableAlt(t *testing.T) {
	if got := GetSingleViableAlt([]*config.AltSet{altSet(1, 2), altSet(1, 3)}); got != 1 {
		t.Fatalf("expected 1 (the shared minimum), got %d", got)
	}
	if got := GetSingleViableAlt([]*config.AltSet{altSet(1, 2), altSet(2, 3)}); got != InvalidAltNumber {
		t.Fatalf("expected InvalidAltNumber when minimums differ, got %d", got)
	}
}

func TestAllSubsetsConflictAndEqual(t *testing.T) {
	if !AllSubsetsConflict([]*config.AltSet{altSet(1, 2), altSet(1, 2)}) {
		t.Fatalf("expected all subsets to conflict")
	}
	if AllSubsetsConflict([]*config.AltSet{altSet(1), altSet(1, 2)}) {
		t.Fatalf("expected a singleton group to prevent allSubsetsConflict")
	}
	if !AllSubsetsEqual([]*config.AltSet{altSet(1, 2), altSet(1, 2)}) {
		t.Fatalf("expected equal alt sets to compare equal")
	}
	if AllSubsetsEqual([]*config.AltSet{altSet(1, 2), altSet(1, 3)}) {
		t.Fatalf("expected differing alt sets to compare unequal")
	}
}

func TestHasSLLConflictTerminatingPredictionWhenAllFinished(t *testing.T) {
	stop := atn.NewState(atn.StateRuleStop, 0)
	stop.Number = 1
	cs := config.NewSet(false)
	cs.Add(config.New(stop, 1, pcontext.Empty), nil)
	if !HasSLLConflictTerminatingPrediction(cs) {
		t.Fatalf("expected termination when every config is in a rule-stop state")
	}
}

func TestHasSLLConflictTerminatingPredictionOnGenuineConflict(t *testing.T) {
	basic := atn.NewState(atn.StateBasic, 0)
	basic.Number = 1
	cs := config.NewSet(false)
	cs.Add(config.New(basic, 1, pcontext.Empty), nil)
	cs.Add(config.New(basic, 2, pcontext.Empty), nil)
	if !HasSLLConflictTerminatingPrediction(cs) {
		t.Fatalf("expected a two-way conflict at the same state/context to terminate SLL prediction")
	}
}

// TestHasSLLConflictTerminatingPredictionSpuriousWhenResolvedElsewhere grounds
// spec §4.4's nuance: a (state,context) pair reached by two alts is only a
// genuine, prediction-terminating conflict if no other (state,context) pair
// in the same set resolves unambiguously to a single alt. If
// GetConflictingAltSubsets ever went back to dropping singleton groups,
// this would regress to reporting termination here too.
func TestHasSLLConflictTerminatingPredictionSpuriousWhenResolvedElsewhere(t *testing.T) {
	conflictState := atn.NewState(atn.StateBasic, 0)
	conflictState.Number = 1
	unambiguousState := atn.NewState(atn.StateBasic, 0)
	unambiguousState.Number = 2

	cs := config.NewSet(false)
	cs.Add(config.New(conflictState, 1, pcontext.Empty), nil)
	cs.Add(config.New(conflictState, 2, pcontext.Empty), nil)
	cs.Add(config.New(unambiguousState, 1, pcontext.Empty), nil)

	if HasSLLConflictTerminatingPrediction(cs) {
		t.Fatalf("expected a conflict also resolved unambiguously elsewhere to be spurious, not prediction-terminating")
	}
}

func TestHasSLLConflictTerminatingPredictionFalseWithoutConflict(t *testing.T) {
	b1 := atn.NewState(atn.StateBasic, 0)
	b1.Number = 1
	b2 := atn.NewState(atn.StateBasic, 0)
	b2.Number = 2
	cs := config.NewSet(false)
	cs.Add(config.New(b1, 1, pcontext.Empty), nil)
	cs.Add(config.New(b2, 2, pcontext.Empty), nil)
	if HasSLLConflictTerminatingPrediction(cs) {
		t.Fatalf("expected no termination when alternatives occupy distinct states")
	}
}
