package config

import (
	"testing"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/pcontext"
	"github.com/npillmayer/allstar/atn/semctx"
)

func state(number int, typ atn.StateType) *State {
	s := atn.NewState(typ, 0)
	s.Number = number
	return s
}

// State is a thin local alias so tests read naturally; there is no
// behavioral difference from *atn.State.
type State = atn.State

func TestAddMergesOnKeyCollisionByContext(t *testing.T) {
	s1 := state(1, atn.StateBasic)
	set := NewSet(false)
	cache := pcontext.NewMergeCache()

	ctxA := pcontext.NewSingleton(pcontext.Empty, 5)
	ctxB := pcontext.NewSingleton(pcontext.Empty, 7)

	added1 := set.Add(New(s1, 1, ctxA), cache)
	added2 := set.Add(New(s1, 1, ctxB), cache)

	if !added1 {
		t.Fatalf("expected first Add to report a new configuration")
	}
	if added2 {
		t.Fatalf("expected second Add to merge, not add a new configuration")
	}
	if set.Len() != 1 {
		t.Fatalf("expected one merged configuration, got %d", set.Len())
	}
	merged := set.Get(0)
	if merged.Context.Kind != pcontext.KindArray || merged.Context.Size() != 2 {
		t.Fatalf("expected merge to fan out into a 2-way array context, got %v", merged.Context)
	}
}

func TestAddKeepsDistinctAltsSeparate(t *testing.T) {
	s1 := state(1, atn.StateBasic)
	set := NewSet(false)
	set.Add(New(s1, 1, pcontext.Empty), nil)
	set.Add(New(s1, 2, pcontext.Empty), nil)
	if set.Len() != 2 {
		t.Fatalf("expected two distinct configurations for two alts, got %d", set.Len())
	}
	if len(set.Alts()) != 2 {
		t.Fatalf("expected Alts() to report both alternatives")
	}
}

func TestFreezePreventsFurtherAdd(t *testing.T) {
	s1 := state(1, atn.StateBasic)
	set := NewSet(false)
	set.Freeze()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Add on a frozen set to panic")
		}
	}()
	set.Add(New(s1, 1, pcontext.Empty), nil)
}

func TestRemoveAllConfigsNotInRuleStopState(t *testing.T) {
	a := atn.New(atn.GrammarParser, 8)
	stop := atn.NewState(atn.StateRuleStop, 0)
	a.AddState(stop)
	basic := atn.NewState(atn.StateBasic, 0)
	a.AddState(basic)

	set := NewSet(false)
	set.Add(New(stop, 1, pcontext.Empty), nil)
	set.Add(New(basic, 2, pcontext.Empty), nil)

	filtered := set.RemoveAllConfigsNotInRuleStopState(a, false)
	if filtered.Len() != 1 {
		t.Fatalf("expected only the rule-stop configuration to survive, got %d", filtered.Len())
	}
	if filtered.Get(0).Alt != 1 {
		t.Fatalf("expected surviving configuration to be alt 1")
	}
}

func TestGetConflictingAltSubsetsReturnsEveryGroupIncludingSingletons(t *testing.T) {
	s1 := state(1, atn.StateBasic)
	set := NewSet(false)
	set.Add(New(s1, 1, pcontext.Empty), nil)
	set.Add(New(s1, 2, pcontext.Empty), nil)
	set.Add(New(s1, 3, pcontext.NewSingleton(pcontext.Empty, 9)), nil)

	groups := set.GetConflictingAltSubsets()
	if len(groups) != 2 {
		t.Fatalf("expected one conflicting group and one singleton group, got %d groups", len(groups))
	}
	var conflicting, singleton *AltSet
	for _, g := range groups {
		if g.Size() > 1 {
			conflicting = g
		} else {
			singleton = g
		}
	}
	if conflicting == nil || conflicting.Size() != 2 || !conflicting.Contains(1) || !conflicting.Contains(2) {
		t.Fatalf("expected a conflicting group {1,2}, got %v", conflicting)
	}
	if singleton == nil || singleton.Size() != 1 || !singleton.Contains(3) {
		t.Fatalf("expected a non-conflicting singleton group {3}, got %v", singleton)
	}
}

func TestGetAltThatFinishedDecisionEntryRulePicksLowest(t *testing.T) {
	stop := atn.NewState(atn.StateRuleStop, 0)
	stop.Number = 1
	set := NewSet(false)
	set.Add(New(stop, 3, pcontext.Empty), nil)
	set.Add(New(stop, 1, pcontext.Empty), nil)
	if got := set.GetAltThatFinishedDecisionEntryRule(); got != 1 {
		t.Fatalf("expected alt 1, got %d", got)
	}
}

func TestGetAltThatFinishedDecisionEntryRuleNoneWhenNoStopState(t *testing.T) {
	basic := state(1, atn.StateBasic)
	set := NewSet(false)
	set.Add(New(basic, 1, pcontext.Empty), nil)
	if got := set.GetAltThatFinishedDecisionEntryRule(); got != InvalidAltNumber {
		t.Fatalf("expected InvalidAltNumber, got %d", got)
	}
}

func TestSplitAccordingToSemanticValidity(t *testing.T) {
	s1 := state(1, atn.StateBasic)
	set := NewSet(false)
	set.Add(New(s1, 1, pcontext.Empty), nil)
	set.Add(NewWithSemantic(s1, 2, pcontext.Empty, semctx.NewPredicate(0, 0, false)), nil)

	succeeded, failed := set.SplitAccordingToSemanticValidity(func(c *Config) bool {
		return false
	})
	if succeeded.Len() != 1 || failed.Len() != 1 {
		t.Fatalf("expected one config to succeed (None) and one to fail, got %d/%d", succeeded.Len(), failed.Len())
	}
}

func TestApplyPrecedenceFilterKeepsHighestAtSharedStateAndContext(t *testing.T) {
	s1 := state(1, atn.StateBasic)
	set := NewSet(false)
	set.Add(New(s1, 1, pcontext.Empty), nil)
	set.Add(New(s1, 2, pcontext.Empty), nil)

	filtered := set.ApplyPrecedenceFilter(func(c *Config) *semctx.Context {
		return semctx.None
	})
	if filtered.Len() != 1 {
		t.Fatalf("expected alt 2 to be filtered out in favor of alt 1, got %d configs", filtered.Len())
	}
	if filtered.Get(0).Alt != 1 {
		t.Fatalf("expected surviving alt to be 1, got %d", filtered.Get(0).Alt)
	}
}
