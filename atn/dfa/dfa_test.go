package dfa

import (
	"sync"
	"testing"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/config"
	"github.com/npillmayer/allstar/atn/pcontext"
)

func sampleConfigs(alt int) *config.Set {
	s := atn.NewState(atn.StateBasic, 0)
	s.Number = 1
	cs := config.NewSet(false)
	cs.Add(config.New(s, alt, pcontext.Empty), nil)
	return cs
}

func TestGetOrAddDedupsByStructuralKey(t *testing.T) {
	d := New(0)
	a, isNewA := d.GetOrAdd(sampleConfigs(1))
	b, isNewB := d.GetOrAdd(sampleConfigs(1))
	if !isNewA {
		t.Fatalf("expected first registration to be new")
	}
	if isNewB {
		t.Fatalf("expected second registration with identical configs to be a dedup hit")
	}
	if a != b {
		t.Fatalf("expected the same *State for structurally identical config sets")
	}
	if d.NumStates() != 1 {
		t.Fatalf("expected exactly one registered state, got %d", d.NumStates())
	}
}

func TestGetOrAddDistinguishesDifferentAlts(t *testing.T) {
	d := New(0)
	d.GetOrAdd(sampleConfigs(1))
	d.GetOrAdd(sampleConfigs(2))
	if d.NumStates() != 2 {
		t.Fatalf("expected two distinct states for two distinct alt sets, got %d", d.NumStates())
	}
}

// TestConcurrentGetOrAddProducesNoDuplicates grounds spec §8 scenario 6:
// many goroutines racing to register the same configuration set against
// one decision's DFA must converge on a single DFAState.
func TestConcurrentGetOrAddProducesNoDuplicates(t *testing.T) {
	d := New(0)
	const n = 64
	results := make([]*State, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			st, _ := d.GetOrAdd(sampleConfigs(1))
			results[i] = st
		}()
	}
	wg.Wait()
	if d.NumStates() != 1 {
		t.Fatalf("expected exactly one state after concurrent registration, got %d", d.NumStates())
	}
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("expected every goroutine to observe the same canonical state")
		}
	}
}

func TestTableCreatesDFAsOnDemandPerDecision(t *testing.T) {
	table := NewTable()
	d0 := table.ForDecision(0)
	d1 := table.ForDecision(1)
	if d0 == d1 {
		t.Fatalf("expected distinct DFAs per decision")
	}
	if table.ForDecision(0) != d0 {
		t.Fatalf("expected ForDecision to return the same DFA on repeat calls")
	}
}

func TestResetClearsDiscoveredStates(t *testing.T) {
	d := New(0)
	d.GetOrAdd(sampleConfigs(1))
	d.Reset()
	if d.NumStates() != 0 {
		t.Fatalf("expected Reset to clear all states")
	}
}
