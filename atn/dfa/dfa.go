package dfa

import (
	"sync"

	"github.com/npillmayer/allstar/atn/config"
)

// DFA holds the lazily-discovered automaton for a single decision. S0 is
// the start state used for SLL prediction in the decision's default outer
// context; S0Full is the corresponding start state for full-LL prediction,
// kept separate because the two walk different ATNConfigSets (one with
// FullCtx false, one true) and must never be confused.
//
// mu guards this DFA's state table only — one mutex per decision, not one
// global mutex across every decision in the ATN, so that predicting two
// unrelated decisions concurrently (spec §5) doesn't serialize on a shared
// lock. Each State guards its own edge map.
type DFA struct {
	Decision int

	mu     sync.RWMutex
	byKey  map[string]*State
	states []*State

	S0     *State
	S0Full *State
}

// New returns an empty DFA for the given decision number.
func New(decision int) *DFA {
	return &DFA{
		Decision: decision,
		byKey:    make(map[string]*State),
	}
}

// GetOrAdd returns the canonical State for configs: an existing one with
// the same Key if this DFA has already seen it, or a newly registered one
// otherwise. This is the subset-construction dedup step — two different
// closures that land on the same configuration set become the same
// DFAState, which is what bounds the DFA's size independent of input
// length.
func (d *DFA) GetOrAdd(configs *config.Set) (state *State, isNew bool) {
	configs.Freeze()
	candidate := newState(configs)
	key := candidate.Key()

	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.byKey[key]; ok {
		return existing, false
	}
	candidate.stateNumber = len(d.states)
	d.byKey[key] = candidate
	d.states = append(d.states, candidate)
	tracer().Debugf("dfa[%d]: registered state %d (%d configs)", d.Decision, candidate.stateNumber, configs.Len())
	return candidate, true
}

// NumStates reports how many distinct DFAStates this decision has
// discovered so far.
func (d *DFA) NumStates() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.states)
}

// States returns the discovered states in the order they were first
// registered with GetOrAdd.
func (d *DFA) States() []*State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*State, len(d.states))
	copy(out, d.states)
	return out
}

// Reset discards every discovered state, returning the DFA to empty. Used
// when a grammar's lexer mode changes invalidate previously cached
// predictions, or in tests that want a clean decision between scenarios.
func (d *DFA) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byKey = make(map[string]*State)
	d.states = nil
	d.S0 = nil
	d.S0Full = nil
}

// Table holds one DFA per decision of an ATN, created on demand.
type Table struct {
	mu   sync.Mutex
	byID map[int]*DFA
}

// NewTable returns an empty per-decision DFA table.
func NewTable() *Table {
	return &Table{byID: make(map[int]*DFA)}
}

// ForDecision returns the DFA for decision, creating it on first use.
func (t *Table) ForDecision(decision int) *DFA {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.byID[decision]
	if !ok {
		d = New(decision)
		t.byID[decision] = d
	}
	return d
}
