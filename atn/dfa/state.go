package dfa

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cnf/structhash"

	"github.com/npillmayer/allstar/atn/config"
)

// PredicatedAlt pairs an alternative with the semantic context that must
// hold for it to be chosen. A DFAState reached during SLL prediction that
// still carries semantic predicates records them here instead of baking
// in a single Prediction, so the simulator knows it must re-evaluate
// predicates against the live parser before committing.
type PredicatedAlt struct {
	Alt       int
	Predicate interface{} // holds a *semctx.Context; package dfa does not import semctx itself
}

// State is one node of a decision's DFA: the configuration set reachable
// by some input prefix, plus the transitions already discovered out of
// it. Edges are filled in lazily by package atn/simulator as new input
// symbols are tried.
type State struct {
	Configs *config.Set
	Edges   map[int]*State

	IsAcceptState bool
	// Prediction is the winning alternative once IsAcceptState is true and
	// no further predicate evaluation is needed.
	Prediction int
	// RequiresFullContext marks a state whose configs were ambiguous under
	// SLL and were only resolved by falling back to full-LL; such states
	// are never reused across differing outer contexts.
	RequiresFullContext bool
	// Predicates, when non-empty, means the accept decision still depends
	// on semantic predicates the simulator must evaluate against the
	// parser before reporting Prediction.
	Predicates []PredicatedAlt

	edgeMu      sync.RWMutex // guards Edges against concurrent predictions
	stateNumber int          // position in the owning DFA's state list, for String()
}

func newState(configs *config.Set) *State {
	return &State{Configs: configs, Edges: make(map[int]*State)}
}

// Key computes the structural hash State registries dedup on: the
// (state, alt, semantic context, call-stack context) of every
// configuration the state holds, order-independent. Two DFAStates with the same Key represent the
// same point in the subset-construction automaton even if their configs
// were discovered in a different order or their call-stack contexts
// differ only by pointer identity.
func (s *State) Key() string {
	type entry struct {
		State int
		Alt   int
		Sem   string
		Ctx   string
	}
	entries := make([]entry, 0, s.Configs.Len())
	for _, c := range s.Configs.All() {
		entries = append(entries, entry{State: c.State.Number, Alt: c.Alt, Sem: c.Semantic.String(), Ctx: c.Context.String()})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].State != entries[j].State {
			return entries[i].State < entries[j].State
		}
		if entries[i].Alt != entries[j].Alt {
			return entries[i].Alt < entries[j].Alt
		}
		if entries[i].Sem != entries[j].Sem {
			return entries[i].Sem < entries[j].Sem
		}
		return entries[i].Ctx < entries[j].Ctx
	})
	h, err := structhash.Hash(struct{ Entries []entry }{Entries: entries}, 1)
	if err != nil {
		// structhash only fails on field types it can't reflect over; our
		// entry shape is all strings and ints, so this is unreachable.
		panic(fmt.Sprintf("dfa: failed to hash state key: %v", err))
	}
	return h
}

// AddEdge records that consuming symbol from s leads to target.
func (s *State) AddEdge(symbol int, target *State) {
	s.edgeMu.Lock()
	defer s.edgeMu.Unlock()
	s.Edges[symbol] = target
}

// EdgeFor returns the state reached by consuming symbol, or nil if that
// edge hasn't been discovered yet.
func (s *State) EdgeFor(symbol int) *State {
	s.edgeMu.RLock()
	defer s.edgeMu.RUnlock()
	return s.Edges[symbol]
}

func (s *State) String() string {
	if s.IsAcceptState {
		return fmt.Sprintf("d%d=>alt%d", s.stateNumber, s.Prediction)
	}
	return fmt.Sprintf("d%d(%d configs)", s.stateNumber, s.Configs.Len())
}
