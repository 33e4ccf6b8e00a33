package config

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/pcontext"
	"github.com/npillmayer/allstar/atn/semctx"
)

// Set is an ATNConfigSet: an insertion-ordered, deduplicating collection
// of Config values, closed under merge-on-collision the way spec §3 and
// §4.2 describe. The ordering matters — it is what makes two simulator
// runs over the same input deterministic — so Set keeps both a slice (for
// iteration order) and a map (for O(1) key lookup), the same two-level
// bookkeeping lr/sppf/forest.go uses to give SPPF nodes identity while
// still being able to walk them in insertion order.
type Set struct {
	configs []*Config
	lookup  map[Key]int

	// FullCtx marks a set built during the full-LL fallback. It governs
	// whether Add's context merges treat the call-stack bottom as a
	// wildcard (SLL) or as a real, distinguishable frame (full LL) — see
	// pcontext.Merge's rootIsWildcard parameter.
	FullCtx bool

	HasSemanticContext   bool
	DipsIntoOuterContext bool

	readonly bool
}

// NewSet returns an empty configuration set for either the SLL (fullCtx
// false) or full-LL (fullCtx true) simulation mode.
func NewSet(fullCtx bool) *Set {
	return &Set{lookup: make(map[Key]int), FullCtx: fullCtx}
}

// Freeze marks s read-only; further Add calls panic. Frozen sets are the
// ones handed to PredictionMode's analysis functions, which must never
// observe a set mutating underneath them mid-decision.
func (s *Set) Freeze() {
	s.readonly = true
	tracer().Debugf("config set frozen with %d configs", len(s.configs))
}

// Len reports the number of distinct configurations.
func (s *Set) Len() int { return len(s.configs) }

// Get returns the i'th configuration in insertion order.
func (s *Set) Get(i int) *Config { return s.configs[i] }

// All returns the configurations in insertion order. The slice is shared
// with s; callers must not mutate it.
func (s *Set) All() []*Config { return s.configs }

// Add inserts c, merging its context into any existing configuration that
// shares c's Key. It reports whether a new, previously unseen
// configuration was added. cache, which may be nil, is threaded through to
// pcontext.Merge to amortize repeated merges within one closure pass.
func (s *Set) Add(c *Config, cache *pcontext.MergeCache) bool {
	if s.readonly {
		panic("config: Add called on a frozen ATNConfigSet")
	}
	key := c.Key()
	if idx, ok := s.lookup[key]; ok {
		existing := s.configs[idx]
		existing.Context = pcontext.Merge(existing.Context, c.Context, !s.FullCtx, cache)
		if c.ReachesIntoOuterContext > existing.ReachesIntoOuterContext {
			existing.ReachesIntoOuterContext = c.ReachesIntoOuterContext
		}
		existing.PrecedenceFilterSuppressed = existing.PrecedenceFilterSuppressed || c.PrecedenceFilterSuppressed
		return false
	}
	s.lookup[key] = len(s.configs)
	s.configs = append(s.configs, c)
	if c.Semantic != semctx.None {
		s.HasSemanticContext = true
	}
	if c.ReachesIntoOuterContext > 0 {
		s.DipsIntoOuterContext = true
	}
	return true
}

// AddAll adds every configuration of other to s.
func (s *Set) AddAll(other *Set, cache *pcontext.MergeCache) {
	for _, c := range other.configs {
		s.Add(c, cache)
	}
}

// Alts returns the distinct alternative numbers present, in ascending
// order.
func (s *Set) Alts() []int {
	seen := map[int]bool{}
	var alts []int
	for _, c := range s.configs {
		if !seen[c.Alt] {
			seen[c.Alt] = true
			alts = append(alts, c.Alt)
		}
	}
	sort.Ints(alts)
	return alts
}

// removeAllConfigsNotInRuleStopState keeps only configurations sitting on
// a rule-stop state (the rule has matched to completion along that
// configuration's path), per spec §4.2. When a configuration is not
// itself on a stop state but can reach one without consuming a symbol
// (State.IsEpsilonOnlyToRuleStop), lookToEndOfRule controls whether it is
// kept as well.
func (s *Set) removeAllConfigsNotInRuleStopState(a *atn.ATN, lookToEndOfRule bool) *Set {
	out := NewSet(s.FullCtx)
	for _, c := range s.configs {
		if c.State.Type == atn.StateRuleStop {
			out.Add(c, nil)
			continue
		}
		if lookToEndOfRule && c.State.IsEpsilonOnlyToRuleStop(a) {
			out.Add(c, nil)
		}
	}
	return out
}

// RemoveAllConfigsNotInRuleStopState is the exported form of
// removeAllConfigsNotInRuleStopState.
func (s *Set) RemoveAllConfigsNotInRuleStopState(a *atn.ATN, lookToEndOfRule bool) *Set {
	return s.removeAllConfigsNotInRuleStopState(a, lookToEndOfRule)
}

// ApplyPrecedenceFilter implements the precedence-predicate pass of
// spec §4.2 for left-recursive rules: alternative 1 wins at every
// (state, context) pair it reaches, and configurations of other
// alternatives at such a pair are dropped, unless a configuration is
// flagged PrecedenceFilterSuppressed. evalPrecedence is called on each
// alternative-1 configuration to fold away satisfied precedence
// predicates (see semctx.EvalPrecedence); a nil result discards that
// configuration outright, and its (state, context) pair then blocks
// nothing. Configurations of other alternatives keep their semantic
// context unevaluated.
func (s *Set) ApplyPrecedenceFilter(evalPrecedence func(*Config) *semctx.Context) *Set {
	type stateCtxKey struct {
		state int
		ctx   string
	}
	statesFromAlt1 := map[stateCtxKey]*pcontext.Context{}
	out := NewSet(s.FullCtx)
	for _, c := range s.configs {
		if c.Alt != 1 {
			continue
		}
		simplified := evalPrecedence(c)
		if simplified == nil {
			continue
		}
		key := stateCtxKey{c.State.Number, c.Context.String()}
		statesFromAlt1[key] = c.Context
		cc := *c
		cc.Semantic = simplified
		out.Add(&cc, nil)
	}
	for _, c := range s.configs {
		if c.Alt == 1 {
			continue
		}
		if c.PrecedenceFilterSuppressed {
			out.Add(c, nil)
			continue
		}
		key := stateCtxKey{c.State.Number, c.Context.String()}
		if _, blocked := statesFromAlt1[key]; blocked {
			continue
		}
		out.Add(c, nil)
	}
	return out
}

// SplitAccordingToSemanticValidity partitions s into configurations whose
// semantic context currently evaluates true (succeeded) and those that
// don't (failed), per spec §4.2. Configurations with a None semantic
// context always succeed without invoking eval.
func (s *Set) SplitAccordingToSemanticValidity(eval func(*Config) bool) (succeeded, failed *Set) {
	succeeded, failed = NewSet(s.FullCtx), NewSet(s.FullCtx)
	for _, c := range s.configs {
		if c.Semantic == semctx.None || eval(c) {
			succeeded.Add(c, nil)
		} else {
			failed.Add(c, nil)
		}
	}
	return
}

// AltSet is a small ordered set of alternative numbers, used to report one
// conflicting or ambiguous group. It is backed by gods' treeset with an
// integer comparator, the same ordering primitive the teacher's
// lr/tables.go stateComparator gives its CFSM state registry, so that two
// equal alt-sets always iterate in the same order regardless of discovery
// order.
type AltSet struct {
	set *treeset.Set
}

func newAltSet() *AltSet {
	return &AltSet{set: treeset.NewWith(utils.IntComparator)}
}

// NewAltSet returns an empty AltSet. Exported so package prediction can
// build its own union/singleton alt sets when combining the groups
// GetConflictingAltSubsets reports.
func NewAltSet() *AltSet { return newAltSet() }

// Add inserts alt into the set.
func (a *AltSet) Add(alt int) { a.set.Add(alt) }

// Contains reports whether alt is a member.
func (a *AltSet) Contains(alt int) bool { return a.set.Contains(alt) }

// Size reports the number of distinct alternatives.
func (a *AltSet) Size() int { return a.set.Size() }

// Values returns the alternatives in ascending order.
func (a *AltSet) Values() []int {
	vals := a.set.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}

func (a *AltSet) String() string { return fmt.Sprintf("%v", a.Values()) }

// GetConflictingAltSubsets groups configurations by (state, context) and
// returns one AltSet per group — the raw material for conflict detection,
// per spec §4.2. Groups reached by only one alternative are included too:
// callers like prediction.HasNonConflictingAltSet need them to tell a
// genuine conflict from one already resolved unambiguously elsewhere in
// the set (spec §4.4). Callers that only care whether any conflict exists
// at all should filter with prediction.HasConflictingAltSet rather than
// testing len(subsets) > 0.
func (s *Set) GetConflictingAltSubsets() []*AltSet {
	type groupKey struct {
		state int
		ctx   string
	}
	groups := map[groupKey]*AltSet{}
	var order []groupKey
	for _, c := range s.configs {
		key := groupKey{c.State.Number, c.Context.String()}
		g, ok := groups[key]
		if !ok {
			g = newAltSet()
			groups[key] = g
			order = append(order, key)
		}
		g.Add(c.Alt)
	}
	out := make([]*AltSet, len(order))
	for i, key := range order {
		out[i] = groups[key]
	}
	return out
}

// GetAltThatFinishedDecisionEntryRule returns the lowest-numbered
// alternative among configurations that either sit on a rule-stop state
// with an empty remaining call-stack context (pcontext.Empty or a path
// reaching it) or have dipped into the outer context
// (ReachesIntoOuterContext > 0), or InvalidAltNumber if none does. Per
// spec §4.2 this singles out the alternative that can legally end the
// decision's enclosing rule right here, which the simulator uses at end
// of input and when no alternative survives the next symbol.
func (s *Set) GetAltThatFinishedDecisionEntryRule() int {
	best := InvalidAltNumber
	for _, c := range s.configs {
		finished := c.State.Type == atn.StateRuleStop && (c.Context == pcontext.Empty || c.Context.HasEmptyPath())
		if !finished && c.ReachesIntoOuterContext == 0 {
			continue
		}
		if best == InvalidAltNumber || c.Alt < best {
			best = c.Alt
		}
	}
	return best
}

func (s *Set) String() string {
	return fmt.Sprintf("%v", s.configs)
}
