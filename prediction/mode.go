package prediction

import (
	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/config"
	"github.com/npillmayer/allstar/atn/semctx"
)

// InvalidAltNumber mirrors atn/config's constant of the same name.
const InvalidAltNumber = config.InvalidAltNumber

// AllConfigsInRuleStopStates reports whether every configuration in cs
// sits on a rule-stop state — the decision's enclosing rule has finished
// matching along every surviving path, so there is nothing left to
// disambiguate with more lookahead.
func AllConfigsInRuleStopStates(cs *config.Set) bool {
	for _, c := range cs.All() {
		if c.State.Type != atn.StateRuleStop {
			return false
		}
	}
	return true
}

// HasConfigInRuleStopState reports whether at least one configuration has
// already finished its rule.
func HasConfigInRuleStopState(cs *config.Set) bool {
	for _, c := range cs.All() {
		if c.State.Type == atn.StateRuleStop {
			return true
		}
	}
	return false
}

// GetAlts returns the union of every alt subset in altsets.
func GetAlts(altsets []*config.AltSet) *config.AltSet {
	all := config.NewAltSet()
	for _, set := range altsets {
		for _, alt := range set.Values() {
			all.Add(alt)
		}
	}
	return all
}

// GetUniqueAlt returns the single alternative present across every group
// in altsets, or InvalidAltNumber if the union contains more than one.
func GetUniqueAlt(altsets []*config.AltSet) int {
	all := GetAlts(altsets)
	if all.Size() == 1 {
		return all.Values()[0]
	}
	return InvalidAltNumber
}

// GetSingleViableAlt inspects each group's minimum alternative — the one
// that would win ties within that group — and reports it only if every
// group agrees on the same minimum; otherwise InvalidAltNumber, meaning no
// single alternative is viable across the whole decision.
func GetSingleViableAlt(altsets []*config.AltSet) int {
	viable := config.NewAltSet()
	for _, set := range altsets {
		vals := set.Values()
		if len(vals) == 0 {
			continue
		}
		viable.Add(vals[0])
		if viable.Size() > 1 {
			return InvalidAltNumber
		}
	}
	if viable.Size() != 1 {
		return InvalidAltNumber
	}
	return viable.Values()[0]
}

// HasConflictingAltSet reports whether any group names more than one
// alternative.
func HasConflictingAltSet(altsets []*config.AltSet) bool {
	for _, set := range altsets {
		if set.Size() > 1 {
			return true
		}
	}
	return false
}

// HasNonConflictingAltSet reports whether any group names exactly one
// alternative — a state/context pair that at least one alt reaches
// unambiguously.
func HasNonConflictingAltSet(altsets []*config.AltSet) bool {
	for _, set := range altsets {
		if set.Size() == 1 {
			return true
		}
	}
	return false
}

// AllSubsetsConflict reports whether every group in altsets is a genuine
// conflict (size > 1) — i.e., no group resolves unambiguously on its own.
func AllSubsetsConflict(altsets []*config.AltSet) bool {
	return !HasNonConflictingAltSet(altsets)
}

// AllSubsetsEqual reports whether every group in altsets names exactly the
// same set of alternatives, which signals a true grammar ambiguity rather
// than a transient conflict that later lookahead would resolve.
func AllSubsetsEqual(altsets []*config.AltSet) bool {
	if len(altsets) == 0 {
		return true
	}
	first := altsets[0].Values()
	for _, set := range altsets[1:] {
		vals := set.Values()
		if len(vals) != len(first) {
			return false
		}
		for i := range vals {
			if vals[i] != first[i] {
				return false
			}
		}
	}
	return true
}

// ResolvesToJustOneViableAlt is an alias for GetSingleViableAlt, kept
// distinct because callers in package atn/simulator read more naturally
// asking "does this resolve to just one viable alt?" than "get the single
// viable alt", even though the computation is identical.
func ResolvesToJustOneViableAlt(altsets []*config.AltSet) int {
	return GetSingleViableAlt(altsets)
}

// HasSLLConflictTerminatingPrediction decides whether an SLL prediction
// run can stop at cs without falling back to full-LL. It can stop if every
// configuration has already finished its rule (nothing more to predict),
// or if cs has a genuine conflict — some (state, context) pair is reached
// by more than one alternative — that isn't also resolved unambiguously
// elsewhere in the set (a state reached by only one alt elsewhere would
// mean the conflict is spurious and more lookahead could still resolve
// it). Predicated configurations are stripped of their semantic context
// first: under SLL, the predicate can't yet be safely evaluated, so
// conflict detection has to consider the alternative reachable at all,
// not whether its guard currently holds.
func HasSLLConflictTerminatingPrediction(cs *config.Set) bool {
	if AllConfigsInRuleStopStates(cs) {
		return true
	}
	working := cs
	if cs.HasSemanticContext {
		stripped := config.NewSet(cs.FullCtx)
		for _, c := range cs.All() {
			stripped.Add(config.New(c.State, c.Alt, c.Context), nil)
		}
		working = stripped
	}
	altsets := working.GetConflictingAltSubsets()
	if len(altsets) == 0 {
		return false
	}
	return HasConflictingAltSet(altsets) && !HasNonConflictingAltSet(altsets)
}

// EvaluatesToNone reports whether every operand of predicate has been
// folded away to semctx.None by EvalPrecedence — i.e., there is nothing
// left to re-check.
func EvaluatesToNone(predicate *semctx.Context) bool {
	return predicate == semctx.None
}
