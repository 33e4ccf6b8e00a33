package atn

import "fmt"

// TransitionKind tags the transition variants named in the spec. As with
// State, we dispatch on the tag instead of modeling a class hierarchy.
type TransitionKind int

const (
	TransEpsilon TransitionKind = iota
	TransAtom
	TransRange
	TransSet
	TransNotSet
	TransWildcard
	TransRule
	TransPredicate
	TransPrecedencePredicate
	TransAction
)

func (k TransitionKind) String() string {
	switch k {
	case TransEpsilon:
		return "epsilon"
	case TransAtom:
		return "atom"
	case TransRange:
		return "range"
	case TransSet:
		return "set"
	case TransNotSet:
		return "not-set"
	case TransWildcard:
		return "wildcard"
	case TransRule:
		return "rule"
	case TransPredicate:
		return "predicate"
	case TransPrecedencePredicate:
		return "precedence-predicate"
	case TransAction:
		return "action"
	default:
		return "?"
	}
}

// Transition is a single outgoing edge of a State. Which fields apply is
// determined by Kind; Target is always meaningful (the destination state
// number, resolved against an ATN's state table).
type Transition struct {
	Kind   TransitionKind
	Target int

	// Atom
	Label int
	// Range
	Lo, Hi int
	// Set / NotSet
	Set *IntervalSet

	// Rule
	RuleIndex   int
	Precedence  int
	FollowState int

	// Predicate / PrecedencePredicate / Action
	PredRuleIndex  int
	PredIndex      int
	IsCtxDependent bool
	ActionIndex    int
}

// IsEpsilon reports whether the transition consumes no input symbol.
func (t *Transition) IsEpsilon() bool {
	switch t.Kind {
	case TransEpsilon, TransRule, TransPredicate, TransPrecedencePredicate, TransAction:
		return true
	default:
		return false
	}
}

// IsSerializable reports whether the transition kind is one the serialized
// ATN format can represent directly. Every kind, NotSet included, has its
// own kind code in the stream Deserialize reads, so it always reports true.
func (t *Transition) IsSerializable() bool {
	return true
}

// Matches reports whether symbol satisfies this transition's label, for the
// non-epsilon transition kinds. It panics for epsilon-ish kinds, which are
// never consulted during reach (spec §4.4): reach only calls Matches on
// transitions already known to be non-epsilon.
func (t *Transition) Matches(symbol int) bool {
	switch t.Kind {
	case TransAtom:
		return symbol == t.Label
	case TransRange:
		return symbol >= t.Lo && symbol <= t.Hi
	case TransSet:
		return t.Set.Contains(symbol)
	case TransNotSet:
		return symbol != -1 && !t.Set.Contains(symbol)
	case TransWildcard:
		return symbol != -1
	default:
		panic(fmt.Sprintf("atn: Matches called on epsilon-like transition kind %s", t.Kind))
	}
}

// NewEpsilonTransition creates a plain epsilon edge to target.
func NewEpsilonTransition(target int) *Transition {
	return &Transition{Kind: TransEpsilon, Target: target}
}

// NewAtomTransition creates an edge matching exactly ttype.
func NewAtomTransition(target, ttype int) *Transition {
	return &Transition{Kind: TransAtom, Target: target, Label: ttype}
}

// NewRangeTransition creates an edge matching [lo,hi].
func NewRangeTransition(target, lo, hi int) *Transition {
	return &Transition{Kind: TransRange, Target: target, Lo: lo, Hi: hi}
}

// NewSetTransition creates an edge matching any symbol in set.
func NewSetTransition(target int, set *IntervalSet) *Transition {
	return &Transition{Kind: TransSet, Target: target, Set: set}
}

// NewNotSetTransition creates an edge matching any symbol not in set (and
// not EOF).
func NewNotSetTransition(target int, set *IntervalSet) *Transition {
	return &Transition{Kind: TransNotSet, Target: target, Set: set}
}

// NewWildcardTransition creates an edge matching any symbol but EOF.
func NewWildcardTransition(target int) *Transition {
	return &Transition{Kind: TransWildcard, Target: target}
}

// NewRuleTransition creates a rule-call edge: target is the rule's start
// state, followState is resumed once the called rule reduces to its stop
// state.
func NewRuleTransition(target, ruleIndex, precedence, followState int) *Transition {
	return &Transition{
		Kind:        TransRule,
		Target:      target,
		RuleIndex:   ruleIndex,
		Precedence:  precedence,
		FollowState: followState,
	}
}

// NewPredicateTransition creates a semantic-predicate edge.
func NewPredicateTransition(target, ruleIndex, predIndex int, ctxDependent bool) *Transition {
	return &Transition{
		Kind:           TransPredicate,
		Target:         target,
		PredRuleIndex:  ruleIndex,
		PredIndex:      predIndex,
		IsCtxDependent: ctxDependent,
	}
}

// NewPrecedencePredicateTransition creates a precedence-predicate edge.
func NewPrecedencePredicateTransition(target, precedence int) *Transition {
	return &Transition{Kind: TransPrecedencePredicate, Target: target, Precedence: precedence}
}

// NewActionTransition creates an action edge.
func NewActionTransition(target, ruleIndex, actionIndex int, ctxDependent bool) *Transition {
	return &Transition{
		Kind:           TransAction,
		Target:         target,
		PredRuleIndex:  ruleIndex,
		ActionIndex:    actionIndex,
		IsCtxDependent: ctxDependent,
	}
}

func (t *Transition) String() string {
	return fmt.Sprintf("-%s->s%d", t.Kind, t.Target)
}
