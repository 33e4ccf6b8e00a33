package atn

import "fmt"

// StateType tags the distinguished ATN state variants named in the spec.
// We dispatch on this tag rather than through a state-type hierarchy; a
// State's active fields are fully determined by it.
type StateType int

// State type tags. TokensStart is used only by lexer ATNs.
const (
	StateInvalid StateType = iota
	StateBasic
	StateRuleStart
	StateRuleStop
	StateBlockStart
	StatePlusBlockStart
	StateStarBlockStart
	StateBlockEnd
	StateTokensStart
	StateStarLoopback
	StateStarLoopEntry
	StatePlusLoopback
	StateLoopEnd
)

func (t StateType) String() string {
	switch t {
	case StateBasic:
		return "basic"
	case StateRuleStart:
		return "rule-start"
	case StateRuleStop:
		return "rule-stop"
	case StateBlockStart:
		return "block-start"
	case StatePlusBlockStart:
		return "plus-block-start"
	case StateStarBlockStart:
		return "star-block-start"
	case StateBlockEnd:
		return "block-end"
	case StateTokensStart:
		return "tokens-start"
	case StateStarLoopback:
		return "star-loopback"
	case StateStarLoopEntry:
		return "star-loop-entry"
	case StatePlusLoopback:
		return "plus-loopback"
	case StateLoopEnd:
		return "loop-end"
	default:
		return "invalid"
	}
}

// InvalidStateNumber marks "no such state" in fields like EndState or LoopBack.
const InvalidStateNumber = -1

// InvalidDecision marks a State as not being a decision state.
const InvalidDecision = -1

// State is a single node of an ATN, identified by its Number. All state
// variants named in the spec are represented by this one struct; which
// fields are meaningful is determined by Type. Equality for ATNConfig
// purposes (package atn/config) is by Number, not identity, so that
// configurations survive serialization round-trips.
type State struct {
	Number      int
	Rule        int
	Type        StateType
	Transitions []*Transition

	// Decision is >= 0 iff this state is a decision state (more than one
	// outgoing transition); AltStates[i] is the entry state for alt i+1.
	Decision  int
	AltStates []int

	// IsPrecedenceRule is set on a RuleStart state belonging to a
	// left-recursive rule.
	IsPrecedenceRule bool

	// EndState links a RuleStart to its RuleStop, or a BlockStart to its
	// matching BlockEnd; InvalidStateNumber if not applicable.
	EndState int

	// PrecedenceRuleDecision marks a StarLoopEntry that also serves as the
	// decision point distinguishing further left-recursive expansion from
	// exiting the precedence rule.
	PrecedenceRuleDecision bool

	// LoopBack links a loop entry/end state to its corresponding loopback
	// state (StarLoopEntry <-> StarLoopback, LoopEnd <-> PlusLoopback),
	// InvalidStateNumber if not applicable.
	LoopBack int

	nextTokenWithinRule *IntervalSet // memoized NextTokensNoContext result
}

// NewState allocates a bare state of the given type; callers set Number via
// ATN.AddState.
func NewState(typ StateType, rule int) *State {
	return &State{
		Type:      typ,
		Rule:      rule,
		Decision:  InvalidDecision,
		EndState:  InvalidStateNumber,
		LoopBack:  InvalidStateNumber,
	}
}

// IsDecisionState reports whether s has been registered as a decision
// state (ATN.DefineDecisionState gave it a decision number) and therefore
// requires a prediction to choose among its alternatives.
func (s *State) IsDecisionState() bool { return s.Decision != InvalidDecision }

// AddTransition appends an outgoing transition. Order matters: alt numbers
// handed out to decision states are 1-based positions into this slice (or,
// for genuine DecisionStates, into AltStates).
func (s *State) AddTransition(t *Transition) {
	s.Transitions = append(s.Transitions, t)
}

// GetNextTokenWithinRule returns the memoized result of a previous
// NextTokensNoContext call for this state, if any.
func (s *State) GetNextTokenWithinRule() *IntervalSet { return s.nextTokenWithinRule }

// SetNextTokenWithinRule memoizes the result of NextTokensNoContext for
// this state.
func (s *State) SetNextTokenWithinRule(iset *IntervalSet) { s.nextTokenWithinRule = iset }

// IsEpsilonOnlyToRuleStop reports whether some path out of s that never
// consumes a symbol reaches a rule-stop state — i.e., s can finish its
// rule without needing another token. Rule-call edges are followed like
// any other epsilon edge, so reaching the stop state of a called rule also
// counts. Used
// by ATNConfigSet.RemoveAllConfigsNotInRuleStopState to keep
// configurations that are one optional trailing construct away from
// having already matched.
func (s *State) IsEpsilonOnlyToRuleStop(a *ATN) bool {
	visited := map[int]bool{}
	var walk func(cur *State) bool
	walk = func(cur *State) bool {
		if cur.Type == StateRuleStop {
			return true
		}
		if visited[cur.Number] {
			return false
		}
		visited[cur.Number] = true
		for _, t := range cur.Transitions {
			if !t.IsEpsilon() {
				continue
			}
			if target := a.State(t.Target); target != nil && walk(target) {
				return true
			}
		}
		return false
	}
	return walk(s)
}

func (s *State) String() string {
	return fmt.Sprintf("s%d(%s,rule=%d)", s.Number, s.Type, s.Rule)
}
