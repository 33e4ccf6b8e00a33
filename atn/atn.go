package atn

import "sync"

// Grammar type tags, matching the serialized ATN format's grammarType field.
const (
	GrammarLexer = iota
	GrammarParser
)

// ATN is an immutable, directed, possibly cyclic graph of States connected
// by Transitions, plus the rule tables a parser/lexer needs to navigate it.
// It is built once (by hand, or via Deserialize) and then shared read-only
// by every parser/simulator instance that uses it; the only mutable state
// associated with an ATN lives in the DFAs of package atn/dfa, which own
// their own locking.
//
// The three mutexes mirror the real ANTLR Go runtime's ATN type: state
// registration and decision registration are rare (construction-time)
// writes that can race with concurrent lookups once an ATN is shared, so
// each concern gets its own lock rather than a single coarse one.
type ATN struct {
	GrammarType  int
	MaxTokenType int

	DecisionToState []*State

	RuleToStartState []*State
	RuleToStopState  []*State
	RuleToTokenType  []int // lexer ATNs only

	ModeToStartState     []*State
	ModeNameToStartState map[string]*State

	states []*State

	mu      sync.Mutex
	stateMu sync.RWMutex
	edgeMu  sync.RWMutex
}

// New creates an empty ATN of the given grammar type, ready for states to
// be added via AddState.
func New(grammarType, maxTokenType int) *ATN {
	return &ATN{
		GrammarType:          grammarType,
		MaxTokenType:         maxTokenType,
		ModeNameToStartState: make(map[string]*State),
	}
}

// AddState appends state to the ATN, assigning it the next state number.
func (a *ATN) AddState(state *State) {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	state.Number = len(a.states)
	a.states = append(a.states, state)
}

// State returns the state with the given number, or nil if out of range.
func (a *ATN) State(number int) *State {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	if number < 0 || number >= len(a.states) {
		return nil
	}
	return a.states[number]
}

// NumStates returns the number of states registered so far.
func (a *ATN) NumStates() int {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return len(a.states)
}

// DefineDecisionState registers s as a decision state, handing it the next
// decision number (used as the DFA index for that decision).
func (a *ATN) DefineDecisionState(s *State) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.DecisionToState = append(a.DecisionToState, s)
	s.Decision = len(a.DecisionToState) - 1
	return s.Decision
}

// DecisionState returns the decision state for the given decision number.
func (a *ATN) DecisionState(decision int) *State {
	a.mu.Lock()
	defer a.mu.Unlock()
	if decision < 0 || decision >= len(a.DecisionToState) {
		return nil
	}
	return a.DecisionToState[decision]
}

// NumberOfDecisions returns how many decision states have been registered.
func (a *ATN) NumberOfDecisions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.DecisionToState)
}

// NextTokensNoContext computes the set of symbols reachable from s while
// staying within s's own rule; Epsilon is included if the end of the rule
// is reachable without consuming a token. Results are memoized on s.
func (a *ATN) NextTokensNoContext(s *State) *IntervalSet {
	if iset := s.GetNextTokenWithinRule(); iset != nil {
		return iset
	}
	iset := a.nextTokens(s, nil, map[int]bool{})
	iset.Freeze()
	s.SetNextTokenWithinRule(iset)
	return iset
}

// NextTokensInContext computes the set of symbols that can follow state s,
// honoring the enclosing rule-invocation chain recorded in ctx. A nil ctx
// restricts the computation to s's own rule (equivalent to
// NextTokensNoContext, but not memoized).
func (a *ATN) NextTokensInContext(s *State, ctx RuleInvocationChain) *IntervalSet {
	return a.nextTokens(s, ctx, map[int]bool{})
}

// NextTokens dispatches to NextTokensInContext or NextTokensNoContext
// depending on whether ctx is nil, mirroring the real ANTLR runtime's
// ATN.NextTokens.
func (a *ATN) NextTokens(s *State, ctx RuleInvocationChain) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}
	return a.NextTokensInContext(s, ctx)
}

// RuleInvocationChain is the minimal view of an enclosing call chain that
// NextTokensInContext needs: the invoking state of each caller, outward to
// the outermost context. Package interp's rule contexts satisfy this.
type RuleInvocationChain interface {
	InvokingState() int
	Outer() RuleInvocationChain
}

func (a *ATN) nextTokens(s *State, ctx RuleInvocationChain, visited map[int]bool) *IntervalSet {
	following := NewIntervalSet()
	a.lookAhead(s, ctx, visited, following)
	return following
}

// lookAhead performs a non-recursive-on-cycles epsilon walk from s,
// collecting matchable symbols into out. When it falls off the end of a
// rule it either climbs ctx (if given) or adds Epsilon to mark "end of
// rule reachable without a token".
func (a *ATN) lookAhead(s *State, ctx RuleInvocationChain, visited map[int]bool, out *IntervalSet) {
	type frame struct {
		state *State
		ctx   RuleInvocationChain
	}
	stack := []frame{{s, ctx}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		key := f.state.Number
		if visited[key] {
			continue
		}
		visited[key] = true

		if f.state.Type == StateRuleStop {
			if f.ctx == nil {
				out.AddOne(Epsilon)
				continue
			}
			invoking := a.State(f.ctx.InvokingState())
			if invoking == nil || len(invoking.Transitions) == 0 {
				out.AddOne(Epsilon)
				continue
			}
			rt := invoking.Transitions[0]
			stack = append(stack, frame{a.State(rt.FollowState), f.ctx.Outer()})
			continue
		}
		for _, t := range f.state.Transitions {
			switch t.Kind {
			case TransAtom:
				out.AddOne(t.Label)
			case TransRange:
				out.AddRange(t.Lo, t.Hi)
			case TransSet:
				out.AddSet(t.Set)
			case TransWildcard:
				out.AddRange(MinUserTokenTypeValue, a.MaxTokenType)
			case TransNotSet:
				// Conservative: a NotSet can match any token type not
				// explicitly excluded; the exact complement depends on
				// MaxTokenType, which the caller is better placed to expand.
				out.AddRange(MinUserTokenTypeValue, a.MaxTokenType)
			default:
				if t.IsEpsilon() {
					if target := a.State(t.Target); target != nil {
						stack = append(stack, frame{target, f.ctx})
					}
				}
			}
		}
	}
}

// MinUserTokenTypeValue mirrors allstar.MinUserTokenType without importing
// the root package (which does not depend on atn), avoiding an import cycle
// should the root package ever need atn types.
const MinUserTokenTypeValue = 1

// ExpectedTokens computes the set of input symbols that could follow the
// ATN state numbered stateNumber in the given context, adding EOF if a
// path to the end of the outermost context consumes no more symbols. It
// panics if stateNumber is out of range: an invalid state number here is a
// programmer error (corrupted ATN or stale state reference), not a
// recoverable parse-time condition.
func (a *ATN) ExpectedTokens(stateNumber int, ctx RuleInvocationChain) *IntervalSet {
	s := a.State(stateNumber)
	if s == nil {
		panic("atn: invalid state number")
	}
	following := a.NextTokens(s, nil)
	if !following.Contains(Epsilon) {
		return following
	}
	expected := NewIntervalSet()
	expected.AddSet(following)
	expected.RemoveOne(Epsilon)
	for ctx != nil && ctx.InvokingState() >= 0 && following.Contains(Epsilon) {
		invoking := a.State(ctx.InvokingState())
		rt := invoking.Transitions[0]
		following = a.NextTokens(a.State(rt.FollowState), nil)
		expected.AddSet(following)
		expected.RemoveOne(Epsilon)
		ctx = ctx.Outer()
	}
	if following.Contains(Epsilon) {
		expected.AddOne(EOFValue)
	}
	return expected
}

// EOFValue mirrors allstar.EOF; see MinUserTokenTypeValue for why it is
// duplicated here instead of imported.
const EOFValue = -1
