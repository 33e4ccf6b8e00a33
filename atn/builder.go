package atn

// Builder assembles an ATN by hand, in the spirit of the teacher's
// lr.GrammarBuilder: a thin, stateful helper that lets callers (tests, the
// demo CLI, or — eventually — a real grammar compiler) construct a valid
// ATN without having to wire state numbers and rule tables themselves.
//
// Builder is not part of the spec's data model; it exists purely as
// ergonomic sugar over ATN.AddState/DefineDecisionState for constructing
// the small, hand-built ATNs this module's tests and demo rely on (a real
// grammar compiler would instead populate an ATN via Deserialize).
type Builder struct {
	atn *ATN
}

// NewBuilder starts building a parser ATN with numRules rules and the given
// maximum token type.
func NewBuilder(numRules, maxTokenType int) *Builder {
	a := New(GrammarParser, maxTokenType)
	a.RuleToStartState = make([]*State, numRules)
	a.RuleToStopState = make([]*State, numRules)
	return &Builder{atn: a}
}

// ATN returns the ATN under construction.
func (b *Builder) ATN() *ATN { return b.atn }

// Basic creates and registers a plain BasicState for the given rule.
func (b *Builder) Basic(rule int) *State {
	s := NewState(StateBasic, rule)
	b.atn.AddState(s)
	return s
}

// Rule creates a RuleStart/RuleStop pair for rule, links them, registers
// both in the rule tables, and returns the start and stop states. isPrecedence marks
// a left-recursive rule.
func (b *Builder) Rule(rule int, isPrecedence bool) (*State, *State) {
	start := NewState(StateRuleStart, rule)
	stop := NewState(StateRuleStop, rule)
	start.IsPrecedenceRule = isPrecedence
	b.atn.AddState(start)
	b.atn.AddState(stop)
	start.EndState = stop.Number
	b.atn.RuleToStartState[rule] = start
	b.atn.RuleToStopState[rule] = stop
	return start, stop
}

// Decision turns s into a decision state with the given ordered alternative
// entry states (1-based alt i enters altStates[i-1]) and registers it.
func (b *Builder) Decision(s *State, altStates ...int) int {
	s.AltStates = append([]int(nil), altStates...)
	return b.atn.DefineDecisionState(s)
}

// StarLoop creates the three skeleton states of a `(... )*` construct
// (StarLoopEntry, StarLoopback, LoopEnd) and wires their EndState/LoopBack
// links. Callers are responsible for wiring every transition, the body's
// included; this only establishes the loop skeleton's identity
// links, matching how a grammar compiler would annotate a serialized ATN.
func (b *Builder) StarLoop(rule int) (entry, loopback, end *State) {
	entry = NewState(StateStarLoopEntry, rule)
	loopback = NewState(StateStarLoopback, rule)
	end = NewState(StateLoopEnd, rule)
	b.atn.AddState(entry)
	b.atn.AddState(loopback)
	b.atn.AddState(end)
	entry.LoopBack = loopback.Number
	loopback.LoopBack = entry.Number
	entry.EndState = end.Number
	return
}
