package simulator

import (
	"github.com/npillmayer/allstar"
	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/config"
	"github.com/npillmayer/allstar/atn/dfa"
	"github.com/npillmayer/allstar/atn/pcontext"
	"github.com/npillmayer/allstar/atn/semctx"
	"github.com/npillmayer/allstar/prediction"
	"github.com/npillmayer/allstar/token"
)

// InvalidAltNumber mirrors atn/config's constant of the same name.
const InvalidAltNumber = config.InvalidAltNumber

// Simulator runs AdaptivePredict over a shared, read-only ATN, with one
// lazily-built DFA per decision (package atn/dfa). A single Simulator is
// safe to call concurrently from multiple parses: the ATN never mutates
// after construction and each decision's DFA guards its own state with
// its own mutex, per spec §5.
type Simulator struct {
	ATN       *atn.ATN
	DFAs      *dfa.Table
	Overrides *Overrides
}

// New returns a Simulator over a.
func New(a *atn.ATN) *Simulator {
	return &Simulator{ATN: a, DFAs: dfa.NewTable(), Overrides: NewOverrides()}
}

// AdaptivePredict chooses the viable alternative at decision, reading
// from input and seeding the decision's configurations with callStack
// (typically pcontext.Empty for a decision at the outermost rule, or a
// context built from the parser's current call frames otherwise). outer
// is the real (non-ATN) rule invocation chain surrounding this decision,
// used by closure to climb past an exhausted local context (see
// closure.go); it may be nil at the top level. rec evaluates semantic and
// precedence predicates; outerCtx is passed through to it opaquely.
//
// On return, input.Index() is restored to where it was on entry — callers
// re-walk the chosen alternative themselves once they know which one won,
// exactly as spec §4.4 describes adaptivePredict's "speculative, then
// rewind" discipline.
func (sim *Simulator) AdaptivePredict(decision int, input token.Stream, callStack *pcontext.Context, outer atn.RuleInvocationChain, rec semctx.Recognizer, outerCtx interface{}) (int, error) {
	decisionState := sim.ATN.DecisionState(decision)
	if decisionState == nil {
		panic("simulator: invalid decision number")
	}
	startIndex := input.Index()
	if alt, ok := sim.Overrides.Lookup(decision, startIndex); ok {
		return alt, nil
	}
	d := sim.DFAs.ForDecision(decision)
	marker := input.Mark()
	defer func() {
		input.Seek(startIndex)
		input.Release(marker)
	}()

	cache := pcontext.NewMergeCache()
	seed := seedConfigs(sim.ATN, decisionState, callStack, false)
	closed := Closure(sim.ATN, seed, cache, outer)
	s0 := sim.registerStart(d, false, closed)

	alt, err := sim.run(d, s0, input, cache, outer, rec, outerCtx, false)
	if err == errAmbiguousUnderSLL {
		tracer().Infof("decision %d: SLL conflict, retrying under full LL", decision)
		input.Seek(startIndex)
		fullSeed := seedConfigs(sim.ATN, decisionState, callStack, true)
		closedFull := Closure(sim.ATN, fullSeed, cache, outer)
		closedFull = applyPrecedenceFilterIfNeeded(decisionState, closedFull, rec, outerCtx)
		s0Full := sim.registerStart(d, true, closedFull)
		return sim.run(d, s0Full, input, cache, outer, rec, outerCtx, true)
	}
	return alt, err
}

// applyPrecedenceFilterIfNeeded runs ATNConfigSet.ApplyPrecedenceFilter
// over configs when decisionState is the loop-entry decision of a
// left-recursive rule (spec §4.2/§4.4's "precedence filter at
// precedence decisions"): among configurations that reach the same
// (state, context) pair, only the highest-precedence alternative survives
// unless it was explicitly marked PrecedenceFilterSuppressed. This only
// applies to full-LL simulation — SLL prediction never needs it because
// pushNewRecursionContext already bakes precedence into the tree shape
// one token at a time.
func applyPrecedenceFilterIfNeeded(decisionState *atn.State, configs *config.Set, rec semctx.Recognizer, outerCtx interface{}) *config.Set {
	if !decisionState.PrecedenceRuleDecision || rec == nil {
		return configs
	}
	return configs.ApplyPrecedenceFilter(func(c *config.Config) *semctx.Context {
		return semctx.EvalPrecedence(c.Semantic, rec, outerCtx)
	})
}

func seedConfigs(a *atn.ATN, decisionState *atn.State, callStack *pcontext.Context, fullCtx bool) *config.Set {
	set := config.NewSet(fullCtx)
	if callStack == nil {
		callStack = pcontext.Empty
	}
	for i, target := range decisionState.AltStates {
		if s := a.State(target); s != nil {
			set.Add(config.New(s, i+1, callStack), nil)
		}
	}
	return set
}

// registerStart interns closed as the canonical DFAState for a decision's
// starting configuration set and records it on d.S0/d.S0Full the first
// time one is registered. AdaptivePredict does not read S0/S0Full back: it
// recomputes the start closure on every call, and GetOrAdd maps that
// closure to the existing canonical state, whose cached edges run then
// walks.
func (sim *Simulator) registerStart(d *dfa.DFA, fullCtx bool, closed *config.Set) *dfa.State {
	state, _ := d.GetOrAdd(closed)
	if fullCtx {
		if d.S0Full == nil {
			d.S0Full = state
		}
	} else {
		if d.S0 == nil {
			d.S0 = state
		}
	}
	return state
}

type ambiguousErr struct{}

func (ambiguousErr) Error() string { return "simulator: SLL prediction found a genuine ambiguity" }

var errAmbiguousUnderSLL = ambiguousErr{}

// run walks forward from start one input symbol at a time, exactly as
// spec §4.4 describes: it first tries the decision's cached DFA edges
// (the warm path) and only falls back to a fresh closure/reach step
// (closure.go, reach.go) when no edge has been discovered yet for the
// current symbol. Every DFAState it visits or creates is frozen and
// shared through d, so a second AdaptivePredict call over the same input
// prefix — on this decision, possibly from a different goroutine per
// spec §5 — walks the same edges instead of resimulating.
func (sim *Simulator) run(d *dfa.DFA, start *dfa.State, input token.Stream, cache *pcontext.MergeCache, outer atn.RuleInvocationChain, rec semctx.Recognizer, outerCtx interface{}, fullCtx bool) (int, error) {
	prev := start
	for {
		if prev.IsAcceptState {
			if len(prev.Predicates) == 0 || rec == nil {
				return prev.Prediction, nil
			}
			if alt, ok := resolvePredicatedAccept(prev, rec, outerCtx); ok {
				return alt, nil
			}
			return InvalidAltNumber, token.NewNoViableAltError(input.Get(input.Index()), 0, outerCtx, prev.Configs)
		}
		if !fullCtx && prev.RequiresFullContext {
			return InvalidAltNumber, errAmbiguousUnderSLL
		}

		configs := prev.Configs
		if configs.Len() == 0 {
			return InvalidAltNumber, token.NewNoViableAltError(input.Get(input.Index()), 0, outerCtx, configs)
		}
		working := configs
		if configs.HasSemanticContext && rec != nil {
			succeeded, _ := configs.SplitAccordingToSemanticValidity(func(c *config.Config) bool {
				return semctx.Eval(c.Semantic, rec, outerCtx)
			})
			working = succeeded
			if working.Len() == 0 {
				return InvalidAltNumber, token.NewNoViableAltError(input.Get(input.Index()), 0, outerCtx, configs)
			}
		}

		alts := working.Alts()
		if len(alts) == 1 {
			markAccept(prev, alts[0], working)
			return alts[0], nil
		}

		altsets := working.GetConflictingAltSubsets()
		if prediction.HasConflictingAltSet(altsets) {
			if unique := prediction.GetUniqueAlt(altsets); unique != InvalidAltNumber {
				markAccept(prev, unique, working)
				return unique, nil
			}
			if !fullCtx {
				// spec §4.4 step 2: consult PredictionMode.hasSLLConflictTerminatingPrediction
				// rather than giving up on the first conflicting alt-subset — a
				// conflict that's also resolved unambiguously elsewhere in the
				// set is spurious and more lookahead can still clear it.
				if prediction.HasSLLConflictTerminatingPrediction(working) {
					if working.HasSemanticContext {
						tracer().Debugf("SLL conflict guarded by semantic predicates, recording predicated accept state")
						markAccept(prev, alts[0], working)
						return alts[0], nil
					}
					tracer().Debugf("SLL conflict over %d alt subsets terminates prediction, no predicates to disambiguate", len(altsets))
					prev.RequiresFullContext = true
					return InvalidAltNumber, errAmbiguousUnderSLL
				}
				// else: conflict is spurious at this lookahead depth; fall
				// through and consume another symbol.
			} else if singleViable := prediction.ResolvesToJustOneViableAlt(altsets); singleViable != InvalidAltNumber {
				markAccept(prev, singleViable, working)
				return singleViable, nil
			} else {
				tracer().Infof("full-LL conflict unresolved by PredictionMode, taking minimum alt %d", alts[0])
				markAccept(prev, alts[0], working) // full-LL exhausted conflict analysis: minimum alt wins, per spec §9
				return alts[0], nil
			}
		}

		symbol := input.LA(1)
		if symbol == allstar.EOF {
			if finished := working.GetAltThatFinishedDecisionEntryRule(); finished != InvalidAltNumber {
				markAccept(prev, finished, working)
				return finished, nil
			}
			markAccept(prev, alts[0], working)
			return alts[0], nil
		}

		if edge := prev.EdgeFor(symbol); edge != nil {
			input.Consume()
			prev = edge
			continue
		}

		input.Consume()
		next := reach(sim.ATN, working, symbol, cache, outer)
		if next.Len() == 0 {
			// Every alternative died trying to match symbol. One of them
			// may already have reached a complete, valid parse of the
			// decision's own rule before that — e.g. `e: ID | ID '!'`
			// against `ID ID` dies trying to match alt 2's '!' against
			// the second ID, but alt 1 already finished on the first.
			if finished := working.GetAltThatFinishedDecisionEntryRule(); finished != InvalidAltNumber {
				return finished, nil
			}
			return InvalidAltNumber, token.NewNoViableAltError(input.Get(input.Index()), 0, outerCtx, configs)
		}
		nextState, _ := d.GetOrAdd(next)
		prev.AddEdge(symbol, nextState)
		tracer().Debugf("dfa[%d]: edge on symbol %d discovered (%d configs)", d.Decision, symbol, next.Len())
		prev = nextState
	}
}

// markAccept records that state resolves a decision to alt, and — when
// the resolving configurations still carried semantic context — the
// per-alternative predicates a later visit must re-evaluate before
// trusting the cached Prediction (spec §3's "for predicated accept
// states a list of (semanticContext, alt) pairs").
func markAccept(state *dfa.State, alt int, configs *config.Set) {
	state.IsAcceptState = true
	state.Prediction = alt
	if !configs.HasSemanticContext {
		return
	}
	seen := map[int]bool{}
	var preds []dfa.PredicatedAlt
	for _, c := range configs.All() {
		if c.Semantic == semctx.None || seen[c.Alt] {
			continue
		}
		seen[c.Alt] = true
		preds = append(preds, dfa.PredicatedAlt{Alt: c.Alt, Predicate: c.Semantic})
	}
	state.Predicates = preds
}

// resolvePredicatedAccept re-evaluates a predicated accept state's stored
// predicates against the live recognizer, in ascending alt order, so that
// revisiting a decision the DFA has already solved once still honors
// context-dependent predicates rather than blindly trusting the first
// Prediction computed for some other rule invocation.
func resolvePredicatedAccept(state *dfa.State, rec semctx.Recognizer, outerCtx interface{}) (int, bool) {
	if len(state.Predicates) == 0 || rec == nil {
		return InvalidAltNumber, false
	}
	for _, pa := range state.Predicates {
		sc, _ := pa.Predicate.(*semctx.Context)
		if sc == nil || semctx.Eval(sc, rec, outerCtx) {
			return pa.Alt, true
		}
	}
	return InvalidAltNumber, false
}
