package simulator

import (
	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/config"
	"github.com/npillmayer/allstar/atn/pcontext"
	"github.com/npillmayer/allstar/atn/semctx"
)

// closure computes the epsilon-reachable set of configurations from cfg,
// adding each one to configs (which performs the merge-on-collision
// dedup, per spec §3). outer, which may be nil, is the real rule
// invocation chain the decision is nested inside; when a configuration's
// local context bottoms out at pcontext.Empty, closure climbs one level
// into outer instead of stopping, the same "local context exhausted, ask
// the global FOLLOW" idea atn.ATN.NextTokensInContext uses, and marks the
// configuration's ReachesIntoOuterContext so conflict analysis can treat
// it conservatively.
func closure(a *atn.ATN, cfg *config.Config, configs *config.Set, cache *pcontext.MergeCache, outer atn.RuleInvocationChain) {
	if cfg.State.Type == atn.StateRuleStop {
		closeRuleStop(a, cfg, configs, cache, outer)
		return
	}
	if !configs.Add(cfg, cache) {
		return // already present (possibly merged); don't re-walk its epsilon edges
	}
	for _, t := range cfg.State.Transitions {
		if !t.IsEpsilon() {
			continue
		}
		target := a.State(t.Target)
		if target == nil {
			continue
		}
		closure(a, epsilonSuccessor(cfg, t, target), configs, cache, outer)
	}
}

func epsilonSuccessor(cfg *config.Config, t *atn.Transition, target *atn.State) *config.Config {
	sem := cfg.Semantic
	ctx := cfg.Context
	switch t.Kind {
	case atn.TransPredicate:
		sem = semctx.And(sem, semctx.NewPredicate(t.PredRuleIndex, t.PredIndex, t.IsCtxDependent))
	case atn.TransPrecedencePredicate:
		sem = semctx.And(sem, semctx.NewPrecedencePredicate(t.Precedence))
	case atn.TransRule:
		ctx = pcontext.NewSingleton(cfg.Context, t.FollowState)
	}
	next := config.NewWithSemantic(target, cfg.Alt, ctx, sem)
	next.ReachesIntoOuterContext = cfg.ReachesIntoOuterContext
	next.PrecedenceFilterSuppressed = cfg.PrecedenceFilterSuppressed
	return next
}

func closeRuleStop(a *atn.ATN, cfg *config.Config, configs *config.Set, cache *pcontext.MergeCache, outer atn.RuleInvocationChain) {
	switch {
	case cfg.Context == pcontext.Empty:
		if outer == nil {
			configs.Add(cfg, cache)
			return
		}
		invokingState := a.State(outer.InvokingState())
		if invokingState == nil || len(invokingState.Transitions) == 0 {
			configs.Add(cfg, cache)
			return
		}
		followState := a.State(invokingState.Transitions[0].FollowState)
		if followState == nil {
			configs.Add(cfg, cache)
			return
		}
		climbed := config.NewWithSemantic(followState, cfg.Alt, pcontext.Empty, cfg.Semantic)
		climbed.ReachesIntoOuterContext = cfg.ReachesIntoOuterContext + 1
		closure(a, climbed, configs, cache, outer.Outer())
	case cfg.Context.Kind == pcontext.KindSingleton:
		followState := a.State(cfg.Context.ReturnStates[0])
		if followState == nil {
			return
		}
		popped := config.NewWithSemantic(followState, cfg.Alt, cfg.Context.Parents[0], cfg.Semantic)
		popped.ReachesIntoOuterContext = cfg.ReachesIntoOuterContext
		closure(a, popped, configs, cache, outer)
	default: // KindArray: one branch per alternative call site sharing this state
		for i, parent := range cfg.Context.Parents {
			followState := a.State(cfg.Context.ReturnStates[i])
			if followState == nil {
				continue
			}
			popped := config.NewWithSemantic(followState, cfg.Alt, parent, cfg.Semantic)
			popped.ReachesIntoOuterContext = cfg.ReachesIntoOuterContext
			closure(a, popped, configs, cache, outer)
		}
	}
}

// Closure computes the epsilon closure of every configuration in seed and
// returns it as a new set, leaving seed unchanged; AdaptivePredict uses it
// to close a decision's starting configuration set, and reach to close
// each set reached by consuming a symbol.
func Closure(a *atn.ATN, seed *config.Set, cache *pcontext.MergeCache, outer atn.RuleInvocationChain) *config.Set {
	out := config.NewSet(seed.FullCtx)
	for _, c := range seed.All() {
		closure(a, c, out, cache, outer)
	}
	return out
}
