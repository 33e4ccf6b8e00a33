package simulator

import (
	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/config"
	"github.com/npillmayer/allstar/atn/pcontext"
)

// reach consumes symbol from every configuration in configs whose state
// has a non-epsilon transition matching it, landing on the transition's
// target, and returns the epsilon closure of the resulting set — i.e. one
// full step of the subset-construction automaton the DFA memoizes.
// Configurations with no matching transition are simply dropped (that
// alternative is no longer viable on this input).
func reach(a *atn.ATN, configs *config.Set, symbol int, cache *pcontext.MergeCache, outer atn.RuleInvocationChain) *config.Set {
	moved := config.NewSet(configs.FullCtx)
	for _, c := range configs.All() {
		for _, t := range c.State.Transitions {
			if t.IsEpsilon() || !t.Matches(symbol) {
				continue
			}
			target := a.State(t.Target)
			if target == nil {
				continue
			}
			next := config.NewWithSemantic(target, c.Alt, c.Context, c.Semantic)
			next.ReachesIntoOuterContext = c.ReachesIntoOuterContext
			moved.Add(next, cache)
		}
	}
	if moved.Len() == 0 {
		tracer().Debugf("reach(%d): no alternative survives symbol %d", configs.Len(), symbol)
		return moved
	}
	return Closure(a, moved, cache, outer)
}
