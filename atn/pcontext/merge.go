package pcontext

// MergeCache memoizes Merge results keyed by the pair of input pointers.
// A single cache is meant to live for the duration of one closure
// computation (spec §4.4); sharing it across the whole computation is what
// keeps repeated merges of the same two subgraphs O(1) after the first.
//
// Unlike the per-decision DFA (package atn/dfa), a MergeCache is not meant
// to be shared across concurrent predictions — each adaptivePredict call
// owns its own, per spec §5 ("prediction itself is thread-local").
type MergeCache struct {
	table map[pairKey]*Context
}

type pairKey struct{ a, b *Context }

// NewMergeCache returns an empty cache.
func NewMergeCache() *MergeCache {
	return &MergeCache{table: make(map[pairKey]*Context)}
}

func (c *MergeCache) get(a, b *Context) (*Context, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.table[pairKey{a, b}]
	return v, ok
}

func (c *MergeCache) put(a, b, result *Context) {
	if c == nil {
		return
	}
	c.table[pairKey{a, b}] = result
	c.table[pairKey{b, a}] = result
}

// Merge collapses a and b into a single context representing either call
// history. It is idempotent (Merge(a,a,*,*) == a) and commutative up to
// structural equality (Merge(a,b,*,*) and Merge(b,a,*,*) describe the same
// graph, though not necessarily the same pointer unless interned — see
// GetCachedContext).
//
// rootIsWildcard distinguishes SLL prediction (true: an empty stack at
// either side means "don't care what's above it", so EMPTY absorbs
// anything it is merged with) from full-LL prediction (false: an empty
// stack is a distinct, meaningful call history that must be preserved
// alongside non-empty ones).
func Merge(a, b *Context, rootIsWildcard bool, cache *MergeCache) *Context {
	if a == b {
		return a
	}
	if rootIsWildcard {
		if a == Empty {
			return Empty
		}
		if b == Empty {
			return Empty
		}
	}
	if cached, ok := cache.get(a, b); ok {
		return cached
	}

	var result *Context
	switch {
	case a == Empty || b == Empty:
		result = mergeWithEmpty(a, b, rootIsWildcard)
	case a.Kind == KindSingleton && b.Kind == KindSingleton:
		result = mergeSingletons(a, b, rootIsWildcard, cache)
	default:
		result = mergeArrays(asArray(a), asArray(b), rootIsWildcard, cache)
	}

	cache.put(a, b, result)
	return result
}

func asArray(c *Context) *Context {
	if c.Kind == KindArray {
		return c
	}
	// Singleton, viewed as a one-element array, or EMPTY as a zero-element
	// one (never actually reached since callers special-case EMPTY first).
	return &Context{Kind: KindArray, Parents: c.Parents, ReturnStates: c.ReturnStates}
}

// mergeWithEmpty handles full-LL merges (rootIsWildcard == false, since the
// true case is short-circuited in Merge) where one side is the empty
// stack: the two call histories are distinct and must both survive, so the
// result is an array that keeps EMPTY as one of its branches.
func mergeWithEmpty(a, b *Context, rootIsWildcard bool) *Context {
	nonEmpty, _ := a, b
	if a == Empty {
		nonEmpty = b
	}
	if rootIsWildcard {
		return Empty
	}
	parents := append(append([]*Context(nil), nonEmpty.Parents...), Empty)
	states := append(append([]int(nil), nonEmpty.ReturnStates...), emptyReturnStateKey)
	return NewArray(parents, states)
}

// emptyReturnStateKey sorts EMPTY branches after any real return state, so
// that "may contain the empty sentinel at the end" (spec §3) holds for
// arrays built by this package.
const emptyReturnStateKey = int(^uint(0) >> 1) // max int

func mergeSingletons(a, b *Context, rootIsWildcard bool, cache *MergeCache) *Context {
	if a.ReturnStates[0] == b.ReturnStates[0] {
		mergedParent := Merge(a.Parents[0], b.Parents[0], rootIsWildcard, cache)
		if mergedParent == a.Parents[0] {
			return a
		}
		if mergedParent == b.Parents[0] {
			return b
		}
		return NewSingleton(mergedParent, a.ReturnStates[0])
	}
	// Different return states with no common suffix at this level: the two
	// call histories fork here, producing a two-branch array.
	parents := []*Context{a.Parents[0], b.Parents[0]}
	states := []int{a.ReturnStates[0], b.ReturnStates[0]}
	return NewArray(parents, states)
}

// mergeArrays performs a merge-sort union of two parallel (parent,
// returnState) arrays: entries with distinct return states are simply
// interleaved, entries that share a return state have their parents merged
// recursively.
func mergeArrays(a, b *Context, rootIsWildcard bool, cache *MergeCache) *Context {
	var parents []*Context
	var states []int
	i, j := 0, 0
	for i < len(a.ReturnStates) && j < len(b.ReturnStates) {
		switch {
		case a.ReturnStates[i] == b.ReturnStates[j]:
			merged := Merge(a.Parents[i], b.Parents[j], rootIsWildcard, cache)
			parents = append(parents, merged)
			states = append(states, a.ReturnStates[i])
			i++
			j++
		case a.ReturnStates[i] < b.ReturnStates[j]:
			parents = append(parents, a.Parents[i])
			states = append(states, a.ReturnStates[i])
			i++
		default:
			parents = append(parents, b.Parents[j])
			states = append(states, b.ReturnStates[j])
			j++
		}
	}
	parents = append(parents, a.Parents[i:]...)
	states = append(states, a.ReturnStates[i:]...)
	parents = append(parents, b.Parents[j:]...)
	states = append(states, b.ReturnStates[j:]...)
	return NewArray(parents, states)
}
