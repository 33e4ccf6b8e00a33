package pcontext

import (
	"sync"

	"github.com/cnf/structhash"
)

// Equal reports whether a and b describe the same graph-structured call
// stack, structurally rather than by pointer identity — two contexts built
// independently but covering the same call histories are Equal even though
// Merge may never have been asked to unify them. visited guards against
// re-comparing the same pair of nodes twice when a and b reconverge after
// diverging (a DAG, not a tree), which is also adequate protection should a
// malformed context ever be cyclic.
func Equal(a, b *Context, visited map[pairKey]bool) bool {
	if a == b {
		return true
	}
	if a == Empty || b == Empty {
		return false // one is EMPTY, the other isn't (a==b already handled)
	}
	if a.Kind != b.Kind || len(a.ReturnStates) != len(b.ReturnStates) {
		return false
	}
	key := pairKey{a, b}
	if visited[key] {
		return true // already being compared further up the call chain
	}
	visited[key] = true
	for i := range a.ReturnStates {
		if a.ReturnStates[i] != b.ReturnStates[i] {
			return false
		}
		if !Equal(a.Parents[i], b.Parents[i], visited) {
			return false
		}
	}
	return true
}

// hashOf computes a cycle-safe structural hash of ctx, memoizing
// per-node digests in memo so that a context shared by many configurations
// (the common case — that is the whole point of this package) is hashed
// once rather than once per configuration. Parent digests are folded in
// before handing the final, flat (Kind, ReturnStates, parent digests)
// tuple to structhash, the same hashing library the teacher's Earley
// parser uses to key its item/state dedup table (lr/earley/earley.go).
func hashOf(ctx *Context, memo map[*Context]string) string {
	if ctx == Empty {
		return "$"
	}
	if h, ok := memo[ctx]; ok {
		return h
	}
	parentHashes := make([]string, len(ctx.Parents))
	for i, p := range ctx.Parents {
		parentHashes[i] = hashOf(p, memo)
	}
	shape := struct {
		Kind    Kind
		States  []int
		Parents []string
	}{Kind: ctx.Kind, States: ctx.ReturnStates, Parents: parentHashes}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		panic(err) // structhash only fails on unsupported field types; our shape has none
	}
	memo[ctx] = h
	return h
}

// Hash returns the structural hash of ctx, suitable for use as a map key
// when deduplicating configurations or interning context subgraphs.
func Hash(ctx *Context) string {
	return hashOf(ctx, make(map[*Context]string))
}

// Interner collapses structurally-equal context graphs down to one shared
// instance, so that after a round of merging, equal suffixes that happen
// to have been built as separate objects become pointer-identical again.
// Safe for concurrent use: publishing a freshly built context is the only
// mutation, and it is idempotent (whichever goroutine's candidate wins the
// race, both observe a structurally-equal result).
type Interner struct {
	mu      sync.Mutex
	buckets map[string][]*Context
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[string][]*Context)}
}

// GetCachedContext interns ctx: it returns a context structurally equal to
// ctx, reusing a previously interned instance when one exists, walking
// parents bottom-up so that shared sub-chains collapse to the same pointer
// throughout the whole graph, not just at the root. visited short-circuits
// nodes already interned during this call (a context graph is a DAG: the
// same subgraph can be reached from more than one parent).
func (in *Interner) GetCachedContext(ctx *Context, visited map[*Context]*Context) *Context {
	if ctx == Empty {
		return Empty
	}
	if cached, ok := visited[ctx]; ok {
		return cached
	}
	internedParents := make([]*Context, len(ctx.Parents))
	changed := false
	for i, p := range ctx.Parents {
		ip := in.GetCachedContext(p, visited)
		internedParents[i] = ip
		if ip != p {
			changed = true
		}
	}
	candidate := ctx
	if changed {
		candidate = &Context{Kind: ctx.Kind, Parents: internedParents, ReturnStates: ctx.ReturnStates}
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	h := hashOf(candidate, make(map[*Context]string))
	for _, existing := range in.buckets[h] {
		if Equal(existing, candidate, make(map[pairKey]bool)) {
			visited[ctx] = existing
			return existing
		}
	}
	in.buckets[h] = append(in.buckets[h], candidate)
	visited[ctx] = candidate
	return candidate
}
