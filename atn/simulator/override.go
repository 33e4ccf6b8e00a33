package simulator

import "sync"

// overrideKey identifies one forced decision: which decision, at which
// input token index.
type overrideKey struct {
	decision   int
	tokenIndex int
}

// Overrides lets a caller force a specific alternative at a specific
// decision and input position, bypassing AdaptivePredict's own analysis
// entirely — the mechanism spec §8 scenario 2 uses to reparse an
// ambiguous sentence with a non-default alternative selected, and the
// same shape a profiler or "what-if this had parsed differently" tool
// would use.
//
// What happens when the recorded token index falls inside a region a
// later error recovery skips over is left open by spec §9; this
// implementation resolves it by checking the override only against the
// token index actually reached when the decision runs, so a skipped
// override is silently never consulted rather than causing a panic or a
// stale, wrongly-applied override — recovery already changed the parse
// enough that honoring a position-addressed override after the position
// moved out from under it would be applying the override to different
// input than the caller intended.
type Overrides struct {
	mu    sync.Mutex
	table map[overrideKey]int
}

// NewOverrides returns an empty override table.
func NewOverrides() *Overrides {
	return &Overrides{table: make(map[overrideKey]int)}
}

// Add records that decision, when reached with the input positioned at
// tokenIndex, must resolve to alt.
func (o *Overrides) Add(decision, tokenIndex, alt int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.table[overrideKey{decision, tokenIndex}] = alt
}

// Lookup returns the forced alternative for (decision, tokenIndex), if
// any.
func (o *Overrides) Lookup(decision, tokenIndex int) (alt int, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	alt, ok = o.table[overrideKey{decision, tokenIndex}]
	return
}
