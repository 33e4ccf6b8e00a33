package config

import (
	"fmt"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/pcontext"
	"github.com/npillmayer/allstar/atn/semctx"
)

// Config is a single (state, alt, context, semanticContext) tuple: one
// point in the ATN that a prediction run currently considers reachable,
// together with the call-stack context it would return through and any
// semantic predicate still guarding it.
type Config struct {
	State    *atn.State
	Alt      int
	Context  *pcontext.Context
	Semantic *semctx.Context

	// ReachesIntoOuterContext counts how many enclosing rule invocations
	// this configuration's closure walked past the bottom of the known
	// call stack (pcontext.Empty) to get here. A nonzero count means the
	// configuration is sensitive to context the current prediction run
	// cannot fully see; PredictionMode treats that conservatively.
	ReachesIntoOuterContext int

	// PrecedenceFilterSuppressed marks a configuration that survived
	// applyPrecedenceFilter only because it already carried a strictly
	// higher-precedence alternative; such a configuration must not be
	// removed by a later, coarser precedence check.
	PrecedenceFilterSuppressed bool
}

// InvalidAltNumber mirrors the root allstar package's constant of the same
// name, duplicated locally (rather than imported) for the same reason
// atn.go duplicates EOF/MinUserTokenType: it is a single untyped integer,
// and importing the root package here buys nothing but an extra edge in
// the dependency graph.
const InvalidAltNumber = 0

// New returns a Config with no attached semantic context.
func New(state *atn.State, alt int, ctx *pcontext.Context) *Config {
	return &Config{State: state, Alt: alt, Context: ctx, Semantic: semctx.None}
}

// NewWithSemantic returns a Config carrying a semantic predicate.
func NewWithSemantic(state *atn.State, alt int, ctx *pcontext.Context, sem *semctx.Context) *Config {
	return &Config{State: state, Alt: alt, Context: ctx, Semantic: sem}
}

// Key is the equality key ATNConfigSet dedups on: (state, alt, semantic
// context). Per spec §3, the call-stack context is deliberately excluded
// from the key — colliding configurations have their contexts merged
// rather than compared, which is what gives the ATN simulator its
// subset-construction-style state compression.
type Key struct {
	StateNumber int
	Alt         int
	SemKey      string
}

// Key computes c's set-membership key.
func (c *Config) Key() Key {
	return Key{StateNumber: c.State.Number, Alt: c.Alt, SemKey: c.Semantic.String()}
}

func (c *Config) String() string {
	if c.Semantic == semctx.None {
		return fmt.Sprintf("(s%d,%d,%s)", c.State.Number, c.Alt, c.Context)
	}
	return fmt.Sprintf("(s%d,%d,%s,%s)", c.State.Number, c.Alt, c.Context, c.Semantic)
}
