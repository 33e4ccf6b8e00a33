package semctx

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Kind tags the SemanticContext variants named in the spec.
type Kind int

const (
	KindNone Kind = iota
	KindPredicate
	KindPrecedence
	KindAnd
	KindOr
)

// Context is a node of the semantic-context boolean algebra. Leaves are
// KindPredicate (a user-written `{...}?` action) or KindPrecedence (the
// precedence predicate a left-recursive rule's alternatives are rewritten
// with); KindAnd/KindOr combine operands, which are always kept sorted and
// deduplicated so that two contexts built independently from the same set
// of predicates compare equal by reflect.DeepEqual-style structural
// comparison (Equal, below) without needing a canonicalization pass.
type Context struct {
	Kind Kind

	// Predicate
	RuleIndex      int
	PredIndex      int
	IsCtxDependent bool

	// PrecedencePredicate
	Precedence int

	// And / Or
	Operands []*Context
}

// None is the always-true sentinel: the semantic context of a configuration
// with no attached predicates.
var None = &Context{Kind: KindNone}

// NewPredicate returns a leaf for a user semantic predicate.
func NewPredicate(ruleIndex, predIndex int, ctxDependent bool) *Context {
	return &Context{Kind: KindPredicate, RuleIndex: ruleIndex, PredIndex: predIndex, IsCtxDependent: ctxDependent}
}

// NewPrecedencePredicate returns a leaf comparing the parser's current
// precedence threshold against precedence.
func NewPrecedencePredicate(precedence int) *Context {
	return &Context{Kind: KindPrecedence, Precedence: precedence}
}

// And combines a and b conjunctively, short-circuiting against None and
// flattening nested ANDs so that And(And(p,q),r) and And(p,And(q,r))
// produce the same operand set.
func And(a, b *Context) *Context {
	if a == None {
		return b
	}
	if b == None {
		return a
	}
	ops := flatten(KindAnd, a, b)
	return combine(KindAnd, ops)
}

// Or combines a and b disjunctively, with the symmetric treatment of And.
func Or(a, b *Context) *Context {
	if a == None || b == None {
		return None
	}
	ops := flatten(KindOr, a, b)
	return combine(KindOr, ops)
}

func flatten(kind Kind, a, b *Context) []*Context {
	var ops []*Context
	for _, c := range []*Context{a, b} {
		if c.Kind == kind {
			ops = append(ops, c.Operands...)
		} else {
			ops = append(ops, c)
		}
	}
	return ops
}

func combine(kind Kind, ops []*Context) *Context {
	slices.SortFunc(ops, less)
	ops = slices.CompactFunc(ops, Equal)
	if len(ops) == 1 {
		return ops[0]
	}
	return &Context{Kind: kind, Operands: ops}
}

// Equal reports structural equality. Semantic contexts form finite trees
// (no sharing back to an ancestor is possible by construction), so a plain
// recursive comparison is sufficient — unlike pcontext.Context, there is no
// DAG reconvergence to guard against here.
func Equal(a, b *Context) bool {
	if a == b {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNone:
		return true
	case KindPredicate:
		return a.RuleIndex == b.RuleIndex && a.PredIndex == b.PredIndex && a.IsCtxDependent == b.IsCtxDependent
	case KindPrecedence:
		return a.Precedence == b.Precedence
	default: // And / Or
		if len(a.Operands) != len(b.Operands) {
			return false
		}
		for i := range a.Operands {
			if !Equal(a.Operands[i], b.Operands[i]) {
				return false
			}
		}
		return true
	}
}

// less imposes a total order over contexts so AND/OR operands sort
// deterministically before CompactFunc dedups them.
func less(a, b *Context) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case KindPredicate:
		if a.RuleIndex != b.RuleIndex {
			return a.RuleIndex < b.RuleIndex
		}
		return a.PredIndex < b.PredIndex
	case KindPrecedence:
		return a.Precedence < b.Precedence
	default:
		if len(a.Operands) != len(b.Operands) {
			return len(a.Operands) < len(b.Operands)
		}
		for i := range a.Operands {
			if less(a.Operands[i], b.Operands[i]) {
				return true
			}
			if less(b.Operands[i], a.Operands[i]) {
				return false
			}
		}
		return false
	}
}

func (c *Context) String() string {
	switch c.Kind {
	case KindNone:
		return "<true>"
	case KindPredicate:
		return fmt.Sprintf("{%d:%d}?", c.RuleIndex, c.PredIndex)
	case KindPrecedence:
		return fmt.Sprintf("{%d>=prec}?", c.Precedence)
	case KindAnd:
		return fmt.Sprintf("AND%v", c.Operands)
	default:
		return fmt.Sprintf("OR%v", c.Operands)
	}
}
