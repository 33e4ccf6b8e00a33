package semctx

// Recognizer is the evaluation collaborator a parser provides: it knows
// how to run a single user predicate or precedence check. outerCtx is
// opaque to this package — it is handed back to the recognizer verbatim,
// since only the recognizer (package interp) knows how to resolve a rule
// context for a context-dependent predicate.
type Recognizer interface {
	Sempred(outerCtx interface{}, ruleIndex, predIndex int) bool
	Precpred(outerCtx interface{}, precedence int) bool
}

// Eval evaluates c to a boolean, given the parser's current rule context.
// Context-dependent predicates receive outerCtx directly; precedence
// predicates are compared against the recognizer's notion of the current
// precedence threshold.
func Eval(c *Context, r Recognizer, outerCtx interface{}) bool {
	switch c.Kind {
	case KindNone:
		return true
	case KindPredicate:
		return r.Sempred(outerCtx, c.RuleIndex, c.PredIndex)
	case KindPrecedence:
		return r.Precpred(outerCtx, c.Precedence)
	case KindAnd:
		for _, op := range c.Operands {
			if !Eval(op, r, outerCtx) {
				return false
			}
		}
		return true
	default: // KindOr
		for _, op := range c.Operands {
			if Eval(op, r, outerCtx) {
				return true
			}
		}
		return false
	}
}

// EvalPrecedence folds away the precedence predicates in c against the
// recognizer's current threshold, per spec §4.3:
//   - None is returned if every precedence predicate holds and no
//     non-precedence predicate remains (the configuration is unconditionally
//     viable from here on, so there is nothing left worth re-checking);
//   - nil is returned if any precedence predicate fails (the configuration
//     is not viable at all, regardless of any user predicates);
//   - otherwise, a new context with the precedence predicates stripped out
//     is returned, leaving only the user predicates still to be checked.
func EvalPrecedence(c *Context, r Recognizer, outerCtx interface{}) *Context {
	switch c.Kind {
	case KindNone, KindPredicate:
		return c
	case KindPrecedence:
		if r.Precpred(outerCtx, c.Precedence) {
			return None
		}
		return nil
	case KindAnd:
		return evalPrecedenceAnd(c, r, outerCtx)
	default:
		return evalPrecedenceOr(c, r, outerCtx)
	}
}

func evalPrecedenceAnd(c *Context, r Recognizer, outerCtx interface{}) *Context {
	result := None
	changed := false
	for _, op := range c.Operands {
		simplified := EvalPrecedence(op, r, outerCtx)
		if simplified == nil {
			return nil // one conjunct false falsifies the whole AND
		}
		if simplified != op {
			changed = true
		}
		if simplified != None {
			result = And(result, simplified)
		}
	}
	if !changed {
		return c
	}
	return result
}

func evalPrecedenceOr(c *Context, r Recognizer, outerCtx interface{}) *Context {
	var result *Context
	changed := false
	for _, op := range c.Operands {
		simplified := EvalPrecedence(op, r, outerCtx)
		if simplified != op {
			changed = true
		}
		if simplified == nil {
			continue // one disjunct false just drops out of the OR
		}
		if simplified == None {
			return None // one disjunct unconditionally true makes the OR true
		}
		if result == nil {
			result = simplified
		} else {
			result = Or(result, simplified)
		}
	}
	if result == nil {
		return nil // every disjunct was falsified
	}
	if !changed {
		return c
	}
	return result
}
