package interp

import (
	"fmt"
	"strings"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/atn/pcontext"
	"github.com/npillmayer/allstar/atn/simulator"
	"github.com/npillmayer/allstar/token"
	"github.com/npillmayer/allstar/vocab"
)

// parentContextFrame is pushed once per active invocation of a
// left-recursive rule, by enterRecursionRule, and popped once that
// invocation fully unrolls (either by Parse's own top-level check or by
// visitRuleStopState). It folds together what the real ANTLR runtime keeps
// as two parallel stacks (precedence and parent-context): the two always
// push and pop in lockstep for a given recursion level, so one stack
// suffices here.
//
// ctx/invokingState record where control returns once this invocation's
// tree is fully built: the outermost invocation of a parse (started
// directly via Parse, not via a nested rule call) has no real caller, so
// ctx is nil and invokingState is atn.InvalidStateNumber; Parse checks for
// that case itself rather than relying on a sentinel frame.
type parentContextFrame struct {
	ctx           *ParserRuleContext
	invokingState int
	precedence    int
}

// ParserInterpreter walks an ATN directly, rather than through
// grammar-compiler-generated match/rule methods: at each decision state it
// asks Simulator.AdaptivePredict which alternative is viable and then
// takes the corresponding transition, building a ParserRuleContext tree as
// it consumes tokens. It implements both token.Recognizer (so Errors can
// drive recovery) and the method set atn/semctx.Recognizer names (so
// Simulator.AdaptivePredict can evaluate semantic and precedence
// predicates against it) purely structurally — neither package needs to be
// imported here for that to typecheck.
type ParserInterpreter struct {
	ATN        *atn.ATN
	Simulator  *simulator.Simulator
	Input      token.Stream
	Errors     token.ErrorStrategy
	RuleNames  []string
	Vocabulary *vocab.Vocabulary

	// SempredFunc, PrecpredFunc and Action give a hand-assembled grammar
	// its semantic glue, standing in for the method bodies a grammar
	// compiler would otherwise generate. A nil SempredFunc always
	// succeeds; a nil PrecpredFunc falls back to the standard
	// precedence-climbing comparison (predicate's own level >= the
	// precedence the current invocation was entered with); a nil Action
	// is simply skipped. They are named with a Func suffix because
	// ParserInterpreter also implements atn/semctx.Recognizer's own
	// Sempred/Precpred methods, which delegate to these.
	SempredFunc  func(ctx *ParserRuleContext, ruleIndex, predIndex int) bool
	PrecpredFunc func(ctx *ParserRuleContext, precedence int) bool
	Action       func(ctx *ParserRuleContext, ruleIndex, actionIndex int)

	state              int
	ctx                *ParserRuleContext
	lastConsumed       token.Token
	parentContextStack []parentContextFrame
	RecognitionErrors  []token.RecognitionError
}

// New returns a ParserInterpreter ready to Parse starting at any rule of a.
func New(a *atn.ATN, sim *simulator.Simulator, input token.Stream, errs token.ErrorStrategy, ruleNames []string, v *vocab.Vocabulary) *ParserInterpreter {
	return &ParserInterpreter{
		ATN:        a,
		Simulator:  sim,
		Input:      input,
		Errors:     errs,
		RuleNames:  ruleNames,
		Vocabulary: v,
	}
}

// AddDecisionOverride forces decision to resolve to forcedAlt (1-based)
// the one time input is sitting exactly at tokenIndex, per spec §6. It
// delegates to the underlying Simulator's Overrides table, which
// AdaptivePredict already consults before doing any real prediction work.
func (p *ParserInterpreter) AddDecisionOverride(decision, tokenIndex, forcedAlt int) {
	p.Simulator.Overrides.Add(decision, tokenIndex, forcedAlt)
}

// Parse walks the ATN starting at startRule's start state until that
// rule's own invocation (not any nested call) reduces, and returns the
// context tree it built.
func (p *ParserInterpreter) Parse(startRule int) (*ParserRuleContext, error) {
	if startRule < 0 || startRule >= len(p.ATN.RuleToStartState) {
		panic("interp: invalid start rule index")
	}
	startState := p.ATN.RuleToStartState[startRule]
	root := NewInterpreterRuleContext(nil, atn.InvalidStateNumber, startRule)
	root.Start = p.Input.Get(p.Input.Index())
	p.ctx = root
	tracer().Infof("parse: entering rule %d at token index %d", startRule, p.Input.Index())
	if startState.IsPrecedenceRule {
		p.enterRecursionRule(root, 0, nil, atn.InvalidStateNumber)
	}
	p.state = startState.Number

	for {
		st := p.ATN.State(p.state)
		if st == nil {
			panic("interp: walked off the ATN: invalid state number")
		}
		if st.Type == atn.StateRuleStop {
			// p.ctx.InvokingState() == InvalidStateNumber iff p.ctx is the
			// very context Parse built for startRule and no
			// pushNewRecursionContext call has since wrapped it — i.e. this
			// is the outermost invocation finishing, not a nested one
			// bouncing back through visitRuleStopState. For a precedence
			// rule this stays true across the whole walk except while a
			// deeper invocation's wrapping context is current, since
			// parentContextStack's top frame is only popped here, at the
			// very end, rather than by every intermediate reduction.
			if p.ctx.InvokingState() == atn.InvalidStateNumber {
				if startState.IsPrecedenceRule {
					frame := p.parentContextStack[len(p.parentContextStack)-1]
					p.parentContextStack = p.parentContextStack[:len(p.parentContextStack)-1]
					finished := p.unrollRecursionContexts(frame.ctx)
					tracer().Infof("parse: rule %d reduced at token index %d", startRule, p.Input.Index())
					return finished, p.firstError()
				}
				p.ctx.Stop = p.lastConsumed
				tracer().Infof("parse: rule %d reduced at token index %d", startRule, p.Input.Index())
				return p.ctx, p.firstError()
			}
			p.visitRuleStopState(st)
			continue
		}
		if err := p.visitState(st); err != nil {
			return p.ctx, err
		}
	}
}

func (p *ParserInterpreter) firstError() error {
	if len(p.RecognitionErrors) == 0 {
		return nil
	}
	return p.RecognitionErrors[0]
}

func (p *ParserInterpreter) currentPrecedence() int {
	if len(p.parentContextStack) == 0 {
		return 0
	}
	return p.parentContextStack[len(p.parentContextStack)-1].precedence
}

func (p *ParserInterpreter) enterRecursionRule(localctx *ParserRuleContext, precedence int, callerCtx *ParserRuleContext, resumeState int) {
	p.parentContextStack = append(p.parentContextStack, parentContextFrame{
		ctx:           callerCtx,
		invokingState: resumeState,
		precedence:    precedence,
	})
	p.ctx = localctx
}

// pushNewRecursionContext wraps the context built so far for the current
// precedence-rule invocation (e.g. the tree for "1" or "1+2") as the first
// child of a fresh context representing the larger expression about to be
// built (e.g. "1+2" or "(1+2)+3"), giving left-recursive rules their
// left-associative tree shape without ever actually recursing into a
// second stack frame. Called from visitState when an Epsilon transition
// leaves a precedence rule's loop-entry decision on its "keep going"
// branch (spec §4.5).
func (p *ParserInterpreter) pushNewRecursionContext(ruleIndex int) {
	top := p.parentContextStack[len(p.parentContextStack)-1]
	previous := p.ctx
	// newCtx inherits previous's invokingState rather than taking the
	// current ATN state: that is what makes InvokingState() keep reporting
	// InvalidStateNumber across every wrap of the outermost invocation, so
	// Parse's own "have we fully reduced" check stays correct no matter how
	// many times this rule has recursed into itself.
	newCtx := NewInterpreterRuleContext(top.ctx, previous.InvokingState(), ruleIndex)
	previous.Parent = newCtx
	previous.invokingState = p.ATN.RuleToStartState[ruleIndex].Number
	previous.Stop = p.lastConsumed
	newCtx.Start = previous.Start
	newCtx.addChild(previous)
	p.ctx = newCtx
}

// unrollRecursionContexts closes out the innermost active precedence-rule
// invocation, whose frame the caller has already popped off
// parentContextStack: it finalizes the context built so far, re-parents it
// under callerCtx (nil at the very top of a
// parse started on a precedence rule), and returns it — the fully-built
// tree for this invocation.
func (p *ParserInterpreter) unrollRecursionContexts(callerCtx *ParserRuleContext) *ParserRuleContext {
	p.ctx.Stop = p.lastConsumed
	finished := p.ctx
	finished.Parent = callerCtx
	if callerCtx != nil {
		callerCtx.addChild(finished)
	}
	p.ctx = callerCtx
	return finished
}

// visitRuleStopState handles reaching a RuleStop state for a nested call
// (the outermost call's stop is handled directly in Parse). For an
// ordinary rule this just exits back to the caller and resumes at the
// follow state of the call site's single outgoing Rule transition. For a
// precedence rule it instead pops parentContextStack and resumes exactly
// where that frame recorded, since repeated pushNewRecursionContext calls
// may have long since repointed p.ctx.Parent away from the real caller.
func (p *ParserInterpreter) visitRuleStopState(st *atn.State) {
	ruleStart := p.ATN.RuleToStartState[st.Rule]
	if ruleStart.IsPrecedenceRule {
		frame := p.parentContextStack[len(p.parentContextStack)-1]
		p.parentContextStack = p.parentContextStack[:len(p.parentContextStack)-1]
		p.unrollRecursionContexts(frame.ctx)
		p.state = frame.invokingState
		return
	}
	p.ctx.Stop = p.lastConsumed
	invokingStateNum := p.ctx.InvokingState()
	p.ctx = p.ctx.Parent
	invoking := p.ATN.State(invokingStateNum)
	if invoking == nil || len(invoking.Transitions) == 0 {
		panic("interp: rule-call site has no outgoing transition")
	}
	p.state = invoking.Transitions[0].FollowState
}

// visitState dispatches on the one transition chosen for st — the sole
// outgoing transition if st is not a decision state, otherwise the one
// Simulator.AdaptivePredict (or a standing decision override) names — per
// the case list in spec §4.5. A RecognitionError raised along the way is
// caught here: the context records it, Errors reports and attempts
// recovery, and the walk resumes from the current rule's stop state rather
// than propagating, matching spec §7's "interpreter absorbs recognition
// errors" rule. Only a genuinely impossible ATN shape panics.
func (p *ParserInterpreter) visitState(st *atn.State) error {
	altNum := 1
	if st.IsDecisionState() {
		_ = p.Errors.Sync(p)
		chosen, err := p.Simulator.AdaptivePredict(st.Decision, p.Input, pcontext.Empty, p.ctx, p, p.ctx)
		if err != nil {
			return p.handleRecognitionError(st, err)
		}
		altNum = chosen
	}
	if altNum < 1 || altNum > len(st.Transitions) {
		panic("interp: adaptive prediction returned an alt out of range")
	}
	t := st.Transitions[altNum-1]

	switch t.Kind {
	case atn.TransEpsilon:
		if st.Type == atn.StateStarLoopEntry && st.PrecedenceRuleDecision {
			if target := p.ATN.State(t.Target); target != nil && target.Type != atn.StateLoopEnd {
				p.pushNewRecursionContext(st.Rule)
			}
		}

	case atn.TransAtom:
		if _, err := p.match(t.Label); err != nil {
			return p.handleRecognitionError(st, err)
		}

	case atn.TransRange, atn.TransSet, atn.TransNotSet, atn.TransWildcard:
		if _, err := p.matchSet(t); err != nil {
			return p.handleRecognitionError(st, err)
		}

	case atn.TransRule:
		target := p.ATN.State(t.Target)
		if target == nil {
			panic("interp: rule transition targets an unknown state")
		}
		childCtx := NewInterpreterRuleContext(p.ctx, st.Number, t.RuleIndex)
		if target.IsPrecedenceRule {
			// Left as the child unrollRecursionContexts will attach once
			// this invocation's tree is final: pushNewRecursionContext may
			// still reparent childCtx itself into a larger wrapping
			// context before this call ever returns, so adding it to the
			// caller's children now would record a stale, superseded node.
			p.enterRecursionRule(childCtx, t.Precedence, p.ctx, t.FollowState)
		} else {
			p.ctx.addChild(childCtx)
			p.ctx = childCtx
		}

	case atn.TransPredicate:
		if !p.evalSempred(p.ctx, t.PredRuleIndex, t.PredIndex) {
			err := token.NewFailedPredicateError(p.currentToken(), t.PredRuleIndex, t.PredIndex, p.ctx, "")
			return p.handleRecognitionError(st, err)
		}

	case atn.TransPrecedencePredicate:
		if !p.evalPrecpred(p.ctx, t.Precedence) {
			msg := fmt.Sprintf("precpred(_ctx, %d)", t.Precedence)
			err := token.NewFailedPredicateError(p.currentToken(), st.Rule, 0, p.ctx, msg)
			return p.handleRecognitionError(st, err)
		}

	case atn.TransAction:
		if p.Action != nil {
			p.Action(p.ctx, t.PredRuleIndex, t.ActionIndex)
		}
	}

	p.state = t.Target
	return nil
}

func (p *ParserInterpreter) currentToken() token.Token {
	return p.Input.Get(p.Input.Index())
}

func (p *ParserInterpreter) handleRecognitionError(st *atn.State, err error) error {
	recErr, ok := err.(token.RecognitionError)
	if !ok {
		panic(err)
	}
	p.ctx.RecogError = recErr
	p.Errors.ReportError(p, recErr)
	if rerr := p.Errors.Recover(p, recErr); rerr != nil {
		return rerr
	}
	tracer().Debugf("rule %d: recovered, resuming at rule stop state", st.Rule)
	ruleStop := p.ATN.RuleToStopState[st.Rule]
	p.state = ruleStop.Number
	return nil
}

// match consumes the current token if it is of type expected, recording it
// as a child of the current context; otherwise it hands off to
// Errors.RecoverInline.
func (p *ParserInterpreter) match(expected int) (token.Token, error) {
	if p.Input.LA(1) == expected {
		return p.consume(), nil
	}
	t, err := p.Errors.RecoverInline(p)
	if t != nil && err == nil {
		p.recordConsumed(t)
	}
	return t, err
}

// matchSet consumes the current token if it satisfies t (a Range, Set,
// NotSet or Wildcard transition), otherwise hands off to
// Errors.RecoverInline exactly as match does for a single expected type.
func (p *ParserInterpreter) matchSet(t *atn.Transition) (token.Token, error) {
	if t.Matches(p.Input.LA(1)) {
		return p.consume(), nil
	}
	tok, err := p.Errors.RecoverInline(p)
	if tok != nil && err == nil {
		p.recordConsumed(tok)
	}
	return tok, err
}

func (p *ParserInterpreter) consume() token.Token {
	t := p.Input.Consume()
	p.recordConsumed(t)
	return t
}

// recordConsumed records t as the most recently matched token and appends
// it as a child of the current context, on both the clean-match path and
// the single-token-deletion recovery path. Either way a token has just
// been successfully matched, so any standing error-recovery suppression
// can be lifted (spec §7).
func (p *ParserInterpreter) recordConsumed(t token.Token) {
	p.lastConsumed = t
	p.ctx.addChild(t)
	if d, ok := p.Errors.(interface{ EndErrorRecovery() }); ok {
		d.EndErrorRecovery()
	}
}

// --- token.Recognizer ---

func (p *ParserInterpreter) InputStream() token.Stream { return p.Input }
func (p *ParserInterpreter) CurrentState() int         { return p.state }

func (p *ParserInterpreter) RuleIndex() int {
	if p.ctx == nil {
		return -1
	}
	return p.ctx.RuleIndex
}

func (p *ParserInterpreter) Context() interface{} { return p.ctx }

// Match implements token.Recognizer for callers outside this package
// (notably ErrorStrategy.RecoverInline, which calls back through the
// Recognizer it was handed); it is the same operation as the unexported
// match used during the interpreter's own walk.
func (p *ParserInterpreter) Match(expected int) (token.Token, error) {
	return p.match(expected)
}

func (p *ParserInterpreter) ExpectedTokens() *atn.IntervalSet {
	return p.ATN.ExpectedTokens(p.state, p.ctx)
}

func (p *ParserInterpreter) NotifyError(err token.RecognitionError) {
	p.RecognitionErrors = append(p.RecognitionErrors, err)
}

// --- atn/semctx.Recognizer, satisfied structurally ---

func (p *ParserInterpreter) Sempred(outerCtx interface{}, ruleIndex, predIndex int) bool {
	ctx, _ := outerCtx.(*ParserRuleContext)
	return p.evalSempred(ctx, ruleIndex, predIndex)
}

func (p *ParserInterpreter) Precpred(outerCtx interface{}, precedence int) bool {
	ctx, _ := outerCtx.(*ParserRuleContext)
	return p.evalPrecpred(ctx, precedence)
}

func (p *ParserInterpreter) evalSempred(ctx *ParserRuleContext, ruleIndex, predIndex int) bool {
	if p.SempredFunc == nil {
		return true
	}
	return p.SempredFunc(ctx, ruleIndex, predIndex)
}

func (p *ParserInterpreter) evalPrecpred(ctx *ParserRuleContext, precedence int) bool {
	if p.PrecpredFunc != nil {
		return p.PrecpredFunc(ctx, precedence)
	}
	return precedence >= p.currentPrecedence()
}

// TreeString renders ctx as an s-expression using p.RuleNames for node
// labels, e.g. "(s x = 3)".
func (p *ParserInterpreter) TreeString(ctx *ParserRuleContext) string {
	if ctx == nil {
		return "()"
	}
	var b strings.Builder
	ctx.write(&b, p.RuleNames)
	return b.String()
}
