package interp

import (
	"fmt"
	"strings"

	"github.com/npillmayer/allstar/atn"
	"github.com/npillmayer/allstar/token"
)

// ParserRuleContext is the parse-tree node every rule invocation builds: a
// parent link, the ATN state the caller was sitting on when it made the
// call, the rule this context is for, the first and last tokens it spans,
// and the ordered list of children (each either a token.Token leaf or a
// nested *ParserRuleContext). RecogError records a RecognitionError caught
// while building this context, nil on the common path.
//
// It implements atn.RuleInvocationChain, so the ATN's own NextTokens /
// ExpectedTokens walk can climb a live parse's call stack without this
// package needing to hand it anything more specialized.
type ParserRuleContext struct {
	Parent     *ParserRuleContext
	RuleIndex  int
	Start      token.Token
	Stop       token.Token
	Children   []interface{}
	RecogError token.RecognitionError

	invokingState int
}

// NewParserRuleContext allocates a context for ruleIndex, invoked from
// invokingState in parent (atn.InvalidStateNumber and a nil parent for the
// outermost rule of a parse).
func NewParserRuleContext(parent *ParserRuleContext, invokingState, ruleIndex int) *ParserRuleContext {
	return &ParserRuleContext{Parent: parent, invokingState: invokingState, RuleIndex: ruleIndex}
}

// InterpreterRuleContext is the context type ParserInterpreter actually
// builds. A compiled-grammar parser would instead generate a named
// subclass of ParserRuleContext per rule, with typed accessors for each
// labeled subrule/token; this runtime has no grammar compiler to generate
// those, so every rule invocation gets this same generic shape (spec §3).
// There is no additional state an interpreted parse needs beyond what
// ParserRuleContext already carries, so the two are the same type.
type InterpreterRuleContext = ParserRuleContext

// NewInterpreterRuleContext is a documentation-preserving synonym for
// NewParserRuleContext, used at every call site within this package that
// constructs a context on the interpreter's behalf (as opposed to one a
// generated parser would have built some other way).
func NewInterpreterRuleContext(parent *ParserRuleContext, invokingState, ruleIndex int) *ParserRuleContext {
	return NewParserRuleContext(parent, invokingState, ruleIndex)
}

// InvokingState implements atn.RuleInvocationChain. A nil receiver (the
// "no context" case some callers pass around loosely) reports
// atn.InvalidStateNumber, matching an empty call stack.
func (c *ParserRuleContext) InvokingState() int {
	if c == nil {
		return atn.InvalidStateNumber
	}
	return c.invokingState
}

// Outer implements atn.RuleInvocationChain.
func (c *ParserRuleContext) Outer() atn.RuleInvocationChain {
	if c == nil || c.Parent == nil {
		return nil
	}
	return c.Parent
}

func (c *ParserRuleContext) addChild(child interface{}) {
	c.Children = append(c.Children, child)
}

// RemoveLastChild drops the most recently appended child. Error recovery
// that backs a partially-matched optional construct out again uses this to
// keep the tree from recording a child that never actually completed.
func (c *ParserRuleContext) RemoveLastChild() {
	if n := len(c.Children); n > 0 {
		c.Children = c.Children[:n-1]
	}
}

// ChildCount reports how many children c has so far.
func (c *ParserRuleContext) ChildCount() int { return len(c.Children) }

// String renders c as an s-expression: the rule's numeric index, followed
// by each child (a token's text, or a nested context rendered the same
// way). ParserInterpreter.TreeString produces the same shape with rule
// names instead of indices, which is almost always what callers want;
// String exists so a bare *ParserRuleContext is still useful in a debugger
// or a %v format verb without a ParserInterpreter at hand.
func (c *ParserRuleContext) String() string {
	var b strings.Builder
	c.write(&b, nil)
	return b.String()
}

func (c *ParserRuleContext) write(b *strings.Builder, ruleNames []string) {
	b.WriteByte('(')
	if c.RuleIndex >= 0 && c.RuleIndex < len(ruleNames) {
		b.WriteString(ruleNames[c.RuleIndex])
	} else {
		fmt.Fprintf(b, "rule%d", c.RuleIndex)
	}
	for _, ch := range c.Children {
		b.WriteByte(' ')
		switch v := ch.(type) {
		case token.Token:
			b.WriteString(v.Text())
		case *ParserRuleContext:
			v.write(b, ruleNames)
		}
	}
	b.WriteByte(')')
}
