package semctx

import "testing"

type fakeRecognizer struct {
	preds map[[2]int]bool
	prec  int
}

func (f *fakeRecognizer) Sempred(_ interface{}, ruleIndex, predIndex int) bool {
	return f.preds[[2]int{ruleIndex, predIndex}]
}

func (f *fakeRecognizer) Precpred(_ interface{}, precedence int) bool {
	return f.prec >= precedence
}

func TestAndOrShortCircuitNone(t *testing.T) {
	p := NewPredicate(0, 1, false)
	if And(None, p) != p {
		t.Fatalf("And(None, p) should return p unchanged")
	}
	if Or(None, p) != None {
		t.Fatalf("Or(None, p) should short-circuit to None")
	}
}

func TestAndFlattensNested(t *testing.T) {
	p := NewPredicate(0, 1, false)
	q := NewPredicate(0, 2, false)
	r := NewPredicate(0, 3, false)
	left := And(And(p, q), r)
	right := And(p, And(q, r))
	if !Equal(left, right) {
		t.Fatalf("expected flattened ANDs to be structurally equal: %v vs %v", left, right)
	}
}

func TestAndDedupesOperands(t *testing.T) {
	p := NewPredicate(0, 1, false)
	combined := And(p, p)
	if combined != p {
		t.Fatalf("expected And(p,p) to collapse to p, got %v", combined)
	}
}

func TestEvalConjunctionAndDisjunction(t *testing.T) {
	rec := &fakeRecognizer{preds: map[[2]int]bool{{0, 1}: true, {0, 2}: false}}
	p := NewPredicate(0, 1, false)
	q := NewPredicate(0, 2, false)
	if Eval(And(p, q), rec, nil) {
		t.Fatalf("expected AND with a false conjunct to be false")
	}
	if !Eval(Or(p, q), rec, nil) {
		t.Fatalf("expected OR with a true disjunct to be true")
	}
}

func TestEvalPrecedenceAllTrueYieldsNone(t *testing.T) {
	rec := &fakeRecognizer{prec: 5}
	ctx := And(NewPrecedencePredicate(3), NewPrecedencePredicate(4))
	got := EvalPrecedence(ctx, rec, nil)
	if got != None {
		t.Fatalf("expected EvalPrecedence to simplify to None when all thresholds hold, got %v", got)
	}
}

func TestEvalPrecedenceAnyFalseYieldsNil(t *testing.T) {
	rec := &fakeRecognizer{prec: 2}
	ctx := And(NewPrecedencePredicate(3), NewPredicate(0, 1, false))
	got := EvalPrecedence(ctx, rec, nil)
	if got != nil {
		t.Fatalf("expected EvalPrecedence to falsify (nil) when a precedence predicate fails, got %v", got)
	}
}

func TestEvalPrecedenceStripsPrecedenceLeavingUserPredicate(t *testing.T) {
	rec := &fakeRecognizer{prec: 5}
	p := NewPredicate(0, 1, false)
	ctx := And(NewPrecedencePredicate(3), p)
	got := EvalPrecedence(ctx, rec, nil)
	if !Equal(got, p) {
		t.Fatalf("expected precedence predicate to be stripped, leaving %v, got %v", p, got)
	}
}
