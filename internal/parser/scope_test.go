package parser

import "testing"

func TestScopeResolvesLeftmostParameterToHighestIndex(t *testing.T) {
	s := newScope().push([]string{"x", "y"})
	index, ok := s.get("x")
	if !ok || index != 1 {
		t.Fatalf("expected leftmost parameter x to resolve to index 1, got %d (ok=%v)", index, ok)
	}
	index, ok = s.get("y")
	if !ok || index != 0 {
		t.Fatalf("expected rightmost parameter y to resolve to index 0, got %d (ok=%v)", index, ok)
	}
}

func TestScopeNestedAccumulatesShift(t *testing.T) {
	outer := newScope().push([]string{"x"})
	inner := outer.push([]string{"y"})
	index, ok := inner.get("x")
	if !ok || index != 1 {
		t.Fatalf("expected outer binding to shift by the inner frame's size, got %d (ok=%v)", index, ok)
	}
	index, ok = inner.get("y")
	if !ok || index != 0 {
		t.Fatalf("expected innermost binding at index 0, got %d (ok=%v)", index, ok)
	}
}

func TestScopeUnboundNameIsNotFound(t *testing.T) {
	s := newScope().push([]string{"x"})
	if _, ok := s.get("z"); ok {
		t.Fatalf("expected an unbound name to not resolve")
	}
}
