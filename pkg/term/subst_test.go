package term

import "testing"

func TestApply(t *testing.T) {
	mulAB := NewApp("mul", NewVar("a"), NewVar("b"))
	cases := []struct {
		in    Term
		subst Substitution
		out   string
	}{
		// the identity substitution leaves any term untouched
		{mulAB, Substitution{}, "mul(a, b)"},
		{NewVar("a"), Substitution{"a": NewApp("e")}, "e()"},
		// unmatched variables pass through
		{mulAB, Substitution{"a": NewApp("inv", NewVar("c"))}, "mul(inv(c), b)"},
		{
			NewApp("mul", NewVar("x"), NewApp("inv", NewVar("x"))),
			Substitution{"x": NewApp("mul", NewVar("a"), NewVar("b"))},
			"mul(mul(a, b), inv(mul(a, b)))",
		},
	}
	for idx, testCase := range cases {
		actual := testCase.subst.Apply(testCase.in).Format().String()
		if actual != testCase.out {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.out, actual)
		}
	}
}

func TestApplyShares(t *testing.T) {
	in := NewApp("mul", NewVar("a"), NewVar("b"))
	out := Substitution{"c": NewApp("e")}.Apply(in)
	if out != Term(in) {
		t.Errorf("expected untouched term to be returned as-is")
	}
}

func TestUnify(t *testing.T) {
	cases := []struct {
		pattern  Term
		concrete Term
		subst    string // "" means expect failure
	}{
		{
			NewApp("mul", NewApp("e"), NewVar("x")),
			NewApp("mul", NewApp("e"), NewApp("inv", NewVar("a"))),
			"{x = inv(a)}",
		},
		{
			NewVar("x"),
			NewApp("mul", NewVar("a"), NewVar("b")),
			"{x = mul(a, b)}",
		},
		{
			NewApp("mul", NewVar("x"), NewVar("x")),
			NewApp("mul", NewApp("e"), NewApp("e")),
			"{x = e()}",
		},
		// same variable, two different bindings
		{
			NewApp("mul", NewVar("x"), NewVar("x")),
			NewApp("mul", NewApp("e"), NewVar("a")),
			"",
		},
		// operation mismatch
		{
			NewApp("inv", NewVar("x")),
			NewApp("e"),
			"",
		},
		// a pattern application never matches a concrete variable
		{
			NewApp("inv", NewVar("x")),
			NewVar("a"),
			"",
		},
	}
	for idx, testCase := range cases {
		subst, err := Unify(testCase.pattern, testCase.concrete)
		if testCase.subst == "" {
			if err == nil {
				t.Errorf("case %d: expected failure; got %s", idx, subst.Format())
				continue
			}
			if _, ok := err.(*UnificationFailed); !ok {
				t.Errorf("case %d: expected UnificationFailed; got %T", idx, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("case %d: expected success; got error %v", idx, err)
			continue
		}
		if actual := subst.Format().String(); actual != testCase.subst {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.subst, actual)
		}
	}
}

func TestMerge(t *testing.T) {
	a := Substitution{"x": NewApp("e")}
	merged, err := a.Merge(Substitution{"y": NewVar("a"), "x": NewApp("e")})
	if err != nil {
		t.Fatalf("expected merge to succeed; got %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("expected 2 bindings; got %d", len(merged))
	}

	_, err = a.Merge(Substitution{"x": NewVar("a")})
	if err == nil {
		t.Fatalf("expected conflicting merge to fail")
	}
}
