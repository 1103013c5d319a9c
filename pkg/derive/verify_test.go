package derive

import (
	"testing"

	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/rewrite"
	"github.com/eqlab/eqd/pkg/term"
)

func v(name string) term.Term {
	return term.NewVar(name)
}

func app(op string, args ...term.Term) term.Term {
	return term.NewApp(op, args...)
}

// the three group axioms over (mul, inv, e)
func groupRegistry(t *testing.T) *algebra.Registry {
	t.Helper()
	sig := algebra.NewSignature()
	if err := sig.DeclareSort("G"); err != nil {
		t.Fatal(err)
	}
	for _, op := range []algebra.Operation{
		{Name: "mul", Args: []algebra.Sort{"G", "G"}, Result: "G"},
		{Name: "inv", Args: []algebra.Sort{"G"}, Result: "G"},
		{Name: "e", Result: "G"},
	} {
		if err := sig.DeclareOperation(op); err != nil {
			t.Fatal(err)
		}
	}
	reg := algebra.NewRegistry(sig)

	axioms := []struct {
		name string
		eq   algebra.Equation
	}{
		{"assoc", algebra.Equation{
			LHS: app("mul", app("mul", v("x"), v("y")), v("z")),
			RHS: app("mul", v("x"), app("mul", v("y"), v("z"))),
		}},
		{"left_identity", algebra.Equation{
			LHS: app("mul", app("e"), v("x")),
			RHS: v("x"),
		}},
		{"left_inverse", algebra.Equation{
			LHS: app("mul", app("inv", v("x")), v("x")),
			RHS: app("e"),
		}},
	}
	for _, axiom := range axioms {
		if err := reg.DeclareAxiom(axiom.name, axiom.eq); err != nil {
			t.Fatal(err)
		}
	}
	return reg
}

func invA() term.Term { return app("inv", v("a")) }

// rightInverseChain proves mul(a, inv(a)) = e() from the axioms alone.
func rightInverseChain() Chain {
	return Chain{
		Start: app("mul", v("a"), invA()),
		Steps: []ChainStep{
			{
				Apply:  rewrite.Step{Rule: "left_identity", Dir: rewrite.RightToLeft},
				Result: app("mul", app("e"), app("mul", v("a"), invA())),
			},
			{
				Apply: rewrite.Step{
					Rule:  "left_inverse",
					Dir:   rewrite.RightToLeft,
					Pos:   term.Position{0},
					Subst: term.Substitution{"x": invA()},
				},
				Result: app("mul",
					app("mul", app("inv", invA()), invA()),
					app("mul", v("a"), invA())),
			},
			{
				Apply: rewrite.Step{Rule: "assoc"},
				Result: app("mul",
					app("inv", invA()),
					app("mul", invA(), app("mul", v("a"), invA()))),
			},
			{
				Apply: rewrite.Step{Rule: "assoc", Dir: rewrite.RightToLeft, Pos: term.Position{1}},
				Result: app("mul",
					app("inv", invA()),
					app("mul", app("mul", invA(), v("a")), invA())),
			},
			{
				Apply:  rewrite.Step{Rule: "left_inverse", Pos: term.Position{1, 0}},
				Result: app("mul", app("inv", invA()), app("mul", app("e"), invA())),
			},
			{
				Apply:  rewrite.Step{Rule: "left_identity", Pos: term.Position{1}},
				Result: app("mul", app("inv", invA()), invA()),
			},
			{
				Apply:  rewrite.Step{Rule: "left_inverse"},
				Result: app("e"),
			},
		},
	}
}

// rightIdentityChain proves mul(a, e()) = a using the right_inverse
// lemma.
func rightIdentityChain() Chain {
	return Chain{
		Start: app("mul", v("a"), app("e")),
		Steps: []ChainStep{
			{
				Apply: rewrite.Step{
					Rule:  "left_inverse",
					Dir:   rewrite.RightToLeft,
					Pos:   term.Position{1},
					Subst: term.Substitution{"x": v("a")},
				},
				Result: app("mul", v("a"), app("mul", invA(), v("a"))),
			},
			{
				Apply:  rewrite.Step{Rule: "assoc", Dir: rewrite.RightToLeft},
				Result: app("mul", app("mul", v("a"), invA()), v("a")),
			},
			{
				Apply:  rewrite.Step{Rule: "right_inverse", Pos: term.Position{0}},
				Result: app("mul", app("e"), v("a")),
			},
			{
				Apply:  rewrite.Step{Rule: "left_identity"},
				Result: v("a"),
			},
		},
	}
}

// TestGroupTheorems replays the full worked example: right inverse
// from the axioms, right identity from right inverse, then uniqueness
// of identity from right identity.
func TestGroupTheorems(t *testing.T) {
	reg := groupRegistry(t)

	rightInverse := algebra.Equation{LHS: app("mul", v("a"), invA()), RHS: app("e")}
	lemma, err := Verify(reg, "right_inverse", rightInverse, rightInverseChain())
	if err != nil {
		t.Fatal(err)
	}
	if lemma.Chain.Len() != 7 {
		t.Errorf("expected 7 steps; got %d", lemma.Chain.Len())
	}

	rightIdentity := algebra.Equation{LHS: app("mul", v("a"), app("e")), RHS: v("a")}
	if _, err := Verify(reg, "right_identity", rightIdentity, rightIdentityChain()); err != nil {
		t.Fatal(err)
	}

	// Uniqueness of identity: any e2 which is a left identity equals e.
	// The hypothesis `mul(e2(), x) = x` enters as an axiom about a
	// fresh constant.
	if err := reg.Signature().DeclareOperation(algebra.Operation{Name: "e2", Result: "G"}); err != nil {
		t.Fatal(err)
	}
	hypothesis := algebra.Equation{LHS: app("mul", app("e2"), v("x")), RHS: v("x")}
	if err := reg.DeclareAxiom("left_identity_e2", hypothesis); err != nil {
		t.Fatal(err)
	}
	uniqueness := algebra.Equation{LHS: app("e2"), RHS: app("e")}
	uniquenessChain := Chain{
		Start: app("e2"),
		Steps: []ChainStep{
			{
				Apply:  rewrite.Step{Rule: "right_identity", Dir: rewrite.RightToLeft},
				Result: app("mul", app("e2"), app("e")),
			},
			{
				Apply:  rewrite.Step{Rule: "left_identity_e2"},
				Result: app("e"),
			},
		},
	}
	if _, err := Verify(reg, "identity_unique", uniqueness, uniquenessChain); err != nil {
		t.Fatal(err)
	}

	// All three are now reusable entries.
	for _, name := range []string{"right_inverse", "right_identity", "identity_unique"} {
		entry, err := reg.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if entry.Kind != algebra.KindLemma {
			t.Errorf("%s: expected lemma; got %s", name, entry.Kind)
		}
	}
}

// TestReproofViaLemma re-proves the right inverse shape for a fresh
// variable in a single step by citing the admitted lemma: once a goal
// is in the registry, later chains only get shorter.
func TestReproofViaLemma(t *testing.T) {
	reg := groupRegistry(t)
	rightInverse := algebra.Equation{LHS: app("mul", v("a"), invA()), RHS: app("e")}
	original, err := Verify(reg, "right_inverse", rightInverse, rightInverseChain())
	if err != nil {
		t.Fatal(err)
	}

	goal := algebra.Equation{
		LHS: app("mul", v("b"), app("inv", v("b"))),
		RHS: app("e"),
	}
	chain := Chain{
		Start: app("mul", v("b"), app("inv", v("b"))),
		Steps: []ChainStep{
			{
				Apply:  rewrite.Step{Rule: "right_inverse"},
				Result: app("e"),
			},
		},
	}
	reproof, err := Verify(reg, "right_inverse_b", goal, chain)
	if err != nil {
		t.Fatal(err)
	}
	if reproof.Chain.Len() > original.Chain.Len() {
		t.Errorf("re-proof should not be longer: %d > %d", reproof.Chain.Len(), original.Chain.Len())
	}
}

func TestVerifyFailures(t *testing.T) {
	rightInverse := algebra.Equation{LHS: app("mul", v("a"), invA()), RHS: app("e")}

	t.Run("wrong instantiation fails unification", func(t *testing.T) {
		reg := groupRegistry(t)
		// left_identity does not apply to mul(a, inv(a)) at the root
		chain := Chain{
			Start: app("mul", v("a"), invA()),
			Steps: []ChainStep{
				{
					Apply:  rewrite.Step{Rule: "left_identity"},
					Result: invA(),
				},
			},
		}
		_, err := Verify(reg, "right_inverse", rightInverse, chain)
		if err == nil {
			t.Fatal("expected failure")
		}
		if _, ok := errorCause(err).(*term.UnificationFailed); !ok {
			t.Fatalf("expected UnificationFailed; got %T: %v", errorCause(err), err)
		}
		if reg.Len() != 3 {
			t.Errorf("failed verify must leave the registry unchanged")
		}
	})

	t.Run("recorded term disagrees with replay", func(t *testing.T) {
		reg := groupRegistry(t)
		chain := rightInverseChain()
		chain.Steps[3].Result = app("e") // skip ahead
		_, err := Verify(reg, "right_inverse", rightInverse, chain)
		mismatch, ok := err.(*StepMismatch)
		if !ok {
			t.Fatalf("expected StepMismatch; got %v", err)
		}
		if mismatch.Index != 3 {
			t.Errorf("expected failure at step 3; got %d", mismatch.Index)
		}
	})

	t.Run("chain proves something else", func(t *testing.T) {
		reg := groupRegistry(t)
		chain := rightInverseChain()
		wrongGoal := algebra.Equation{LHS: app("mul", v("a"), invA()), RHS: v("a")}
		_, err := Verify(reg, "bogus", wrongGoal, chain)
		if _, ok := err.(*GoalNotReached); !ok {
			t.Fatalf("expected GoalNotReached; got %v", err)
		}
	})

	t.Run("goal must be well-formed", func(t *testing.T) {
		reg := groupRegistry(t)
		badGoal := algebra.Equation{LHS: app("div", v("a"), v("a")), RHS: app("e")}
		_, err := Verify(reg, "bad", badGoal, Chain{Start: app("e")})
		if _, ok := err.(*algebra.IllTypedEquation); !ok {
			t.Fatalf("expected IllTypedEquation; got %v", err)
		}
	})

	t.Run("empty chain proves reflexivity only", func(t *testing.T) {
		reg := groupRegistry(t)
		refl := algebra.Equation{LHS: app("e"), RHS: app("e")}
		if _, err := Verify(reg, "refl", refl, Chain{Start: app("e")}); err != nil {
			t.Fatal(err)
		}
		_, err := Verify(reg, "nope", rightInverse, Chain{Start: app("mul", v("a"), invA())})
		if _, ok := err.(*GoalNotReached); !ok {
			t.Fatalf("expected GoalNotReached; got %v", err)
		}
	})
}

// errorCause unwraps pkg/errors wrapping.
func errorCause(err error) error {
	type causer interface {
		Cause() error
	}
	for err != nil {
		cause, ok := err.(causer)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return err
}
