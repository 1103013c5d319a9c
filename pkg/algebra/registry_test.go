package algebra

import (
	"testing"

	"github.com/eqlab/eqd/pkg/term"
)

func TestRegistry(t *testing.T) {
	sig := groupSignature(t)
	reg := NewRegistry(sig)

	x := term.NewVar("x")
	leftIdentity := Equation{LHS: term.NewApp("mul", term.NewApp("e"), x), RHS: x}

	if err := reg.DeclareAxiom("left_identity", leftIdentity); err != nil {
		t.Fatal(err)
	}

	// duplicate name
	if err := reg.DeclareAxiom("left_identity", leftIdentity); err == nil {
		t.Fatal("expected duplicate entry error")
	} else if _, ok := err.(*DuplicateEntry); !ok {
		t.Fatalf("expected DuplicateEntry; got %T", err)
	}

	// ill-typed axioms are rejected and not admitted
	bad := Equation{LHS: term.NewApp("div", x, x), RHS: x}
	if err := reg.DeclareAxiom("bad", bad); err == nil {
		t.Fatal("expected ill-typed equation error")
	}
	if reg.Len() != 1 {
		t.Fatalf("failed declaration must leave the registry unchanged; len=%d", reg.Len())
	}

	entry, err := reg.Lookup("left_identity")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Kind != KindAxiom {
		t.Errorf("expected axiom; got %s", entry.Kind)
	}
	if expected := "axiom left_identity: mul(e(), x) = x"; entry.Format().String() != expected {
		t.Errorf("expected %q; got %q", expected, entry.Format().String())
	}

	if err := reg.AddLemma("trivial", Equation{LHS: x, RHS: x}); err != nil {
		t.Fatal(err)
	}
	if got := len(reg.EntriesOfKind(KindLemma)); got != 1 {
		t.Errorf("expected 1 lemma; got %d", got)
	}
	if got := len(reg.EntriesOfKind(KindAxiom)); got != 1 {
		t.Errorf("expected 1 axiom; got %d", got)
	}

	// admission order is preserved
	entries := reg.Entries()
	if entries[0].Name != "left_identity" || entries[1].Name != "trivial" {
		t.Errorf("unexpected order: %s, %s", entries[0].Name, entries[1].Name)
	}
}
