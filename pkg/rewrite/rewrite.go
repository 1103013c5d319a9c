package rewrite

import (
	"fmt"

	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/term"
)

type UnboundVariable struct {
	Var  string
	Rule string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf(
		"unification failed: no binding for variable %s in the replacement side of %s",
		e.Var, e.Rule,
	)
}

// Apply performs a single rewrite of t as described by step: the
// subterm at step.Pos is unified against the source side of the named
// equation, the step's substitution is merged in as a hint/check, and
// the subterm is replaced with the instantiated target side.
func Apply(reg *algebra.Registry, t term.Term, step Step) (term.Term, error) {
	entry, err := reg.Lookup(step.Rule)
	if err != nil {
		return nil, err
	}
	from, to := entry.Eq.LHS, entry.Eq.RHS
	if step.Dir == RightToLeft {
		from, to = to, from
	}

	target, err := term.At(t, step.Pos)
	if err != nil {
		return nil, err
	}

	matched, err := term.Unify(from, target)
	if err != nil {
		return nil, err
	}
	full, err := matched.Merge(step.Subst)
	if err != nil {
		return nil, err
	}

	// Variables introduced by the target side (present in `to` but not
	// in `from`) can only come from the step's substitution.
	for _, name := range term.Vars(to) {
		if _, ok := full[name]; !ok {
			return nil, &UnboundVariable{Var: name, Rule: step.Rule}
		}
	}

	replacement := full.Apply(to)

	// Rewriting can never change a term's sort when everything is
	// well-formed; checked anyway.
	if err := checkSortPreserved(reg.Signature(), target, replacement); err != nil {
		return nil, err
	}

	return term.Replace(t, step.Pos, replacement)
}

func checkSortPreserved(sig *algebra.Signature, before, after term.Term) error {
	beforeSort, err := sig.TermSort(before)
	if err != nil {
		return err
	}
	afterSort, err := sig.TermSort(after)
	if err != nil {
		return err
	}
	if beforeSort != "" && afterSort != "" && beforeSort != afterSort {
		return &algebra.SortMismatch{Wanted: beforeSort, Got: afterSort, Term: after}
	}
	return nil
}
