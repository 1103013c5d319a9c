package algebra

import (
	pp "github.com/eqlab/eqd/pkg/prettyprint"
	"github.com/eqlab/eqd/pkg/term"
)

// An Equation is an ordered pair of terms of the same sort, implicitly
// universally quantified over the variables occurring on either side.
type Equation struct {
	LHS term.Term
	RHS term.Term
}

func (eq Equation) Format() pp.Doc {
	return pp.Seq([]pp.Doc{eq.LHS.Format(), pp.Text(" = "), eq.RHS.Format()})
}

// Vars returns the names of the variables occurring on either side,
// sorted.
func (eq Equation) Vars() []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range term.Vars(eq.LHS) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range term.Vars(eq.RHS) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// CheckEquation checks that both sides are well-formed under sig and
// have the same sort, with variable sorts consistent across the two
// sides.
func (sig *Signature) CheckEquation(eq Equation) error {
	env := map[string]Sort{}
	lhsSort, err := sig.checkTerm(eq.LHS, "", env)
	if err != nil {
		if mismatch, ok := err.(*SortMismatch); ok {
			return mismatch
		}
		return &IllTypedEquation{Eq: eq, Cause: err}
	}
	rhsSort, err := sig.checkTerm(eq.RHS, lhsSort, env)
	if err != nil {
		if mismatch, ok := err.(*SortMismatch); ok {
			return mismatch
		}
		return &IllTypedEquation{Eq: eq, Cause: err}
	}
	if lhsSort != "" && rhsSort != "" && lhsSort != rhsSort {
		return &SortMismatch{Wanted: lhsSort, Got: rhsSort, Term: eq.RHS}
	}
	return nil
}
