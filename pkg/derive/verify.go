package derive

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/rewrite"
	"github.com/eqlab/eqd/pkg/term"
)

type StepMismatch struct {
	Index    int
	Computed term.Term
	Recorded term.Term
}

func (e *StepMismatch) Error() string {
	return fmt.Sprintf(
		"step %d: rewrite produced %s; chain records %s",
		e.Index, e.Computed.Format(), e.Recorded.Format(),
	)
}

type GoalNotReached struct {
	Goal  algebra.Equation
	Start term.Term
	End   term.Term
}

func (e *GoalNotReached) Error() string {
	return fmt.Sprintf(
		"goal not reached: chain runs from %s to %s; goal is %s",
		e.Start.Format(), e.End.Format(), e.Goal.Format(),
	)
}

// Verify replays every step of the chain against the registry and, if
// the replay reproduces the recorded terms and connects the two sides
// of the goal (in either orientation), admits the goal as a lemma
// named `name`. Comparison is structural term equality at every step,
// which is what keeps the check mechanical and decidable. On any
// failure the registry is left untouched.
//
// A chain can only reference entries admitted before Verify is called,
// and the goal is admitted only after the replay succeeds, so no lemma
// can justify its own derivation.
func Verify(reg *algebra.Registry, name string, goal algebra.Equation, chain Chain) (*Lemma, error) {
	if err := reg.Signature().CheckEquation(goal); err != nil {
		return nil, err
	}
	if _, err := reg.Signature().TermSort(chain.Start); err != nil {
		return nil, err
	}

	cur := chain.Start
	for idx, step := range chain.Steps {
		next, err := rewrite.Apply(reg, cur, step.Apply)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", idx)
		}
		if !next.Equal(step.Result) {
			return nil, &StepMismatch{Index: idx, Computed: next, Recorded: step.Result}
		}
		cur = next
	}

	// A proof may run in either orientation.
	start, end := chain.Start, cur
	forward := start.Equal(goal.LHS) && end.Equal(goal.RHS)
	backward := start.Equal(goal.RHS) && end.Equal(goal.LHS)
	if !forward && !backward {
		return nil, &GoalNotReached{Goal: goal, Start: start, End: end}
	}

	if err := reg.AddLemma(name, goal); err != nil {
		return nil, err
	}
	return &Lemma{Name: name, Eq: goal, Chain: chain}, nil
}
