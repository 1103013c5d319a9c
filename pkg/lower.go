package eqd

import (
	"fmt"
	"strconv"

	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/derive"
	"github.com/eqlab/eqd/pkg/parse"
	"github.com/eqlab/eqd/pkg/rewrite"
	"github.com/eqlab/eqd/pkg/term"
)

// Lowering turns the parse tree into core values. The grammar already
// fixed the variable/application distinction, so term lowering cannot
// fail; step lowering can (bad positions, duplicate bindings).

func lowerTerm(pt *parse.Term) term.Term {
	if pt.App == nil {
		return term.NewVar(pt.Name)
	}
	args := make([]term.Term, len(pt.App.Args))
	for idx, arg := range pt.App.Args {
		args[idx] = lowerTerm(arg)
	}
	return term.NewApp(pt.Name, args...)
}

func lowerEquation(lhs, rhs *parse.Term) algebra.Equation {
	return algebra.Equation{LHS: lowerTerm(lhs), RHS: lowerTerm(rhs)}
}

func lowerStep(ps *parse.ProofStep) (derive.ChainStep, error) {
	step := rewrite.Step{Rule: ps.Rule}
	if ps.RL {
		step.Dir = rewrite.RightToLeft
	}
	if ps.At != nil {
		step.Pos = make(term.Position, len(ps.At.Indices))
		for idx, digits := range ps.At.Indices {
			i, err := strconv.Atoi(digits)
			if err != nil {
				return derive.ChainStep{}, fmt.Errorf("bad position index %q", digits)
			}
			step.Pos[idx] = i
		}
	}
	if len(ps.With) > 0 {
		step.Subst = term.Substitution{}
		for _, binding := range ps.With {
			if _, ok := step.Subst[binding.Var]; ok {
				return derive.ChainStep{}, fmt.Errorf("duplicate binding for %s", binding.Var)
			}
			step.Subst[binding.Var] = lowerTerm(binding.Val)
		}
	}
	return derive.ChainStep{Apply: step, Result: lowerTerm(ps.Result)}, nil
}

func lowerChain(prove *parse.Prove) (derive.Chain, error) {
	chain := derive.Chain{Start: lowerTerm(prove.Start)}
	for _, ps := range prove.Steps {
		step, err := lowerStep(ps)
		if err != nil {
			return derive.Chain{}, err
		}
		chain.Steps = append(chain.Steps, step)
	}
	return chain, nil
}
