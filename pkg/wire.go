package eqd

import (
	"fmt"

	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/derive"
	"github.com/eqlab/eqd/pkg/rewrite"
	"github.com/eqlab/eqd/pkg/term"
)

// Wire representations of the core types: what goes into bolt and out
// over the websocket. A term is a tagged tree: exactly one of Var / Op
// is set.

type wireTerm struct {
	Var  string      `json:"var,omitempty"`
	Op   string      `json:"op,omitempty"`
	Args []*wireTerm `json:"args,omitempty"`
}

func termToWire(t term.Term) *wireTerm {
	switch node := t.(type) {
	case *term.TVar:
		return &wireTerm{Var: node.Name()}
	case *term.TApp:
		args := make([]*wireTerm, len(node.Args()))
		for idx, arg := range node.Args() {
			args[idx] = termToWire(arg)
		}
		return &wireTerm{Op: node.Op(), Args: args}
	}
	panic(fmt.Sprintf("unknown term type %T", t))
}

func (wt *wireTerm) toTerm() (term.Term, error) {
	if wt == nil {
		return nil, fmt.Errorf("missing term")
	}
	if wt.Var != "" {
		if wt.Op != "" || len(wt.Args) > 0 {
			return nil, fmt.Errorf("term is both a variable and an application: %+v", wt)
		}
		return term.NewVar(wt.Var), nil
	}
	if wt.Op == "" {
		return nil, fmt.Errorf("term is neither a variable nor an application: %+v", wt)
	}
	args := make([]term.Term, len(wt.Args))
	for idx, arg := range wt.Args {
		argTerm, err := arg.toTerm()
		if err != nil {
			return nil, err
		}
		args[idx] = argTerm
	}
	return term.NewApp(wt.Op, args...), nil
}

type wireEquation struct {
	LHS *wireTerm `json:"lhs"`
	RHS *wireTerm `json:"rhs"`
}

func equationToWire(eq algebra.Equation) *wireEquation {
	return &wireEquation{LHS: termToWire(eq.LHS), RHS: termToWire(eq.RHS)}
}

func (we *wireEquation) toEquation() (algebra.Equation, error) {
	lhs, err := we.LHS.toTerm()
	if err != nil {
		return algebra.Equation{}, err
	}
	rhs, err := we.RHS.toTerm()
	if err != nil {
		return algebra.Equation{}, err
	}
	return algebra.Equation{LHS: lhs, RHS: rhs}, nil
}

type wireStep struct {
	Rule  string               `json:"rule"`
	Dir   string               `json:"dir"`
	Pos   []int                `json:"pos,omitempty"`
	Subst map[string]*wireTerm `json:"subst,omitempty"`
}

type wireChainStep struct {
	Step   wireStep  `json:"step"`
	Result *wireTerm `json:"result"`
}

type wireChain struct {
	Start *wireTerm       `json:"start"`
	Steps []wireChainStep `json:"steps"`
}

func chainToWire(chain derive.Chain) *wireChain {
	out := &wireChain{Start: termToWire(chain.Start)}
	for _, step := range chain.Steps {
		wStep := wireStep{
			Rule: step.Apply.Rule,
			Dir:  step.Apply.Dir.String(),
			Pos:  step.Apply.Pos,
		}
		if len(step.Apply.Subst) > 0 {
			wStep.Subst = map[string]*wireTerm{}
			for name, val := range step.Apply.Subst {
				wStep.Subst[name] = termToWire(val)
			}
		}
		out.Steps = append(out.Steps, wireChainStep{
			Step:   wStep,
			Result: termToWire(step.Result),
		})
	}
	return out
}

func (wc *wireChain) toChain() (derive.Chain, error) {
	start, err := wc.Start.toTerm()
	if err != nil {
		return derive.Chain{}, err
	}
	chain := derive.Chain{Start: start}
	for _, wStep := range wc.Steps {
		dir, err := rewrite.ParseDirection(wStep.Step.Dir)
		if err != nil {
			return derive.Chain{}, err
		}
		step := rewrite.Step{
			Rule: wStep.Step.Rule,
			Dir:  dir,
			Pos:  wStep.Step.Pos,
		}
		if len(wStep.Step.Subst) > 0 {
			step.Subst = term.Substitution{}
			for name, val := range wStep.Step.Subst {
				valTerm, err := val.toTerm()
				if err != nil {
					return derive.Chain{}, err
				}
				step.Subst[name] = valTerm
			}
		}
		result, err := wStep.Result.toTerm()
		if err != nil {
			return derive.Chain{}, err
		}
		chain.Steps = append(chain.Steps, derive.ChainStep{Apply: step, Result: result})
	}
	return chain, nil
}

// catalog records: the tagged union persisted to the catalog bucket,
// one record per admitted declaration, in admission order.

type catalogRecord struct {
	Kind  string       `json:"kind"` // sort | op | axiom | lemma
	Sort  string       `json:"sort,omitempty"`
	Op    *opRecord    `json:"op,omitempty"`
	Axiom *eqRecord    `json:"axiom,omitempty"`
	Lemma *lemmaRecord `json:"lemma,omitempty"`
}

type opRecord struct {
	Name   string   `json:"name"`
	Args   []string `json:"args,omitempty"`
	Result string   `json:"result"`
}

type eqRecord struct {
	Name string        `json:"name"`
	Eq   *wireEquation `json:"eq"`
}

type lemmaRecord struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Eq    *wireEquation `json:"eq"`
	Chain *wireChain    `json:"chain"`
}
