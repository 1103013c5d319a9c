package derive

import (
	"github.com/eqlab/eqd/pkg/algebra"
	pp "github.com/eqlab/eqd/pkg/prettyprint"
	"github.com/eqlab/eqd/pkg/rewrite"
	"github.com/eqlab/eqd/pkg/term"
)

// A ChainStep records one transition of a derivation: the rewrite that
// justifies it and the term it is claimed to produce. Recording the
// result makes chains independently re-checkable data, not control
// flow.
type ChainStep struct {
	Apply  rewrite.Step
	Result term.Term
}

// A Chain is a calculation: a start term and a sequence of justified
// rewrites. It proves Start = End once every step replays.
type Chain struct {
	Start term.Term
	Steps []ChainStep
}

func (c Chain) End() term.Term {
	if len(c.Steps) == 0 {
		return c.Start
	}
	return c.Steps[len(c.Steps)-1].Result
}

func (c Chain) Len() int {
	return len(c.Steps)
}

// Format renders the chain in calculation style:
//
//	mul(a, inv(a))
//	= mul(e(), mul(a, inv(a)))  by left_identity rl
//	= ...
func (c Chain) Format() pp.Doc {
	docs := []pp.Doc{c.Start.Format()}
	for _, step := range c.Steps {
		docs = append(docs, pp.Newline, pp.Text("= "), step.Result.Format(), pp.Text("  "), step.Apply.Format())
	}
	return pp.Seq(docs)
}

// A Lemma is a verified equation together with the chain that proved
// it. Immutable; its equation is in the registry by the time a Lemma
// value exists.
type Lemma struct {
	Name  string
	Eq    algebra.Equation
	Chain Chain
}
