package rewrite

import (
	"fmt"

	pp "github.com/eqlab/eqd/pkg/prettyprint"
	"github.com/eqlab/eqd/pkg/term"
)

// Direction says which way an equation is read when rewriting. Every
// equation can be applied both ways; a step picks one.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rl"
	}
	return "lr"
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "lr", "":
		return LeftToRight, nil
	case "rl":
		return RightToLeft, nil
	}
	return LeftToRight, fmt.Errorf("unknown direction: %s", s)
}

// A Step is one justified rewrite: which registry entry to use, which
// way to read it, where in the current term it applies, and bindings
// for any variables the match alone cannot determine.
type Step struct {
	Rule  string
	Dir   Direction
	Pos   term.Position
	Subst term.Substitution
}

func (s Step) Format() pp.Doc {
	docs := []pp.Doc{pp.Text("by "), pp.Text(s.Rule), pp.Textf(" %s", s.Dir)}
	if len(s.Pos) > 0 {
		docs = append(docs, pp.Textf(" at %s", s.Pos))
	}
	if len(s.Subst) > 0 {
		docs = append(docs, pp.Text(" with "), s.Subst.Format())
	}
	return pp.Seq(docs)
}
