package parse

import (
	"bytes"
	"fmt"
	"strings"
)

// Format renders a parsed statement back to canonical source text,
// used for round-trip tests and for echoing statements in logs.
func (n *Statement) Format() string {
	if n.DeclareSort != nil {
		return fmt.Sprintf("sort %s", n.DeclareSort.Name)
	}
	if n.DeclareOp != nil {
		return n.DeclareOp.Format()
	}
	if n.DeclareAxiom != nil {
		return fmt.Sprintf(
			"axiom %s: %s = %s",
			n.DeclareAxiom.Name, n.DeclareAxiom.LHS.Format(), n.DeclareAxiom.RHS.Format(),
		)
	}
	if n.Prove != nil {
		return n.Prove.Format()
	}
	if n.Show != nil {
		return fmt.Sprintf("show %s", n.Show.What())
	}
	if n.Watch != nil {
		return "watch lemmas"
	}
	panic(fmt.Sprintf("unknown statement %v", n))
}

func (n *DeclareOp) Format() string {
	buf := bytes.NewBufferString("op ")
	buf.WriteString(n.Name)
	buf.WriteString("(")
	buf.WriteString(strings.Join(n.Args, ", "))
	buf.WriteString("): ")
	buf.WriteString(n.Result)
	return buf.String()
}

func (n *Term) Format() string {
	if n.App == nil {
		return n.Name
	}
	parts := make([]string, len(n.App.Args))
	for idx, arg := range n.App.Args {
		parts[idx] = arg.Format()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(parts, ", "))
}

func (n *Prove) Format() string {
	buf := bytes.NewBufferString("")
	fmt.Fprintf(buf, "prove %s: %s = %s {\n", n.Name, n.LHS.Format(), n.RHS.Format())
	fmt.Fprintf(buf, "  %s\n", n.Start.Format())
	for _, step := range n.Steps {
		buf.WriteString("  ")
		buf.WriteString(step.Format())
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.String()
}

func (n *ProofStep) Format() string {
	buf := bytes.NewBufferString("")
	fmt.Fprintf(buf, "= %s by %s", n.Result.Format(), n.Rule)
	if n.RL {
		buf.WriteString(" rl")
	}
	if n.At != nil {
		fmt.Fprintf(buf, " at [%s]", strings.Join(n.At.Indices, ", "))
	}
	for idx, binding := range n.With {
		if idx == 0 {
			buf.WriteString(" with ")
		} else {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%s = %s", binding.Var, binding.Val.Format())
	}
	return buf.String()
}
