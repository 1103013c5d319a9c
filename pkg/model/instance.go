package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/term"
)

// A Value is a concrete carrier element. Values must be comparable
// with == (ints, strings, comparable structs).
type Value interface{}

// An Op is a concrete implementation of a declared operation. It
// receives exactly as many arguments as the operation's arity.
type Op func(args []Value) Value

// An Obligation discharges one axiom for an instance whose carrier
// cannot be enumerated: the caller vouches for the axiom (naming an
// external proof) and supplies a finite sample the checker spot-checks
// the axiom over.
type Obligation struct {
	Justification string
	Sample        []Value
}

// An Instance binds concrete operations to a signature. A finite
// carrier is given by enumeration; an infinite one by leaving Carrier
// nil and supplying an Obligation per axiom.
type Instance struct {
	Ops         map[string]Op
	Carrier     []Value
	Obligations map[string]Obligation
}

type MissingOperation struct {
	Name string
}

func (e *MissingOperation) Error() string {
	return fmt.Sprintf("instance implements no operation named %s", e.Name)
}

type MissingObligation struct {
	Axiom string
}

func (e *MissingObligation) Error() string {
	return fmt.Sprintf("infinite carrier: axiom %s needs a proof obligation", e.Axiom)
}

type EmptySample struct {
	Axiom string
}

func (e *EmptySample) Error() string {
	return fmt.Sprintf("obligation for axiom %s has an empty sample", e.Axiom)
}

type AxiomViolation struct {
	Axiom   string
	Eq      algebra.Equation
	Witness map[string]Value
}

func (e *AxiomViolation) Error() string {
	names := make([]string, 0, len(e.Witness))
	for name := range e.Witness {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for idx, name := range names {
		parts[idx] = fmt.Sprintf("%s=%v", name, e.Witness[name])
	}
	return fmt.Sprintf(
		"axiom %s (%s) violated at %s",
		e.Axiom, e.Eq.Format(), strings.Join(parts, ", "),
	)
}

// Check verifies that the instance is a model of the registry's
// axioms. Finite carriers are checked exhaustively over all variable
// assignments; infinite ones via per-axiom obligations, whose samples
// are spot-checked the same way. The first failing assignment is
// reported as an AxiomViolation.
func Check(reg *algebra.Registry, inst Instance) error {
	sig := reg.Signature()
	for _, op := range sig.Operations() {
		if inst.Ops[op.Name] == nil {
			return &MissingOperation{Name: op.Name}
		}
	}

	for _, entry := range reg.EntriesOfKind(algebra.KindAxiom) {
		domain := inst.Carrier
		if domain == nil {
			obligation, ok := inst.Obligations[entry.Name]
			if !ok {
				return &MissingObligation{Axiom: entry.Name}
			}
			if len(obligation.Sample) == 0 {
				return &EmptySample{Axiom: entry.Name}
			}
			domain = obligation.Sample
		}
		if err := checkAxiom(inst, entry, domain); err != nil {
			return err
		}
	}
	return nil
}

func checkAxiom(inst Instance, entry *algebra.Entry, domain []Value) error {
	vars := entry.Eq.Vars()
	assignment := map[string]Value{}
	return enumerate(vars, domain, assignment, func() error {
		lhs := eval(inst, entry.Eq.LHS, assignment)
		rhs := eval(inst, entry.Eq.RHS, assignment)
		if lhs != rhs {
			witness := map[string]Value{}
			for name, val := range assignment {
				witness[name] = val
			}
			return &AxiomViolation{Axiom: entry.Name, Eq: entry.Eq, Witness: witness}
		}
		return nil
	})
}

// enumerate walks every assignment of domain values to vars, invoking
// check for each; stops at the first error.
func enumerate(vars []string, domain []Value, assignment map[string]Value, check func() error) error {
	if len(vars) == 0 {
		return check()
	}
	for _, val := range domain {
		assignment[vars[0]] = val
		if err := enumerate(vars[1:], domain, assignment, check); err != nil {
			return err
		}
	}
	delete(assignment, vars[0])
	return nil
}

func eval(inst Instance, t term.Term, assignment map[string]Value) Value {
	switch node := t.(type) {
	case *term.TVar:
		return assignment[node.Name()]
	case *term.TApp:
		args := make([]Value, len(node.Args()))
		for idx, arg := range node.Args() {
			args[idx] = eval(inst, arg, assignment)
		}
		return inst.Ops[node.Op()](args)
	}
	panic(fmt.Sprintf("unknown term type %T", t))
}
