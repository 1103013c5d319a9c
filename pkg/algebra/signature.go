package algebra

import (
	pp "github.com/eqlab/eqd/pkg/prettyprint"
	"github.com/eqlab/eqd/pkg/term"
)

// A Sort names a carrier type of the algebra.
type Sort string

// An Operation is a declared symbol with its argument and result
// sorts. Immutable once declared.
type Operation struct {
	Name   string
	Args   []Sort
	Result Sort
}

func (op Operation) Arity() int {
	return len(op.Args)
}

func (op Operation) Format() pp.Doc {
	argDocs := make([]pp.Doc, len(op.Args))
	for idx, arg := range op.Args {
		argDocs[idx] = pp.Text(string(arg))
	}
	return pp.Seq([]pp.Doc{
		pp.Text(op.Name),
		pp.Text("("),
		pp.Join(argDocs, pp.CommaSpace),
		pp.Text("): "),
		pp.Text(string(op.Result)),
	})
}

func (op Operation) sameAs(other Operation) bool {
	if op.Name != other.Name || op.Result != other.Result || len(op.Args) != len(other.Args) {
		return false
	}
	for idx, arg := range op.Args {
		if other.Args[idx] != arg {
			return false
		}
	}
	return true
}

// A Signature is the set of declared sorts and operations defining an
// algebraic structure's shape. Declarations are append-only.
type Signature struct {
	sorts     map[Sort]bool
	sortOrder []Sort
	ops       map[string]Operation
	opOrder   []string
}

func NewSignature() *Signature {
	return &Signature{
		sorts: map[Sort]bool{},
		ops:   map[string]Operation{},
	}
}

func (sig *Signature) DeclareSort(name Sort) error {
	if sig.sorts[name] {
		return &DuplicateSort{Name: name}
	}
	sig.sorts[name] = true
	sig.sortOrder = append(sig.sortOrder, name)
	return nil
}

func (sig *Signature) DeclareOperation(op Operation) error {
	if _, ok := sig.ops[op.Name]; ok {
		return &DuplicateOperation{Name: op.Name}
	}
	for _, arg := range op.Args {
		if !sig.sorts[arg] {
			return &UnknownSort{Sort: arg}
		}
	}
	if !sig.sorts[op.Result] {
		return &UnknownSort{Sort: op.Result}
	}
	sig.ops[op.Name] = op
	sig.opOrder = append(sig.opOrder, op.Name)
	return nil
}

func (sig *Signature) Lookup(name string) (Operation, error) {
	op, ok := sig.ops[name]
	if !ok {
		return Operation{}, &OperationNotFound{Name: name}
	}
	return op, nil
}

// Sorts returns the declared sorts in declaration order.
func (sig *Signature) Sorts() []Sort {
	out := make([]Sort, len(sig.sortOrder))
	copy(out, sig.sortOrder)
	return out
}

// Operations returns the declared operations in declaration order.
func (sig *Signature) Operations() []Operation {
	out := make([]Operation, len(sig.opOrder))
	for idx, name := range sig.opOrder {
		out[idx] = sig.ops[name]
	}
	return out
}

// Union builds a new signature containing the declarations of both.
// Signatures compose by explicit set union: an operation declared on
// both sides must have the identical shape, anything else is a
// conflict. Neither input is modified.
func (sig *Signature) Union(other *Signature) (*Signature, error) {
	out := NewSignature()
	for _, name := range sig.sortOrder {
		out.DeclareSort(name)
	}
	for _, name := range other.sortOrder {
		if !out.sorts[name] {
			out.DeclareSort(name)
		}
	}
	for _, name := range sig.opOrder {
		if err := out.DeclareOperation(sig.ops[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range other.opOrder {
		op := other.ops[name]
		if existing, ok := out.ops[name]; ok {
			if !existing.sameAs(op) {
				return nil, &DuplicateOperation{Name: name}
			}
			continue
		}
		if err := out.DeclareOperation(op); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkTerm infers the sort of t under sig. want constrains the
// expected sort ("" meaning unconstrained); env accumulates variable
// sorts across a whole equation so both sides agree on them.
func (sig *Signature) checkTerm(t term.Term, want Sort, env map[string]Sort) (Sort, error) {
	switch node := t.(type) {
	case *term.TVar:
		if existing, ok := env[node.Name()]; ok {
			if want != "" && existing != want {
				return "", &SortMismatch{Wanted: want, Got: existing, Term: t}
			}
			return existing, nil
		}
		if want != "" {
			env[node.Name()] = want
		}
		return want, nil
	case *term.TApp:
		op, ok := sig.ops[node.Op()]
		if !ok {
			return "", &OperationNotFound{Name: node.Op()}
		}
		if len(node.Args()) != op.Arity() {
			return "", &WrongArity{Op: op, Got: len(node.Args())}
		}
		if want != "" && op.Result != want {
			return "", &SortMismatch{Wanted: want, Got: op.Result, Term: t}
		}
		for idx, arg := range node.Args() {
			if _, err := sig.checkTerm(arg, op.Args[idx], env); err != nil {
				return "", err
			}
		}
		return op.Result, nil
	}
	return "", &OperationNotFound{Name: "?"}
}

// TermSort infers the sort of a closed-enough term: operation
// applications determine it, a bare variable's sort may come out
// unconstrained ("").
func (sig *Signature) TermSort(t term.Term) (Sort, error) {
	return sig.checkTerm(t, "", map[string]Sort{})
}
