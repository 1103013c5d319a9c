package term

import (
	"fmt"
	"sort"

	pp "github.com/eqlab/eqd/pkg/prettyprint"
)

// A Substitution maps variable names to terms.
type Substitution map[string]Term

// Apply replaces every occurrence of a mapped variable in t. It is
// total: variables without a binding pass through unchanged.
func (s Substitution) Apply(t Term) Term {
	switch node := t.(type) {
	case *TVar:
		if bound, ok := s[node.name]; ok {
			return bound
		}
		return node
	case *TApp:
		changed := false
		newArgs := make([]Term, len(node.args))
		for idx, arg := range node.args {
			newArgs[idx] = s.Apply(arg)
			if newArgs[idx] != arg {
				changed = true
			}
		}
		if !changed {
			return node
		}
		return NewApp(node.op, newArgs...)
	}
	panic(fmt.Sprintf("unknown term type %T", t))
}

// Merge combines two substitutions, failing if they disagree on any
// variable.
func (s Substitution) Merge(other Substitution) (Substitution, error) {
	out := Substitution{}
	for name, val := range s {
		out[name] = val
	}
	for name, val := range other {
		if existing, ok := out[name]; ok && !existing.Equal(val) {
			return nil, &UnificationFailed{
				Var:      name,
				Pattern:  existing,
				Concrete: val,
			}
		}
		out[name] = val
	}
	return out, nil
}

func (s Substitution) Format() pp.Doc {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	docs := make([]pp.Doc, len(names))
	for idx, name := range names {
		docs[idx] = pp.Seq([]pp.Doc{pp.Text(name), pp.Text(" = "), s[name].Format()})
	}
	return pp.Seq([]pp.Doc{pp.Text("{"), pp.Join(docs, pp.CommaSpace), pp.Text("}")})
}

type UnificationFailed struct {
	Pattern  Term
	Concrete Term
	Var      string // set when a variable needed two different bindings
}

func (e *UnificationFailed) Error() string {
	if e.Var != "" {
		return fmt.Sprintf(
			"unification failed: %s would bind to both %s and %s",
			e.Var, e.Pattern.Format(), e.Concrete.Format(),
		)
	}
	return fmt.Sprintf(
		"unification failed: %s does not match %s",
		e.Pattern.Format(), e.Concrete.Format(),
	)
}

// Unify finds a substitution making pattern syntactically equal to
// concrete, matching variables greedily left to right. Variables on
// the concrete side are treated as constants: this is one-sided
// matching, which is all equational rewriting needs.
func Unify(pattern, concrete Term) (Substitution, error) {
	subst := Substitution{}
	if err := unify(pattern, concrete, subst); err != nil {
		return nil, err
	}
	return subst, nil
}

func unify(pattern, concrete Term, subst Substitution) error {
	switch p := pattern.(type) {
	case *TVar:
		if existing, ok := subst[p.name]; ok {
			if !existing.Equal(concrete) {
				return &UnificationFailed{Var: p.name, Pattern: existing, Concrete: concrete}
			}
			return nil
		}
		subst[p.name] = concrete
		return nil
	case *TApp:
		app, ok := concrete.(*TApp)
		if !ok || app.op != p.op || len(app.args) != len(p.args) {
			return &UnificationFailed{Pattern: pattern, Concrete: concrete}
		}
		for idx, patArg := range p.args {
			if err := unify(patArg, app.args[idx], subst); err != nil {
				return err
			}
		}
		return nil
	}
	panic(fmt.Sprintf("unknown term type %T", pattern))
}
