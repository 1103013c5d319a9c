package term

import (
	"sort"

	pp "github.com/eqlab/eqd/pkg/prettyprint"
)

// A Term is a finite symbolic expression: either a variable or an
// operation applied to argument terms. Terms are immutable; all
// operations on them build new trees and share unchanged subtrees.
type Term interface {
	Format() pp.Doc
	Equal(Term) bool

	collectVars(vars map[string]bool)
}

// Var

type TVar struct {
	name string
}

var _ Term = &TVar{}

func NewVar(name string) *TVar {
	return &TVar{name: name}
}

func (v *TVar) Name() string {
	return v.name
}

func (v *TVar) Format() pp.Doc {
	return pp.Text(v.name)
}

func (v *TVar) Equal(other Term) bool {
	otherVar, ok := other.(*TVar)
	return ok && otherVar.name == v.name
}

func (v *TVar) collectVars(vars map[string]bool) {
	vars[v.name] = true
}

// App

type TApp struct {
	op   string
	args []Term
}

var _ Term = &TApp{}

func NewApp(op string, args ...Term) *TApp {
	return &TApp{op: op, args: args}
}

func (a *TApp) Op() string {
	return a.op
}

func (a *TApp) Args() []Term {
	return a.args
}

// Format renders an application as op(arg, ...). Nullary operations
// keep their parens, so a constant `e()` is never confused with a
// variable `e`.
func (a *TApp) Format() pp.Doc {
	argDocs := make([]pp.Doc, len(a.args))
	for idx, arg := range a.args {
		argDocs[idx] = arg.Format()
	}
	return pp.Seq([]pp.Doc{
		pp.Text(a.op),
		pp.Text("("),
		pp.Join(argDocs, pp.CommaSpace),
		pp.Text(")"),
	})
}

func (a *TApp) Equal(other Term) bool {
	otherApp, ok := other.(*TApp)
	if !ok {
		return false
	}
	if otherApp.op != a.op || len(otherApp.args) != len(a.args) {
		return false
	}
	for idx, arg := range a.args {
		if !arg.Equal(otherApp.args[idx]) {
			return false
		}
	}
	return true
}

func (a *TApp) collectVars(vars map[string]bool) {
	for _, arg := range a.args {
		arg.collectVars(vars)
	}
}

// Vars returns the names of the variables occurring in t, sorted.
func Vars(t Term) []string {
	set := map[string]bool{}
	t.collectVars(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
