package algebra

import (
	"fmt"

	"github.com/eqlab/eqd/pkg/term"
)

type DuplicateSort struct {
	Name Sort
}

func (e *DuplicateSort) Error() string {
	return fmt.Sprintf("sort already declared: %s", e.Name)
}

type DuplicateOperation struct {
	Name string
}

func (e *DuplicateOperation) Error() string {
	return fmt.Sprintf("operation already declared: %s", e.Name)
}

type UnknownSort struct {
	Sort Sort
}

func (e *UnknownSort) Error() string {
	return fmt.Sprintf("unknown sort: %s", e.Sort)
}

type OperationNotFound struct {
	Name string
}

func (e *OperationNotFound) Error() string {
	return fmt.Sprintf("no such operation: %s", e.Name)
}

type WrongArity struct {
	Op  Operation
	Got int
}

func (e *WrongArity) Error() string {
	return fmt.Sprintf("operation %s takes %d arguments; given %d", e.Op.Name, e.Op.Arity(), e.Got)
}

type IllTypedEquation struct {
	Eq    Equation
	Cause error
}

func (e *IllTypedEquation) Error() string {
	return fmt.Sprintf("ill-typed equation %s: %s", e.Eq.Format(), e.Cause.Error())
}

type SortMismatch struct {
	Wanted Sort
	Got    Sort
	Term   term.Term
}

func (e *SortMismatch) Error() string {
	return fmt.Sprintf("sort mismatch: %s has sort %s; wanted %s", e.Term.Format(), e.Got, e.Wanted)
}

type DuplicateEntry struct {
	Name string
}

func (e *DuplicateEntry) Error() string {
	return fmt.Sprintf("axiom or lemma already declared: %s", e.Name)
}

type EntryNotFound struct {
	Name string
}

func (e *EntryNotFound) Error() string {
	return fmt.Sprintf("no such axiom or lemma: %s", e.Name)
}
