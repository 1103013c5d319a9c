package eqd

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/eqlab/eqd/pkg/algebra"
	clog "github.com/eqlab/eqd/pkg/log"
	"github.com/eqlab/eqd/pkg/parse"
)

func (conn *connection) executeDeclareSort(declare *parse.DeclareSort, channel *channel) error {
	session := conn.session
	session.stmtMu.Lock()
	defer session.stmtMu.Unlock()

	if err := session.registry.Signature().DeclareSort(algebra.Sort(declare.Name)); err != nil {
		return &validationError{error: err}
	}
	record := &catalogRecord{Kind: "sort", Sort: declare.Name}
	if err := session.appendCatalog(record); err != nil {
		return errors.Wrap(err, "persisting sort")
	}

	clog.Println(channel, "declared sort", declare.Name)
	channel.writeAckMessage(fmt.Sprintf("SORT %s", declare.Name))
	return nil
}

func (conn *connection) executeDeclareOp(declare *parse.DeclareOp, channel *channel) error {
	session := conn.session
	session.stmtMu.Lock()
	defer session.stmtMu.Unlock()

	op := algebra.Operation{
		Name:   declare.Name,
		Result: algebra.Sort(declare.Result),
	}
	for _, arg := range declare.Args {
		op.Args = append(op.Args, algebra.Sort(arg))
	}
	if err := session.registry.Signature().DeclareOperation(op); err != nil {
		return &validationError{error: err}
	}
	record := &catalogRecord{
		Kind: "op",
		Op: &opRecord{
			Name:   declare.Name,
			Args:   declare.Args,
			Result: declare.Result,
		},
	}
	if err := session.appendCatalog(record); err != nil {
		return errors.Wrap(err, "persisting op")
	}

	clog.Println(channel, "declared op", declare.Name)
	channel.writeAckMessage(fmt.Sprintf("OP %s", declare.Name))
	return nil
}

func (conn *connection) executeDeclareAxiom(declare *parse.DeclareAxiom, channel *channel) error {
	session := conn.session
	session.stmtMu.Lock()
	defer session.stmtMu.Unlock()

	eq := lowerEquation(declare.LHS, declare.RHS)
	if err := session.registry.DeclareAxiom(declare.Name, eq); err != nil {
		return &validationError{error: err}
	}
	record := &catalogRecord{
		Kind:  "axiom",
		Axiom: &eqRecord{Name: declare.Name, Eq: equationToWire(eq)},
	}
	if err := session.appendCatalog(record); err != nil {
		return errors.Wrap(err, "persisting axiom")
	}

	clog.Println(channel, "declared axiom", declare.Name)
	channel.writeAckMessage(fmt.Sprintf("AXIOM %s", declare.Name))
	return nil
}
