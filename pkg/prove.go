package eqd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/eqlab/eqd/pkg/derive"
	clog "github.com/eqlab/eqd/pkg/log"
	"github.com/eqlab/eqd/pkg/parse"
)

func (conn *connection) executeProve(prove *parse.Prove, channel *channel) error {
	startTime := time.Now()
	session := conn.session
	session.stmtMu.Lock()
	defer session.stmtMu.Unlock()

	goal := lowerEquation(prove.LHS, prove.RHS)
	chain, err := lowerChain(prove)
	if err != nil {
		return &validationError{error: err}
	}

	// Verify replays the whole chain against the registry; the lemma
	// is admitted only if every step checks out.
	lemma, err := derive.Verify(session.registry, prove.Name, goal, chain)
	if err != nil {
		return &derivationError{error: err}
	}

	record := &catalogRecord{
		Kind: "lemma",
		Lemma: &lemmaRecord{
			ID:    uuid.New().String(),
			Name:  lemma.Name,
			Eq:    equationToWire(lemma.Eq),
			Chain: chainToWire(chain),
		},
	}
	if err := session.appendCatalog(record); err != nil {
		return errors.Wrap(err, "persisting lemma")
	}
	session.proofs[lemma.Name] = chain

	session.watchers.sendUpdate(&LemmaUpdate{
		Name:     lemma.Name,
		Equation: lemma.Eq.Format().String(),
		Steps:    chain.Len(),
	})

	clog.Println(channel, "proved lemma", lemma.Name, "in", chain.Len(), "steps")
	channel.writeAckMessage(fmt.Sprintf("PROVE %s (%d steps)", lemma.Name, chain.Len()))

	session.metrics.verifyLatency.Observe(float64(time.Since(startTime).Nanoseconds()))
	return nil
}
