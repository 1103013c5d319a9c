package eqd

import (
	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/parse"
)

type opSummary struct {
	Name   string   `json:"name"`
	Args   []string `json:"args"`
	Result string   `json:"result"`
}

type entrySummary struct {
	Name     string `json:"name"`
	Equation string `json:"equation"`
}

type lemmaSummary struct {
	Name     string `json:"name"`
	Equation string `json:"equation"`
	Steps    int    `json:"steps"`
}

func (conn *connection) executeShow(show *parse.Show, channel *channel) error {
	session := conn.session
	session.stmtMu.Lock()
	defer session.stmtMu.Unlock()

	switch {
	case show.Sorts:
		sorts := []string{}
		for _, sort := range session.registry.Signature().Sorts() {
			sorts = append(sorts, string(sort))
		}
		channel.writeResult(sorts)
	case show.Ops:
		ops := []opSummary{}
		for _, op := range session.registry.Signature().Operations() {
			summary := opSummary{
				Name:   op.Name,
				Args:   []string{},
				Result: string(op.Result),
			}
			for _, arg := range op.Args {
				summary.Args = append(summary.Args, string(arg))
			}
			ops = append(ops, summary)
		}
		channel.writeResult(ops)
	case show.Axioms:
		axioms := []entrySummary{}
		for _, entry := range session.registry.EntriesOfKind(algebra.KindAxiom) {
			axioms = append(axioms, entrySummary{
				Name:     entry.Name,
				Equation: entry.Eq.Format().String(),
			})
		}
		channel.writeResult(axioms)
	case show.Lemmas:
		channel.writeResult(session.lemmaSummaries())
	}
	return nil
}

// caller must hold stmtMu
func (db *Session) lemmaSummaries() []lemmaSummary {
	lemmas := []lemmaSummary{}
	for _, entry := range db.registry.EntriesOfKind(algebra.KindLemma) {
		lemmas = append(lemmas, lemmaSummary{
			Name:     entry.Name,
			Equation: entry.Eq.Format().String(),
			Steps:    db.proofs[entry.Name].Len(),
		})
	}
	return lemmas
}
