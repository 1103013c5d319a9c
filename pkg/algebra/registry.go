package algebra

import (
	"sync"

	pp "github.com/eqlab/eqd/pkg/prettyprint"
)

type EntryKind int

const (
	KindAxiom EntryKind = iota
	KindLemma
)

func (k EntryKind) String() string {
	switch k {
	case KindAxiom:
		return "axiom"
	case KindLemma:
		return "lemma"
	}
	return "unknown"
}

// An Entry is a named equation admitted to the registry: an axiom
// (assumed) or a lemma (proven). Entries are immutable once admitted;
// a lemma is exactly as usable as an axiom afterwards.
type Entry struct {
	Name string
	Kind EntryKind
	Eq   Equation
}

func (e *Entry) Format() pp.Doc {
	return pp.Seq([]pp.Doc{
		pp.Text(e.Kind.String()),
		pp.Text(" "),
		pp.Text(e.Name),
		pp.Text(": "),
		e.Eq.Format(),
	})
}

// A Registry holds the axioms and lemmas of a session over one
// signature. It is append-only: nothing is ever removed or changed,
// which is what keeps previously verified derivations valid. Reads may
// run concurrently with one writer.
type Registry struct {
	sig *Signature

	mu struct {
		sync.RWMutex
		entries map[string]*Entry
		order   []string
	}
}

func NewRegistry(sig *Signature) *Registry {
	reg := &Registry{sig: sig}
	reg.mu.entries = map[string]*Entry{}
	return reg
}

func (reg *Registry) Signature() *Signature {
	return reg.sig
}

// DeclareAxiom admits an equation as a foundational assumption.
func (reg *Registry) DeclareAxiom(name string, eq Equation) error {
	return reg.add(&Entry{Name: name, Kind: KindAxiom, Eq: eq})
}

// AddLemma admits a proven equation. Only the derivation chain
// verifier should call this, after a successful replay.
func (reg *Registry) AddLemma(name string, eq Equation) error {
	return reg.add(&Entry{Name: name, Kind: KindLemma, Eq: eq})
}

func (reg *Registry) add(entry *Entry) error {
	if err := reg.sig.CheckEquation(entry.Eq); err != nil {
		return err
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.mu.entries[entry.Name]; ok {
		return &DuplicateEntry{Name: entry.Name}
	}
	reg.mu.entries[entry.Name] = entry
	reg.mu.order = append(reg.mu.order, entry.Name)
	return nil
}

func (reg *Registry) Lookup(name string) (*Entry, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	entry, ok := reg.mu.entries[name]
	if !ok {
		return nil, &EntryNotFound{Name: name}
	}
	return entry, nil
}

// Entries returns a snapshot of all entries in admission order.
func (reg *Registry) Entries() []*Entry {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*Entry, len(reg.mu.order))
	for idx, name := range reg.mu.order {
		out[idx] = reg.mu.entries[name]
	}
	return out
}

// EntriesOfKind returns a snapshot of axioms or lemmas in admission
// order.
func (reg *Registry) EntriesOfKind(kind EntryKind) []*Entry {
	var out []*Entry
	for _, entry := range reg.Entries() {
		if entry.Kind == kind {
			out = append(out, entry)
		}
	}
	return out
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.mu.order)
}
