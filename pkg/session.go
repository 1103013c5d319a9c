package eqd

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/boltdb/bolt"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/eqlab/eqd/pkg/algebra"
	"github.com/eqlab/eqd/pkg/derive"
)

var catalogBucket = []byte("catalog")

// A Session is one persistent derivation workspace: a signature, its
// axioms and proven lemmas, and the chains that proved them, backed by
// a bolt file. Statement execution is serialized by stmtMu (single
// writer); registry reads are safe concurrently.
type Session struct {
	registry *algebra.Registry
	proofs   map[string]derive.Chain
	boltDB   *bolt.DB

	connections      map[connectionID]*connection
	nextConnectionID int
	watchers         *watcherList

	stmtMu sync.Mutex

	ctx     context.Context
	metrics *metrics
}

func NewSession(dataFile string) (*Session, error) {
	boltDB, openErr := bolt.Open(dataFile, 0600, nil)
	if openErr != nil {
		return nil, openErr
	}

	session := &Session{
		registry:    algebra.NewRegistry(algebra.NewSignature()),
		proofs:      map[string]derive.Chain{},
		boltDB:      boltDB,
		connections: map[connectionID]*connection{},
		watchers:    newWatcherList(),
		ctx:         context.Background(),
	}
	if err := session.ensureCatalog(); err != nil {
		boltDB.Close()
		return nil, err
	}
	if err := session.loadCatalog(); err != nil {
		boltDB.Close()
		return nil, err
	}

	session.metrics = newMetrics(session)

	return session, nil
}

func (db *Session) Registry() *algebra.Registry {
	return db.registry
}

// Proof returns the chain that proved a lemma, if the name denotes
// one.
func (db *Session) Proof(name string) (derive.Chain, bool) {
	db.stmtMu.Lock()
	defer db.stmtMu.Unlock()
	chain, ok := db.proofs[name]
	return chain, ok
}

// addConnection hands a websocket to the session, which serves
// statements on it until it closes.
func (db *Session) addConnection(wsConn *websocket.Conn) {
	conn := newConnection(wsConn, db, db.nextConnectionID)
	db.nextConnectionID++
	db.connections[conn.id] = conn
	conn.handleStatements()
}

func (db *Session) removeConn(conn *connection) {
	delete(db.connections, conn.id)
	db.watchers.removeForConn(conn.id)
}

func (db *Session) Close() error {
	return db.boltDB.Close()
}

func (db *Session) ensureCatalog() error {
	return db.boltDB.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(catalogBucket)
		return err
	})
}

// loadCatalog replays the persisted catalog in admission order.
// Lemma chains are re-verified, not trusted: a store whose proofs no
// longer replay is rejected at open time.
func (db *Session) loadCatalog() error {
	return db.boltDB.View(func(tx *bolt.Tx) error {
		return tx.Bucket(catalogBucket).ForEach(func(_, value []byte) error {
			record := &catalogRecord{}
			if err := json.Unmarshal(value, record); err != nil {
				return errors.Wrap(err, "decoding catalog record")
			}
			return db.replayRecord(record)
		})
	})
}

func (db *Session) replayRecord(record *catalogRecord) error {
	sig := db.registry.Signature()
	switch record.Kind {
	case "sort":
		return sig.DeclareSort(algebra.Sort(record.Sort))
	case "op":
		op := algebra.Operation{
			Name:   record.Op.Name,
			Result: algebra.Sort(record.Op.Result),
		}
		for _, arg := range record.Op.Args {
			op.Args = append(op.Args, algebra.Sort(arg))
		}
		return sig.DeclareOperation(op)
	case "axiom":
		eq, err := record.Axiom.Eq.toEquation()
		if err != nil {
			return err
		}
		return db.registry.DeclareAxiom(record.Axiom.Name, eq)
	case "lemma":
		eq, err := record.Lemma.Eq.toEquation()
		if err != nil {
			return err
		}
		chain, err := record.Lemma.Chain.toChain()
		if err != nil {
			return err
		}
		if _, err := derive.Verify(db.registry, record.Lemma.Name, eq, chain); err != nil {
			return errors.Wrapf(err, "replaying lemma %s", record.Lemma.Name)
		}
		db.proofs[record.Lemma.Name] = chain
		return nil
	}
	return errors.Errorf("unknown catalog record kind: %s", record.Kind)
}

// appendCatalog persists one record at the next catalog sequence
// number.
func (db *Session) appendCatalog(record *catalogRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return db.boltDB.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(catalogBucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return bucket.Put(key, value)
	})
}
