package eqd

import (
	clog "github.com/eqlab/eqd/pkg/log"
	"github.com/eqlab/eqd/pkg/parse"
)

// executeWatch answers with the current lemmas, then keeps the channel
// open: every lemma admitted from here on is pushed as a lemma_update.
func (conn *connection) executeWatch(watch *parse.Watch, channel *channel) error {
	session := conn.session
	session.stmtMu.Lock()
	defer session.stmtMu.Unlock()

	channel.writeResult(session.lemmaSummaries())
	session.watchers.addWatcher(channel)
	clog.Println(channel, "watching lemmas")
	return nil
}
