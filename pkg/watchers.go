package eqd

// A watcherList tracks the channels that issued a `watch lemmas`
// statement, so lemma admissions can be pushed to them. Keyed by
// connection so a dying connection drops all of its watchers at once.
type watcherList struct {
	watchers    map[connectionID]map[channelID]*channel
	numWatchers int
}

func newWatcherList() *watcherList {
	return &watcherList{
		watchers: map[connectionID]map[channelID]*channel{},
	}
}

func (list *watcherList) addWatcher(ch *channel) {
	connID := ch.connection.id
	watchersForConn := list.watchers[connID]
	if watchersForConn == nil {
		watchersForConn = map[channelID]*channel{}
		list.watchers[connID] = watchersForConn
	}
	if _, exists := watchersForConn[ch.id]; !exists {
		list.numWatchers++
	}
	watchersForConn[ch.id] = ch
}

func (list *watcherList) removeForConn(id connectionID) {
	list.numWatchers -= len(list.watchers[id])
	delete(list.watchers, id)
}

func (list *watcherList) getNumWatchers() int {
	return list.numWatchers
}

func (list *watcherList) sendUpdate(update *LemmaUpdate) {
	for _, watchersForConn := range list.watchers {
		for _, channel := range watchersForConn {
			channel.writeLemmaUpdate(update)
		}
	}
}
