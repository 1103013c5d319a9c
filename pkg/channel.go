package eqd

import (
	"context"
	"fmt"
	"time"

	clog "github.com/eqlab/eqd/pkg/log"
	"github.com/eqlab/eqd/pkg/parse"
)

type channelID int

// A channel is one statement's lifetime within a connection. Most
// statements answer once and are done; a watch stays open and keeps
// receiving lemma updates.
type channel struct {
	connection   *connection
	rawStatement string
	id           channelID

	context context.Context
}

func (channel *channel) Ctx() context.Context {
	return channel.context
}

func newChannel(rawStatement string, id channelID, conn *connection) *channel {
	ctx := context.WithValue(conn.Ctx(), clog.StmtIDKey, int(id))
	return &channel{
		connection:   conn,
		rawStatement: rawStatement,
		id:           id,
		context:      ctx,
	}
}

func (channel *channel) handleStatement() {
	startTime := time.Now()
	done, err := channel.parseAndRun()
	if err != nil {
		clog.Printf(channel, "%s", err.Error())
		channel.writeErrorMessage(err)
	}
	if done {
		channel.connection.removeChannel(channel)
	}
	session := channel.connection.session
	session.metrics.statementLatency.Observe(float64(time.Since(startTime).Nanoseconds()))
}

// parseAndRun returns whether this statement is done (false only for
// watches, which keep their channel open) and an error if there was
// one.
func (channel *channel) parseAndRun() (bool, error) {
	statement, err := parse.Parse(channel.rawStatement)
	if err != nil {
		return true, &parseError{error: err}
	}
	return channel.run(statement)
}

func (channel *channel) run(statement *parse.Statement) (bool, error) {
	conn := channel.connection
	if statement.DeclareSort != nil {
		return true, conn.executeDeclareSort(statement.DeclareSort, channel)
	}
	if statement.DeclareOp != nil {
		return true, conn.executeDeclareOp(statement.DeclareOp, channel)
	}
	if statement.DeclareAxiom != nil {
		return true, conn.executeDeclareAxiom(statement.DeclareAxiom, channel)
	}
	if statement.Prove != nil {
		return true, conn.executeProve(statement.Prove, channel)
	}
	if statement.Show != nil {
		return true, conn.executeShow(statement.Show, channel)
	}
	if statement.Watch != nil {
		return false, conn.executeWatch(statement.Watch, channel)
	}
	panic(fmt.Sprintf("unknown statement type %v", statement))
}

type ChannelMessage struct {
	StatementID int
	Message     *MessageToClient
}

type MessageToClientType int

const (
	ErrorMessage MessageToClientType = iota
	AckMessage
	ResultMessage
	LemmaUpdateMessage
)

func (m MessageToClientType) String() string {
	switch m {
	case ErrorMessage:
		return "error"
	case AckMessage:
		return "ack"
	case ResultMessage:
		return "result"
	case LemmaUpdateMessage:
		return "lemma_update"
	}
	panic(fmt.Errorf("unknown type %d", int(m)))
}

func (m MessageToClientType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MessageToClientType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*m = ErrorMessage
	case "ack":
		*m = AckMessage
	case "result":
		*m = ResultMessage
	case "lemma_update":
		*m = LemmaUpdateMessage
	default:
		return fmt.Errorf("unknown message type %q", string(text))
	}
	return nil
}

type MessageToClient struct {
	Type         MessageToClientType `json:"type"`
	ErrorMessage *string             `json:"error,omitempty"`
	AckMessage   *string             `json:"ack,omitempty"`
	// data
	ResultMessage      interface{}  `json:"result,omitempty"`
	LemmaUpdateMessage *LemmaUpdate `json:"lemma_update,omitempty"`
}

// A LemmaUpdate is pushed to watching channels when a lemma is
// admitted to the registry.
type LemmaUpdate struct {
	Name     string `json:"name"`
	Equation string `json:"equation"`
	Steps    int    `json:"steps"`
}

func (channel *channel) writeErrorMessage(err error) {
	errStr := err.Error()
	channel.writeMessage(&MessageToClient{
		Type:         ErrorMessage,
		ErrorMessage: &errStr,
	})
}

func (channel *channel) writeAckMessage(message string) {
	channel.writeMessage(&MessageToClient{
		Type:       AckMessage,
		AckMessage: &message,
	})
}

func (channel *channel) writeResult(result interface{}) {
	channel.writeMessage(&MessageToClient{
		Type:          ResultMessage,
		ResultMessage: result,
	})
}

func (channel *channel) writeLemmaUpdate(update *LemmaUpdate) {
	channel.writeMessage(&MessageToClient{
		Type:               LemmaUpdateMessage,
		LemmaUpdateMessage: update,
	})
}

func (channel *channel) writeMessage(message *MessageToClient) {
	channel.connection.messages <- &ChannelMessage{
		StatementID: int(channel.id),
		Message:     message,
	}
}
