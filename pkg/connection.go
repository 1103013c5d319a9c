package eqd

import (
	"context"

	"github.com/gorilla/websocket"

	clog "github.com/eqlab/eqd/pkg/log"
)

type connectionID int

type connection struct {
	clientConn    *websocket.Conn
	id            connectionID
	session       *Session
	channels      map[channelID]*channel // keyed by statement id (aka channel id)
	nextChannelID channelID
	messages      chan *ChannelMessage
	context       context.Context
}

func newConnection(wsConn *websocket.Conn, session *Session, ID int) *connection {
	ctx := context.WithValue(session.ctx, clog.ConnIDKey, ID)
	conn := &connection{
		clientConn: wsConn,
		id:         connectionID(ID),
		session:    session,
		channels:   make(map[channelID]*channel),
		messages:   make(chan *ChannelMessage),
		context:    ctx,
	}
	go conn.writeMessagesToSocket()
	return conn
}

func (conn *connection) Ctx() context.Context {
	return conn.context
}

func (conn *connection) writeMessagesToSocket() {
	for msg := range conn.messages {
		if err := conn.clientConn.WriteJSON(msg); err != nil {
			clog.Println(conn, "error writing to socket:", err)
			break
		}
	}
}

func (conn *connection) handleStatements() {
	clog.Println(conn, "initiated from", conn.clientConn.RemoteAddr())
	for {
		_, message, readErr := conn.clientConn.ReadMessage()
		if readErr != nil {
			clog.Println(conn, "terminated:", readErr)
			conn.session.removeConn(conn)
			return
		}
		conn.addChannel(string(message))
	}
}

func (conn *connection) addChannel(statement string) {
	channel := newChannel(statement, conn.nextChannelID, conn)
	conn.nextChannelID++
	conn.channels[channel.id] = channel

	channel.handleStatement()
}

func (conn *connection) removeChannel(channel *channel) {
	delete(conn.channels, channel.id)
}
