package eqd

import (
	"errors"
	"log"

	"github.com/gorilla/websocket"
)

type Client struct {
	WebSocketConn    *websocket.Conn
	URL              string
	NextStatementID  int
	StatementsToSend chan *StatementRequest
	IncomingMessages chan *ChannelMessage
	Channels         map[int]*ClientChannel
}

type StatementRequest struct {
	Statement  string
	ResultChan chan *ClientChannel
}

func NewClient(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	client := &Client{
		WebSocketConn:    conn,
		URL:              url,
		StatementsToSend: make(chan *StatementRequest),
		IncomingMessages: make(chan *ChannelMessage),
		Channels:         map[int]*ClientChannel{},
	}
	go client.handleStatements()
	go client.handleIncoming()
	return client, nil
}

func (conn *Client) Close() error {
	return conn.WebSocketConn.Close()
}

func (conn *Client) handleStatements() {
	for {
		select {
		case request := <-conn.StatementsToSend:
			channel := &ClientChannel{
				Conn:        conn,
				StatementID: conn.NextStatementID,
				Statement:   request.Statement,
				Updates:     make(chan *MessageToClient),
			}
			conn.NextStatementID++
			conn.Channels[channel.StatementID] = channel
			request.ResultChan <- channel
			conn.WebSocketConn.WriteMessage(websocket.TextMessage, []byte(request.Statement))

		case incomingMsg := <-conn.IncomingMessages:
			channel := conn.Channels[incomingMsg.StatementID]
			channel.Updates <- incomingMsg.Message
		}
	}
}

func (conn *Client) handleIncoming() {
	defer conn.WebSocketConn.Close()
	for {
		parsedMessage := &ChannelMessage{}
		if err := conn.WebSocketConn.ReadJSON(&parsedMessage); err != nil {
			log.Println("error in handleIncoming:", err)
			return
		}
		conn.IncomingMessages <- parsedMessage
	}
}

type ClientChannel struct {
	Conn        *Client
	StatementID int
	Statement   string
	Updates     chan *MessageToClient
}

func (conn *Client) Statement(statement string) *ClientChannel {
	resultChan := make(chan *ClientChannel)
	conn.StatementsToSend <- &StatementRequest{
		ResultChan: resultChan,
		Statement:  statement,
	}
	return <-resultChan
}

// Exec runs a statement which answers with an ack: a declaration or a
// prove.
func (conn *Client) Exec(statement string) (string, error) {
	channel := conn.Statement(statement)
	update := <-channel.Updates
	switch update.Type {
	case ErrorMessage:
		return "", errors.New(*update.ErrorMessage)
	case AckMessage:
		return *update.AckMessage, nil
	}
	return "", errors.New("exec result neither error nor ack")
}

// Query runs a show statement and returns its result.
func (conn *Client) Query(statement string) (interface{}, error) {
	channel := conn.Statement(statement)
	update := <-channel.Updates
	switch update.Type {
	case ErrorMessage:
		return nil, errors.New(*update.ErrorMessage)
	case ResultMessage:
		return update.ResultMessage, nil
	}
	return nil, errors.New("query result neither error nor result")
}

// Watch runs a watch statement, returning the initial result and the
// channel on which updates arrive.
func (conn *Client) Watch(statement string) (interface{}, *ClientChannel, error) {
	channel := conn.Statement(statement)
	update := <-channel.Updates
	switch update.Type {
	case ErrorMessage:
		return nil, nil, errors.New(*update.ErrorMessage)
	case ResultMessage:
		return update.ResultMessage, channel, nil
	}
	return nil, nil, errors.New("watch result neither error nor result")
}
