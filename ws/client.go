package ws

import (
	"context"
	"sync"
	"time"

	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/services/dto"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	sendBufferSize = 64
)

// Client is one authenticated websocket connection.
type Client struct {
	conn    *websocket.Conn
	manager *Manager
	send    chan Event
	userID  string
	role    models.UserRole

	mu     sync.Mutex
	closed bool
}

func NewClient(conn *websocket.Conn, manager *Manager, userID string, role models.UserRole) *Client {
	return &Client{
		conn:    conn,
		manager: manager,
		send:    make(chan Event, sendBufferSize),
		userID:  userID,
		role:    role,
	}
}

// Run starts the read and write pumps and blocks until the connection dies.
func (c *Client) Run(ctx context.Context) {
	go c.writePump()
	c.readPump(ctx)
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.manager.RemoveClient(c)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var event Event
		if err := c.conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read error", "user_id", c.userID, "error", err)
			}
			return
		}
		c.handleEvent(ctx, event)
	}
}

func (c *Client) handleEvent(ctx context.Context, event Event) {
	switch event.Action {
	case ActionJoinRoom:
		if err := c.manager.JoinRoom(ctx, c, event.ConversationID); err != nil {
			logger.Warn("join room failed", "user_id", c.userID, "error", err)
			c.trySend(Event{Action: ActionError, ConversationID: event.ConversationID, Error: "could not join room"})
		}

	case ActionLeaveRoom:
		c.manager.LeaveRoom(c, event.ConversationID)

	case ActionSendMessage:
		message, err := c.manager.chat.SendMessage(ctx, event.ConversationID, c.userID, c.role, dto.SendMessageRequest{
			Content:    event.Content,
			DocumentID: event.DocumentID,
		})
		if err != nil {
			c.trySend(Event{Action: ActionError, ConversationID: event.ConversationID, Error: "could not send message"})
			return
		}
		out := Event{
			Action:         ActionNewMessage,
			ConversationID: event.ConversationID,
			UserID:         c.userID,
			Message:        message,
		}
		c.trySend(out)
		c.manager.Broadcast(event.ConversationID, out, c)

	case ActionTyping:
		c.manager.Broadcast(event.ConversationID, Event{
			Action:         ActionTyping,
			ConversationID: event.ConversationID,
			UserID:         c.userID,
		}, c)

	default:
		c.trySend(Event{Action: ActionError, Error: "unknown action"})
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// trySend queues an event without blocking; false means the buffer is full
// or the client is already closed.
func (c *Client) trySend(event Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
