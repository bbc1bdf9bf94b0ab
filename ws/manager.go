package ws

import (
	"context"
	"sync"

	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/services"
	"freehunt_backend/internal/services/dto"
)

// Event is the frame exchanged with connected clients, both directions.
type Event struct {
	Action         string               `json:"action"`
	ConversationID string               `json:"conversationId,omitempty"`
	UserID         string               `json:"userId,omitempty"`
	Content        string               `json:"content,omitempty"`
	DocumentID     *string              `json:"documentId,omitempty"`
	Message        *dto.MessageResponse `json:"message,omitempty"`
	Error          string               `json:"error,omitempty"`
}

// Client-initiated actions.
const (
	ActionJoinRoom    = "join_room"
	ActionLeaveRoom   = "leave_room"
	ActionSendMessage = "send_message"
	ActionTyping      = "typing"
)

// Server-initiated actions.
const (
	ActionNewMessage = "new_message"
	ActionUserJoined = "user_joined"
	ActionUserLeft   = "user_left"
	ActionError      = "error"
)

// Manager keeps one room per conversation and fans events out to the
// clients currently joined.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	chat  *services.ChatService
}

func NewManager(chat *services.ChatService) *Manager {
	return &Manager{
		rooms: make(map[string]map[*Client]struct{}),
		chat:  chat,
	}
}

// JoinRoom adds the client to the conversation's room after checking it is
// one of the two participants.
func (m *Manager) JoinRoom(ctx context.Context, client *Client, conversationID string) error {
	ok, err := m.chat.IsParticipant(ctx, conversationID, client.userID)
	if err != nil {
		return err
	}
	if !ok {
		client.trySend(Event{Action: ActionError, ConversationID: conversationID, Error: "access denied"})
		return nil
	}

	m.mu.Lock()
	room, exists := m.rooms[conversationID]
	if !exists {
		room = make(map[*Client]struct{})
		m.rooms[conversationID] = room
	}
	room[client] = struct{}{}
	m.mu.Unlock()

	m.Broadcast(conversationID, Event{
		Action:         ActionUserJoined,
		ConversationID: conversationID,
		UserID:         client.userID,
	}, client)
	return nil
}

func (m *Manager) LeaveRoom(client *Client, conversationID string) {
	m.mu.Lock()
	if room, exists := m.rooms[conversationID]; exists {
		delete(room, client)
		if len(room) == 0 {
			delete(m.rooms, conversationID)
		}
	}
	m.mu.Unlock()

	m.Broadcast(conversationID, Event{
		Action:         ActionUserLeft,
		ConversationID: conversationID,
		UserID:         client.userID,
	}, client)
}

// RemoveClient drops the client from every room it joined; called when the
// connection closes.
func (m *Manager) RemoveClient(client *Client) {
	m.mu.Lock()
	var left []string
	for conversationID, room := range m.rooms {
		if _, ok := room[client]; ok {
			delete(room, client)
			if len(room) == 0 {
				delete(m.rooms, conversationID)
			}
			left = append(left, conversationID)
		}
	}
	m.mu.Unlock()

	for _, conversationID := range left {
		m.Broadcast(conversationID, Event{
			Action:         ActionUserLeft,
			ConversationID: conversationID,
			UserID:         client.userID,
		}, client)
	}
}

// Broadcast sends the event to every client in the room except the sender.
// A client with a full send buffer is disconnected rather than letting it
// stall the room.
func (m *Manager) Broadcast(conversationID string, event Event, exclude *Client) {
	m.mu.RLock()
	room := m.rooms[conversationID]
	var stale []*Client
	for client := range room {
		if client == exclude {
			continue
		}
		if !client.trySend(event) {
			stale = append(stale, client)
		}
	}
	m.mu.RUnlock()

	// Remove before closing the send channel so no other broadcast can
	// still reach the client.
	for _, client := range stale {
		logger.Warn("dropping slow websocket client", "user_id", client.userID)
		m.RemoveClient(client)
		client.close()
	}
}
