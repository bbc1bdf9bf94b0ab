package dto

import (
	"time"

	"freehunt_backend/internal/models/chat"
)

type SendMessageRequest struct {
	Content    string  `json:"content" validate:"required,max=5000"`
	DocumentID *string `json:"documentId" validate:"omitempty,uuid"`
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	ReceiverID     string    `json:"receiverId"`
	Content        string    `json:"content"`
	DocumentID     *string   `json:"documentId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewMessageResponse(message *chat.Message) MessageResponse {
	return MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		ReceiverID:     message.ReceiverID,
		Content:        message.Content,
		DocumentID:     message.DocumentID,
		CreatedAt:      message.CreatedAt,
	}
}

func NewMessageResponses(messages []chat.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, NewMessageResponse(&messages[i]))
	}
	return out
}

type ConversationResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	ProjectID  *string   `json:"projectId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewConversationResponse(conversation *chat.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:         conversation.ID,
		SenderID:   conversation.SenderID,
		ReceiverID: conversation.ReceiverID,
		ProjectID:  conversation.ProjectID,
		CreatedAt:  conversation.CreatedAt,
		UpdatedAt:  conversation.UpdatedAt,
	}
}

func NewConversationResponses(conversations []chat.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(conversations))
	for i := range conversations {
		out = append(out, NewConversationResponse(&conversations[i]))
	}
	return out
}
