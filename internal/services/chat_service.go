package services

import (
	"context"

	"freehunt_backend/internal/auth"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/models/chat"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"
)

type ChatService struct {
	repos *repositories.Repos
}

func NewChatService(repos *repositories.Repos) *ChatService {
	return &ChatService{repos: repos}
}

func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]dto.ConversationResponse, error) {
	conversations, err := s.repos.Conversation.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewConversationResponses(conversations), nil
}

func (s *ChatService) GetConversation(ctx context.Context, conversationID, userID string, role models.UserRole) (*dto.ConversationResponse, error) {
	conversation, err := s.authorizedConversation(ctx, conversationID, userID, role)
	if err != nil {
		return nil, err
	}
	resp := dto.NewConversationResponse(conversation)
	return &resp, nil
}

func (s *ChatService) ListMessages(ctx context.Context, conversationID, userID string, role models.UserRole, limit, offset int) ([]dto.MessageResponse, error) {
	if _, err := s.authorizedConversation(ctx, conversationID, userID, role); err != nil {
		return nil, err
	}
	messages, err := s.repos.Message.ListByConversation(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMessageResponses(messages), nil
}

// SendMessage persists a message from a participant. The websocket layer
// calls this too, so every delivery path shares the same access check.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, senderID string, role models.UserRole, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	conversation, err := s.authorizedConversation(ctx, conversationID, senderID, role)
	if err != nil {
		return nil, err
	}

	receiverID := conversation.OtherParticipant(senderID)
	if receiverID == "" {
		// Admin sending into someone else's conversation is not a thing.
		return nil, apperrors.ErrConversationAccessDenied
	}

	if req.DocumentID != nil {
		if _, err := s.repos.Document.GetByID(ctx, *req.DocumentID); err != nil {
			if apperrors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	message := &chat.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        req.Content,
		DocumentID:     req.DocumentID,
	}
	if err := s.repos.Message.Create(ctx, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// IsParticipant lets the websocket manager check room membership without
// pulling the whole conversation into the socket layer.
func (s *ChatService) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	conversation, err := s.repos.Conversation.GetByID(ctx, conversationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return conversation.HasParticipant(userID), nil
}

func (s *ChatService) authorizedConversation(ctx context.Context, conversationID, userID string, role models.UserRole) (*chat.Conversation, error) {
	conversation, err := s.repos.Conversation.GetByID(ctx, conversationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CanAccess(userID, role, auth.ConversationSubject(conversation)) {
		return nil, apperrors.ErrConversationAccessDenied
	}
	return conversation, nil
}
