package repositories

import (
	"context"

	"freehunt_backend/internal/models/chat"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *chat.Message) error
	ListByConversation(ctx context.Context, conversationID string, limit, offset int) ([]chat.Message, error)
	CountByConversation(ctx context.Context, conversationID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *chat.Message) error {
	return translate(r.db.WithContext(ctx).Create(message).Error)
}

func (r *messageRepository) ListByConversation(ctx context.Context, conversationID string, limit, offset int) ([]chat.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var messages []chat.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, translate(err)
	}
	return messages, nil
}

func (r *messageRepository) CountByConversation(ctx context.Context, conversationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&chat.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
