package repositories

import (
	"context"

	"freehunt_backend/internal/models/chat"

	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *chat.Conversation) error
	GetByID(ctx context.Context, id string) (*chat.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]chat.Conversation, error)
	SetProjectID(ctx context.Context, conversationID, projectID string) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *chat.Conversation) error {
	return translate(r.db.WithContext(ctx).Create(conversation).Error)
}

func (r *conversationRepository) GetByID(ctx context.Context, id string) (*chat.Conversation, error) {
	var conversation chat.Conversation
	if err := r.db.WithContext(ctx).First(&conversation, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &conversation, nil
}

func (r *conversationRepository) ListByUser(ctx context.Context, userID string) ([]chat.Conversation, error) {
	var conversations []chat.Conversation
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("updated_at desc").
		Find(&conversations).Error
	if err != nil {
		return nil, translate(err)
	}
	return conversations, nil
}

func (r *conversationRepository) SetProjectID(ctx context.Context, conversationID, projectID string) error {
	result := r.db.WithContext(ctx).
		Model(&chat.Conversation{}).
		Where("id = ?", conversationID).
		Update("project_id", projectID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
