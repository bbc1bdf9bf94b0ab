package repositories

import (
	"context"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
	ListByUser(ctx context.Context, userID string) ([]models.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *models.Document) error {
	return translate(r.db.WithContext(ctx).Create(document).Error)
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).First(&document, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &document, nil
}

func (r *documentRepository) ListByUser(ctx context.Context, userID string) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&documents).Error
	if err != nil {
		return nil, translate(err)
	}
	return documents, nil
}
