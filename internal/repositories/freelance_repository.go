package repositories

import (
	"context"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type FreelanceRepository interface {
	Create(ctx context.Context, freelance *models.Freelance) error
	GetByID(ctx context.Context, id string) (*models.Freelance, error)
	GetByUserID(ctx context.Context, userID string) (*models.Freelance, error)
	Update(ctx context.Context, freelance *models.Freelance) error
	ReplaceSkills(ctx context.Context, freelance *models.Freelance, skills []models.Skill) error
}

type freelanceRepository struct {
	db *gorm.DB
}

func NewFreelanceRepository(db *gorm.DB) FreelanceRepository {
	return &freelanceRepository{db: db}
}

func (r *freelanceRepository) Create(ctx context.Context, freelance *models.Freelance) error {
	return translate(r.db.WithContext(ctx).Create(freelance).Error)
}

func (r *freelanceRepository) GetByID(ctx context.Context, id string) (*models.Freelance, error) {
	var freelance models.Freelance
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Skills").
		First(&freelance, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &freelance, nil
}

func (r *freelanceRepository) GetByUserID(ctx context.Context, userID string) (*models.Freelance, error) {
	var freelance models.Freelance
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Skills").
		First(&freelance, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &freelance, nil
}

func (r *freelanceRepository) Update(ctx context.Context, freelance *models.Freelance) error {
	return translate(r.db.WithContext(ctx).Save(freelance).Error)
}

func (r *freelanceRepository) ReplaceSkills(ctx context.Context, freelance *models.Freelance, skills []models.Skill) error {
	return translate(r.db.WithContext(ctx).Model(freelance).Association("Skills").Replace(skills))
}
