package repositories

import (
	"context"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	List(ctx context.Context) ([]models.Skill, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return translate(r.db.WithContext(ctx).Create(skill).Error)
}

func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).Order("name asc").Find(&skills).Error; err != nil {
		return nil, translate(err)
	}
	return skills, nil
}

func (r *skillRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var skills []models.Skill
	if err := r.db.WithContext(ctx).Find(&skills, "id IN ?", ids).Error; err != nil {
		return nil, translate(err)
	}
	return skills, nil
}
