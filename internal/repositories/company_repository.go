package repositories

import (
	"context"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByUserID(ctx context.Context, userID string) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return translate(r.db.WithContext(ctx).Create(company).Error)
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Preload("User").First(&company, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *companyRepository) GetByUserID(ctx context.Context, userID string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Preload("User").First(&company, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	return translate(r.db.WithContext(ctx).Save(company).Error)
}
