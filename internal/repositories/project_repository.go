package repositories

import (
	"context"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetByJobPostingID(ctx context.Context, jobPostingID string) (*models.Project, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Project, error)
	ListByFreelance(ctx context.Context, freelanceID string) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	return translate(r.db.WithContext(ctx).Create(project).Error)
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Company.User").
		Preload("Freelance").
		Preload("Freelance.User").
		Preload("JobPosting").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (r *projectRepository) GetByJobPostingID(ctx context.Context, jobPostingID string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Company.User").
		Preload("Freelance").
		Preload("Freelance.User").
		First(&project, "job_posting_id = ?", jobPostingID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (r *projectRepository) ListByCompany(ctx context.Context, companyID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("Freelance").
		Preload("Freelance.User").
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, translate(err)
	}
	return projects, nil
}

func (r *projectRepository) ListByFreelance(ctx context.Context, freelanceID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Company.User").
		Where("freelance_id = ?", freelanceID).
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, translate(err)
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	return translate(r.db.WithContext(ctx).Omit("Company", "Freelance", "JobPosting").Save(project).Error)
}
