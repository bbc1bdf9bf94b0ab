package repositories

import (
	"context"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	ListByJobPosting(ctx context.Context, jobPostingID string) ([]models.Candidate, error)
	ListByFreelance(ctx context.Context, freelanceID string) ([]models.Candidate, error)
	// UpdateStatusIfPending flips the status only when the row is still
	// pending and reports how many rows changed. Zero means another request
	// resolved the candidate first.
	UpdateStatusIfPending(ctx context.Context, id string, status models.CandidateStatus) (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	return translate(r.db.WithContext(ctx).Create(candidate).Error)
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).
		Preload("JobPosting").
		Preload("JobPosting.Company").
		Preload("JobPosting.Company.User").
		Preload("JobPosting.Checkpoints").
		Preload("Freelance").
		Preload("Freelance.User").
		First(&candidate, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (r *candidateRepository) ListByJobPosting(ctx context.Context, jobPostingID string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).
		Preload("Freelance").
		Preload("Freelance.User").
		Preload("Freelance.Skills").
		Where("job_posting_id = ?", jobPostingID).
		Order("created_at asc").
		Find(&candidates).Error
	if err != nil {
		return nil, translate(err)
	}
	return candidates, nil
}

func (r *candidateRepository) ListByFreelance(ctx context.Context, freelanceID string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).
		Preload("JobPosting").
		Preload("JobPosting.Company").
		Where("freelance_id = ?", freelanceID).
		Order("created_at desc").
		Find(&candidates).Error
	if err != nil {
		return nil, translate(err)
	}
	return candidates, nil
}

func (r *candidateRepository) UpdateStatusIfPending(ctx context.Context, id string, status models.CandidateStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Candidate{}).
		Where("id = ? AND status = ?", id, models.CandidateStatusPending).
		Update("status", status)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}
