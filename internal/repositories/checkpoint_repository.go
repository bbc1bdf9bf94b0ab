package repositories

import (
	"context"
	"time"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type CheckpointRepository interface {
	Create(ctx context.Context, checkpoint *models.Checkpoint) error
	GetByID(ctx context.Context, id string) (*models.Checkpoint, error)
	Update(ctx context.Context, checkpoint *models.Checkpoint) error
	Delete(ctx context.Context, id string) error
	ListByJobPosting(ctx context.Context, jobPostingID string) ([]models.Checkpoint, error)
	// MarkOverdueDelayed flags every active checkpoint whose due date has
	// passed without a submission. Returns the number of rows flagged.
	MarkOverdueDelayed(ctx context.Context, now time.Time) (int64, error)
}

type checkpointRepository struct {
	db *gorm.DB
}

func NewCheckpointRepository(db *gorm.DB) CheckpointRepository {
	return &checkpointRepository{db: db}
}

func (r *checkpointRepository) Create(ctx context.Context, checkpoint *models.Checkpoint) error {
	return translate(r.db.WithContext(ctx).Create(checkpoint).Error)
}

func (r *checkpointRepository) GetByID(ctx context.Context, id string) (*models.Checkpoint, error) {
	var checkpoint models.Checkpoint
	if err := r.db.WithContext(ctx).First(&checkpoint, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &checkpoint, nil
}

func (r *checkpointRepository) Update(ctx context.Context, checkpoint *models.Checkpoint) error {
	return translate(r.db.WithContext(ctx).Save(checkpoint).Error)
}

func (r *checkpointRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Checkpoint{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *checkpointRepository) ListByJobPosting(ctx context.Context, jobPostingID string) ([]models.Checkpoint, error) {
	var checkpoints []models.Checkpoint
	err := r.db.WithContext(ctx).
		Where("job_posting_id = ?", jobPostingID).
		Order("date asc").
		Find(&checkpoints).Error
	if err != nil {
		return nil, translate(err)
	}
	return checkpoints, nil
}

func (r *checkpointRepository) MarkOverdueDelayed(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Checkpoint{}).
		Where("status IN ? AND date < ? AND submitted_at IS NULL",
			[]models.CheckpointStatus{models.CheckpointStatusTodo, models.CheckpointStatusInProgress}, now).
		Update("status", models.CheckpointStatusDelayed)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}
