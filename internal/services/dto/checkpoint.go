package dto

import (
	"time"

	"freehunt_backend/internal/models"
)

type CreateCheckpointRequest struct {
	Name        string    `json:"name" validate:"required,max=150"`
	Description string    `json:"description" validate:"max=2000"`
	Date        time.Time `json:"date" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
}

type UpdateCheckpointRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=150"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Date        *time.Time `json:"date"`
	Amount      *float64   `json:"amount" validate:"omitempty,gte=0"`
}

type CheckpointResponse struct {
	ID           string                  `json:"id"`
	JobPostingID string                  `json:"jobPostingId"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description,omitempty"`
	Date         time.Time               `json:"date"`
	Amount       float64                 `json:"amount"`
	Status       models.CheckpointStatus `json:"status"`
	SubmittedBy  *string                 `json:"submittedBy,omitempty"`
	ValidatedBy  *string                 `json:"validatedBy,omitempty"`
	SubmittedAt  *time.Time              `json:"submittedAt,omitempty"`
	ValidatedAt  *time.Time              `json:"validatedAt,omitempty"`
}

func NewCheckpointResponse(checkpoint *models.Checkpoint) CheckpointResponse {
	return CheckpointResponse{
		ID:           checkpoint.ID,
		JobPostingID: checkpoint.JobPostingID,
		Name:         checkpoint.Name,
		Description:  checkpoint.Description,
		Date:         checkpoint.Date,
		Amount:       checkpoint.Amount,
		Status:       checkpoint.Status,
		SubmittedBy:  checkpoint.SubmittedBy,
		ValidatedBy:  checkpoint.ValidatedBy,
		SubmittedAt:  checkpoint.SubmittedAt,
		ValidatedAt:  checkpoint.ValidatedAt,
	}
}

func NewCheckpointResponses(checkpoints []models.Checkpoint) []CheckpointResponse {
	out := make([]CheckpointResponse, 0, len(checkpoints))
	for i := range checkpoints {
		out = append(out, NewCheckpointResponse(&checkpoints[i]))
	}
	return out
}
