package models

import "time"

// Checkpoint is a dated, priced milestone. It belongs to the job posting and
// is logically adopted by the project once one is provisioned.
// SubmittedAt/ValidatedAt are written exactly once and never cleared.
type Checkpoint struct {
	BaseModel
	JobPostingID string           `gorm:"index;not null" json:"job_posting_id"`
	Name         string           `gorm:"not null" json:"name"`
	Description  string           `json:"description"`
	Date         time.Time        `gorm:"not null" json:"date"`
	Amount       float64          `gorm:"not null;default:0" json:"amount"`
	Status       CheckpointStatus `gorm:"not null;default:'todo'" json:"status"`
	SubmittedBy  *string          `json:"submitted_by,omitempty"`
	ValidatedBy  *string          `json:"validated_by,omitempty"`
	SubmittedAt  *time.Time       `json:"submitted_at,omitempty"`
	ValidatedAt  *time.Time       `json:"validated_at,omitempty"`
}
