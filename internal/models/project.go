package models

import "time"

// Project is the engagement record created when a candidate is accepted.
// The unique index on JobPostingID is the last-resort guard against a
// concurrent double provisioning. Start/end dates and amount are derived
// from the posting's checkpoints, never user-entered.
type Project struct {
	BaseModel
	JobPostingID   string        `gorm:"uniqueIndex;not null" json:"job_posting_id"`
	CompanyID      string        `gorm:"index;not null" json:"company_id"`
	FreelanceID    string        `gorm:"index;not null" json:"freelance_id"`
	Name           string        `gorm:"not null" json:"name"`
	Description    string        `gorm:"type:text" json:"description"`
	StartDate      time.Time     `gorm:"not null" json:"start_date"`
	EndDate        time.Time     `gorm:"not null" json:"end_date"`
	Amount         float64       `gorm:"not null;default:0" json:"amount"`
	ConversationID string        `gorm:"not null" json:"conversation_id"`
	Status         ProjectStatus `gorm:"not null;default:'in_progress'" json:"status"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`

	JobPosting JobPosting `gorm:"foreignKey:JobPostingID" json:"job_posting,omitempty"`
	Company    Company    `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Freelance  Freelance  `gorm:"foreignKey:FreelanceID" json:"freelance,omitempty"`
}
