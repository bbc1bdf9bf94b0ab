package models

// Candidate is a freelance's application to a job posting. One application
// per (posting, freelance) pair; pending resolves exactly once.
type Candidate struct {
	BaseModel
	JobPostingID string          `gorm:"not null;uniqueIndex:idx_candidate_posting_freelance" json:"job_posting_id"`
	FreelanceID  string          `gorm:"not null;uniqueIndex:idx_candidate_posting_freelance" json:"freelance_id"`
	Status       CandidateStatus `gorm:"not null;default:'pending'" json:"status"`
	Motivation   *string         `gorm:"type:text" json:"motivation,omitempty"`

	JobPosting JobPosting `gorm:"foreignKey:JobPostingID" json:"job_posting,omitempty"`
	Freelance  Freelance  `gorm:"foreignKey:FreelanceID" json:"freelance,omitempty"`
}
