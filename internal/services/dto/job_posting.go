package dto

import (
	"encoding/json"
	"time"

	"freehunt_backend/internal/models"
)

type CheckpointInput struct {
	Name        string    `json:"name" validate:"required,max=150"`
	Description string    `json:"description" validate:"max=2000"`
	Date        time.Time `json:"date" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
}

type CreateJobPostingRequest struct {
	Title            string            `json:"title" validate:"required,max=150"`
	Description      string            `json:"description" validate:"required,max=5000"`
	Location         string            `json:"location" validate:"max=150"`
	IsPromoted       bool              `json:"isPromoted"`
	AverageDailyRate float64           `json:"averageDailyRate" validate:"gte=0"`
	SeniorityYears   int               `json:"seniorityYears" validate:"gte=0"`
	Categories       []string          `json:"categories" validate:"omitempty,dive,max=50"`
	SkillIDs         []string          `json:"skillIds" validate:"omitempty,dive,uuid"`
	Checkpoints      []CheckpointInput `json:"checkpoints" validate:"omitempty,dive"`
}

type UpdateJobPostingRequest struct {
	Title            *string  `json:"title" validate:"omitempty,max=150"`
	Description      *string  `json:"description" validate:"omitempty,max=5000"`
	Location         *string  `json:"location" validate:"omitempty,max=150"`
	IsPromoted       *bool    `json:"isPromoted"`
	AverageDailyRate *float64 `json:"averageDailyRate" validate:"omitempty,gte=0"`
	SeniorityYears   *int     `json:"seniorityYears" validate:"omitempty,gte=0"`
	Categories       []string `json:"categories" validate:"omitempty,dive,max=50"`
	SkillIDs         []string `json:"skillIds" validate:"omitempty,dive,uuid"`
}

type CancelJobPostingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// CancellationResult reports a cancellation along with the refund outcome
// when the posting had been paid for.
type CancellationResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	RefundID     *string  `json:"refundId,omitempty"`
	RefundAmount *float64 `json:"refundAmount,omitempty"`
	RefundStatus *string  `json:"refundStatus,omitempty"`
}

type PublicationResult struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	ChargeID string  `json:"chargeId,omitempty"`
	Amount   float64 `json:"amount"`
}

type JobPostingResponse struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	Location         string                  `json:"location,omitempty"`
	IsPromoted       bool                    `json:"isPromoted"`
	AverageDailyRate float64                 `json:"averageDailyRate"`
	SeniorityYears   int                     `json:"seniorityYears"`
	Status           models.JobPostingStatus `json:"status"`
	Categories       []string                `json:"categories,omitempty"`
	CancelReason     *string                 `json:"cancelReason,omitempty"`
	Company          *CompanyResponse        `json:"company,omitempty"`
	Skills           []SkillResponse         `json:"skills,omitempty"`
	Checkpoints      []CheckpointResponse    `json:"checkpoints,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
}

func NewJobPostingResponse(posting *models.JobPosting) JobPostingResponse {
	resp := JobPostingResponse{
		ID:               posting.ID,
		Title:            posting.Title,
		Description:      posting.Description,
		Location:         posting.Location,
		IsPromoted:       posting.IsPromoted,
		AverageDailyRate: posting.AverageDailyRate,
		SeniorityYears:   posting.SeniorityYears,
		Status:           posting.Status,
		CancelReason:     posting.CancelReason,
		Skills:           NewSkillResponses(posting.Skills),
		CreatedAt:        posting.CreatedAt,
	}
	if len(posting.Categories) > 0 {
		// Stored as a jsonb array; a decode failure just leaves the list empty.
		_ = json.Unmarshal(posting.Categories, &resp.Categories)
	}
	if posting.Company.ID != "" {
		company := NewCompanyResponse(&posting.Company)
		resp.Company = &company
	}
	for i := range posting.Checkpoints {
		resp.Checkpoints = append(resp.Checkpoints, NewCheckpointResponse(&posting.Checkpoints[i]))
	}
	return resp
}

func NewJobPostingResponses(postings []models.JobPosting) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(postings))
	for i := range postings {
		out = append(out, NewJobPostingResponse(&postings[i]))
	}
	return out
}

type JobPostingListResponse struct {
	Items []JobPostingResponse `json:"items"`
	Total int64                `json:"total"`
}
