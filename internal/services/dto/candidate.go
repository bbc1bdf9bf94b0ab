package dto

import (
	"time"

	"freehunt_backend/internal/models"
)

type ApplyRequest struct {
	JobPostingID string  `json:"jobPostingId" validate:"required,uuid"`
	Motivation   *string `json:"motivation" validate:"omitempty,max=2000"`
}

type CandidateResponse struct {
	ID           string                 `json:"id"`
	JobPostingID string                 `json:"jobPostingId"`
	Status       models.CandidateStatus `json:"status"`
	Motivation   *string                `json:"motivation,omitempty"`
	Freelance    *FreelanceResponse     `json:"freelance,omitempty"`
	JobPosting   *JobPostingResponse    `json:"jobPosting,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

func NewCandidateResponse(candidate *models.Candidate) CandidateResponse {
	resp := CandidateResponse{
		ID:           candidate.ID,
		JobPostingID: candidate.JobPostingID,
		Status:       candidate.Status,
		Motivation:   candidate.Motivation,
		CreatedAt:    candidate.CreatedAt,
	}
	if candidate.Freelance.ID != "" {
		freelance := NewFreelanceResponse(&candidate.Freelance)
		resp.Freelance = &freelance
	}
	if candidate.JobPosting.ID != "" {
		posting := NewJobPostingResponse(&candidate.JobPosting)
		resp.JobPosting = &posting
	}
	return resp
}

func NewCandidateResponses(candidates []models.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(candidates))
	for i := range candidates {
		out = append(out, NewCandidateResponse(&candidates[i]))
	}
	return out
}

// AcceptResult bundles the resolved candidate with the project provisioned
// by the acceptance.
type AcceptResult struct {
	Candidate CandidateResponse `json:"candidate"`
	Project   ProjectResponse   `json:"project"`
}
