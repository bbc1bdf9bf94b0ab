package dto

import (
	"time"

	"freehunt_backend/internal/models"
)

type ProjectResponse struct {
	ID             string               `json:"id"`
	JobPostingID   string               `json:"jobPostingId"`
	Name           string               `json:"name"`
	Description    string               `json:"description,omitempty"`
	StartDate      time.Time            `json:"startDate"`
	EndDate        time.Time            `json:"endDate"`
	Amount         float64              `json:"amount"`
	ConversationID string               `json:"conversationId"`
	Status         models.ProjectStatus `json:"status"`
	CompletedAt    *time.Time           `json:"completedAt,omitempty"`
	Company        *CompanyResponse     `json:"company,omitempty"`
	Freelance      *FreelanceResponse   `json:"freelance,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func NewProjectResponse(project *models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:             project.ID,
		JobPostingID:   project.JobPostingID,
		Name:           project.Name,
		Description:    project.Description,
		StartDate:      project.StartDate,
		EndDate:        project.EndDate,
		Amount:         project.Amount,
		ConversationID: project.ConversationID,
		Status:         project.Status,
		CompletedAt:    project.CompletedAt,
		CreatedAt:      project.CreatedAt,
	}
	if project.Company.ID != "" {
		company := NewCompanyResponse(&project.Company)
		resp.Company = &company
	}
	if project.Freelance.ID != "" {
		freelance := NewFreelanceResponse(&project.Freelance)
		resp.Freelance = &freelance
	}
	return resp
}

func NewProjectResponses(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}
