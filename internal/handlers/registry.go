package handlers

import (
	"freehunt_backend/internal/services"
	"freehunt_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	JobPosting *JobPostingHandler
	Candidate  *CandidateHandler
	Checkpoint *CheckpointHandler
	Project    *ProjectHandler
	Chat       *ChatHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:       NewAuthHandler(base, sc.Auth),
		User:       NewUserHandler(base, sc.User),
		JobPosting: NewJobPostingHandler(base, sc.JobPosting),
		Candidate:  NewCandidateHandler(base, sc.Candidate),
		Checkpoint: NewCheckpointHandler(base, sc.Checkpoint),
		Project:    NewProjectHandler(base, sc.Project),
		Chat:       NewChatHandler(base, sc.Chat),
	}
}
