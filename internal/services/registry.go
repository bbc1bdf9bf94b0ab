package services

import (
	"time"

	"freehunt_backend/internal/config"
	"freehunt_backend/internal/email"
	"freehunt_backend/internal/payment"
	"freehunt_backend/internal/repositories"
)

// ServiceContainer wires every service once at startup.
type ServiceContainer struct {
	Auth       *AuthService
	User       *UserService
	JobPosting *JobPostingService
	Candidate  *CandidateService
	Checkpoint *CheckpointService
	Project    *ProjectService
	Chat       *ChatService
}

func NewServiceContainer(
	repos *repositories.Repos,
	tx repositories.TxManager,
	gateway payment.Gateway,
	mailer email.Provider,
	cfg *config.Config,
) *ServiceContainer {
	tokenTTL := time.Duration(cfg.JWT.TTLMinutes) * time.Minute
	return &ServiceContainer{
		Auth:       NewAuthService(repos, tx, cfg.JWT.Secret, tokenTTL),
		User:       NewUserService(repos),
		JobPosting: NewJobPostingService(repos, tx, gateway, cfg.Payment),
		Candidate:  NewCandidateService(repos, tx, mailer),
		Checkpoint: NewCheckpointService(repos, tx),
		Project:    NewProjectService(repos),
		Chat:       NewChatService(repos),
	}
}
