package services

import (
	"context"
	"fmt"
	"time"

	"freehunt_backend/internal/auth"
	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/models/chat"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"
)

const welcomeMessageFormat = "Welcome aboard! This conversation was opened for your new project %q. Feel free to discuss the next steps here."

type ProjectService struct {
	repos *repositories.Repos
}

func NewProjectService(repos *repositories.Repos) *ProjectService {
	return &ProjectService{repos: repos}
}

func (s *ProjectService) GetByID(ctx context.Context, id, userID string, role models.UserRole) (*dto.ProjectResponse, error) {
	project, err := s.repos.Project.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CanAccess(userID, role, auth.ProjectSubject(project)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *ProjectService) GetByJobPosting(ctx context.Context, jobPostingID, userID string, role models.UserRole) (*dto.ProjectResponse, error) {
	project, err := s.repos.Project.GetByJobPostingID(ctx, jobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CanAccess(userID, role, auth.ProjectSubject(project)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

// ListMine lists projects for the caller's own profile, company or freelance.
func (s *ProjectService) ListMine(ctx context.Context, userID string, role models.UserRole) ([]dto.ProjectResponse, error) {
	var (
		projects []models.Project
		err      error
	)
	switch role {
	case models.UserRoleCompany:
		company, cerr := s.repos.Company.GetByUserID(ctx, userID)
		if cerr != nil {
			return nil, apperrors.InternalError(cerr)
		}
		projects, err = s.repos.Project.ListByCompany(ctx, company.ID)
	case models.UserRoleFreelance:
		freelance, ferr := s.repos.Freelance.GetByUserID(ctx, userID)
		if ferr != nil {
			return nil, apperrors.InternalError(ferr)
		}
		projects, err = s.repos.Project.ListByFreelance(ctx, freelance.ID)
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponses(projects), nil
}

// deriveProjectPlan computes the project window and budget from the posting's
// checkpoints: earliest date, latest date, sum of amounts. A posting without
// checkpoints yields a zero-length window starting now and a zero budget.
func deriveProjectPlan(checkpoints []models.Checkpoint, now time.Time) (start, end time.Time, amount float64) {
	if len(checkpoints) == 0 {
		return now, now, 0
	}
	start, end = checkpoints[0].Date, checkpoints[0].Date
	for _, cp := range checkpoints {
		if cp.Date.Before(start) {
			start = cp.Date
		}
		if cp.Date.After(end) {
			end = cp.Date
		}
		amount += cp.Amount
	}
	return start, end, amount
}

// provisionProject creates the conversation, the project and the welcome
// message for an accepted candidate. It runs inside the acceptance
// transaction; the unique index on projects.job_posting_id rejects a
// concurrent second provisioning for the same posting.
func provisionProject(ctx context.Context, r *repositories.Repos, posting *models.JobPosting, freelance *models.Freelance, now time.Time) (*models.Project, error) {
	companyUserID := posting.Company.UserID

	conversation := &chat.Conversation{
		SenderID:   companyUserID,
		ReceiverID: freelance.UserID,
	}
	if err := r.Conversation.Create(ctx, conversation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	start, end, amount := deriveProjectPlan(posting.Checkpoints, now)
	project := &models.Project{
		JobPostingID:   posting.ID,
		CompanyID:      posting.CompanyID,
		FreelanceID:    freelance.ID,
		Name:           posting.Title,
		Description:    posting.Description,
		StartDate:      start,
		EndDate:        end,
		Amount:         amount,
		ConversationID: conversation.ID,
		Status:         models.ProjectStatusInProgress,
	}
	if err := r.Project.Create(ctx, project); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrConflict(err, "project", "Job posting already has a project")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := r.Conversation.SetProjectID(ctx, conversation.ID, project.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	welcome := &chat.Message{
		ConversationID: conversation.ID,
		SenderID:       companyUserID,
		ReceiverID:     freelance.UserID,
		Content:        fmt.Sprintf(welcomeMessageFormat, posting.Title),
	}
	if err := r.Message.Create(ctx, welcome); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return project, nil
}

// refreshProjectCompletion flips the project to completed once every
// checkpoint is done or canceled. CompletedAt is written exactly once.
func refreshProjectCompletion(ctx context.Context, r *repositories.Repos, jobPostingID string, now time.Time) error {
	project, err := r.Project.GetByJobPostingID(ctx, jobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	if project.Status == models.ProjectStatusCompleted {
		return nil
	}

	checkpoints, err := r.Checkpoint.ListByJobPosting(ctx, jobPostingID)
	if err != nil {
		return err
	}
	for _, cp := range checkpoints {
		if !cp.Status.IsTerminal() {
			return nil
		}
	}

	project.Status = models.ProjectStatusCompleted
	project.CompletedAt = &now
	if err := r.Project.Update(ctx, project); err != nil {
		return err
	}
	logger.CtxInfo(ctx, "project completed", "project_id", project.ID, "job_posting_id", jobPostingID)
	return nil
}
