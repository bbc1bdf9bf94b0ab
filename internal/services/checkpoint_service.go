package services

import (
	"context"
	"time"

	"freehunt_backend/internal/auth"
	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"
)

type CheckpointService struct {
	repos *repositories.Repos
	tx    repositories.TxManager
	now   func() time.Time
}

func NewCheckpointService(repos *repositories.Repos, tx repositories.TxManager) *CheckpointService {
	return &CheckpointService{repos: repos, tx: tx, now: time.Now}
}

// Create adds a checkpoint to a draft posting. Once published the milestone
// plan is frozen; only status transitions remain.
func (s *CheckpointService) Create(ctx context.Context, jobPostingID, userID string, role models.UserRole, req dto.CreateCheckpointRequest) (*dto.CheckpointResponse, error) {
	posting, err := s.ownedDraftPosting(ctx, jobPostingID, userID, role)
	if err != nil {
		return nil, err
	}

	checkpoint := &models.Checkpoint{
		JobPostingID: posting.ID,
		Name:         req.Name,
		Description:  req.Description,
		Date:         req.Date,
		Amount:       req.Amount,
		Status:       models.CheckpointStatusTodo,
	}
	if err := s.repos.Checkpoint.Create(ctx, checkpoint); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCheckpointResponse(checkpoint)
	return &resp, nil
}

func (s *CheckpointService) Update(ctx context.Context, checkpointID, userID string, role models.UserRole, req dto.UpdateCheckpointRequest) (*dto.CheckpointResponse, error) {
	checkpoint, err := s.getCheckpoint(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedDraftPosting(ctx, checkpoint.JobPostingID, userID, role); err != nil {
		return nil, err
	}

	if req.Name != nil {
		checkpoint.Name = *req.Name
	}
	if req.Description != nil {
		checkpoint.Description = *req.Description
	}
	if req.Date != nil {
		checkpoint.Date = *req.Date
	}
	if req.Amount != nil {
		checkpoint.Amount = *req.Amount
	}

	if err := s.repos.Checkpoint.Update(ctx, checkpoint); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCheckpointResponse(checkpoint)
	return &resp, nil
}

func (s *CheckpointService) Delete(ctx context.Context, checkpointID, userID string, role models.UserRole) error {
	checkpoint, err := s.getCheckpoint(ctx, checkpointID)
	if err != nil {
		return err
	}
	if _, err := s.ownedDraftPosting(ctx, checkpoint.JobPostingID, userID, role); err != nil {
		return err
	}
	if err := s.repos.Checkpoint.Delete(ctx, checkpointID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CheckpointService) ListByJobPosting(ctx context.Context, jobPostingID, userID string, role models.UserRole) ([]dto.CheckpointResponse, error) {
	posting, err := s.repos.JobPosting.GetByID(ctx, jobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.Status == models.JobPostingStatusDraft &&
		!auth.CanAccess(userID, role, auth.JobPostingSubject(posting)) {
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}

	checkpoints, err := s.repos.Checkpoint.ListByJobPosting(ctx, jobPostingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCheckpointResponses(checkpoints), nil
}

// Submit is the freelance handing in the work for a checkpoint. It requires a
// provisioned project and an active status; the submission stamp is written
// exactly once.
func (s *CheckpointService) Submit(ctx context.Context, checkpointID, userID string, role models.UserRole) (*dto.CheckpointResponse, error) {
	checkpoint, project, err := s.checkpointWithProject(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && project.Freelance.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if checkpoint.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidCheckpointStatus
	}
	if checkpoint.SubmittedAt != nil {
		return nil, apperrors.ErrInvalidCheckpointStatus
	}

	now := s.now()
	checkpoint.Status = models.CheckpointStatusInProgress
	checkpoint.SubmittedBy = &userID
	checkpoint.SubmittedAt = &now

	if err := s.repos.Checkpoint.Update(ctx, checkpoint); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "checkpoint submitted", "checkpoint_id", checkpointID)
	resp := dto.NewCheckpointResponse(checkpoint)
	return &resp, nil
}

// Validate is the company signing off a checkpoint. Direct validation
// without a prior submission is allowed; in that case the submission fields
// stay empty. Validating triggers the project completion scan.
func (s *CheckpointService) Validate(ctx context.Context, checkpointID, userID string, role models.UserRole) (*dto.CheckpointResponse, error) {
	checkpoint, project, err := s.checkpointWithProject(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && project.Company.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if checkpoint.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidCheckpointStatus
	}

	now := s.now()
	checkpoint.Status = models.CheckpointStatusDone
	checkpoint.ValidatedBy = &userID
	checkpoint.ValidatedAt = &now

	err = s.tx.Do(ctx, func(r *repositories.Repos) error {
		if err := r.Checkpoint.Update(ctx, checkpoint); err != nil {
			return apperrors.InternalError(err)
		}
		if err := refreshProjectCompletion(ctx, r, checkpoint.JobPostingID, now); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "checkpoint validated", "checkpoint_id", checkpointID)
	resp := dto.NewCheckpointResponse(checkpoint)
	return &resp, nil
}

// MarkDelayed flags an overdue checkpoint. Submitted checkpoints can no
// longer be delayed; they are waiting on validation, not on work.
func (s *CheckpointService) MarkDelayed(ctx context.Context, checkpointID, userID string, role models.UserRole) (*dto.CheckpointResponse, error) {
	checkpoint, project, err := s.checkpointWithProject(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && project.Company.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if checkpoint.Status.IsTerminal() || checkpoint.Status == models.CheckpointStatusDelayed {
		return nil, apperrors.ErrInvalidCheckpointStatus
	}
	if checkpoint.SubmittedAt != nil {
		return nil, apperrors.ErrInvalidCheckpointStatus
	}

	checkpoint.Status = models.CheckpointStatusDelayed
	if err := s.repos.Checkpoint.Update(ctx, checkpoint); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCheckpointResponse(checkpoint)
	return &resp, nil
}

// Cancel drops a checkpoint from the plan. Canceling the last open
// checkpoint completes the project, same as validating it.
func (s *CheckpointService) Cancel(ctx context.Context, checkpointID, userID string, role models.UserRole) (*dto.CheckpointResponse, error) {
	checkpoint, project, err := s.checkpointWithProject(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && project.Company.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if checkpoint.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidCheckpointStatus
	}

	now := s.now()
	checkpoint.Status = models.CheckpointStatusCanceled

	err = s.tx.Do(ctx, func(r *repositories.Repos) error {
		if err := r.Checkpoint.Update(ctx, checkpoint); err != nil {
			return apperrors.InternalError(err)
		}
		if err := refreshProjectCompletion(ctx, r, checkpoint.JobPostingID, now); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "checkpoint canceled", "checkpoint_id", checkpointID)
	resp := dto.NewCheckpointResponse(checkpoint)
	return &resp, nil
}

func (s *CheckpointService) getCheckpoint(ctx context.Context, id string) (*models.Checkpoint, error) {
	checkpoint, err := s.repos.Checkpoint.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return checkpoint, nil
}

// checkpointWithProject loads the checkpoint and the project governing it.
// Status transitions are meaningless before provisioning, so a missing
// project is an error.
func (s *CheckpointService) checkpointWithProject(ctx context.Context, checkpointID string) (*models.Checkpoint, *models.Project, error) {
	checkpoint, err := s.getCheckpoint(ctx, checkpointID)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.repos.Project.GetByJobPostingID(ctx, checkpoint.JobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, nil, apperrors.ErrCheckpointNotSubmittable
		}
		return nil, nil, apperrors.InternalError(err)
	}
	return checkpoint, project, nil
}

// ownedDraftPosting loads the posting and verifies the caller owns it and it
// is still a draft.
func (s *CheckpointService) ownedDraftPosting(ctx context.Context, jobPostingID, userID string, role models.UserRole) (*models.JobPosting, error) {
	posting, err := s.repos.JobPosting.GetByID(ctx, jobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CanAccess(userID, role, auth.JobPostingSubject(posting)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if posting.Status != models.JobPostingStatusDraft {
		return nil, apperrors.ErrInvalidJobPostingStatus
	}
	return posting, nil
}
