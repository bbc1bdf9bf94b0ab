package services

import (
	"context"
	"fmt"
	"time"

	"freehunt_backend/internal/auth"
	"freehunt_backend/internal/email"
	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"
)

type CandidateService struct {
	repos  *repositories.Repos
	tx     repositories.TxManager
	mailer email.Provider
	now    func() time.Time
}

func NewCandidateService(repos *repositories.Repos, tx repositories.TxManager, mailer email.Provider) *CandidateService {
	return &CandidateService{repos: repos, tx: tx, mailer: mailer, now: time.Now}
}

// Apply registers a freelance's application on a published posting. The
// composite unique index turns a repeated application into a conflict.
func (s *CandidateService) Apply(ctx context.Context, userID string, req dto.ApplyRequest) (*dto.CandidateResponse, error) {
	freelance, err := s.repos.Freelance.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewForbiddenError("Only freelances can apply to job postings")
		}
		return nil, apperrors.InternalError(err)
	}

	posting, err := s.repos.JobPosting.GetByID(ctx, req.JobPostingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.Status != models.JobPostingStatusPublished {
		return nil, apperrors.ErrJobPostingNotPublished
	}

	candidate := &models.Candidate{
		JobPostingID: posting.ID,
		FreelanceID:  freelance.ID,
		Status:       models.CandidateStatusPending,
		Motivation:   req.Motivation,
	}
	if err := s.repos.Candidate.Create(ctx, candidate); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrCandidateAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "candidate applied", "candidate_id", candidate.ID, "job_posting_id", posting.ID)
	s.notify(ctx, posting.Company.User.Email,
		"New application received",
		fmt.Sprintf("<p>%s %s applied to your job posting <b>%s</b>.</p>", freelance.FirstName, freelance.LastName, posting.Title))

	candidate.Freelance = *freelance
	resp := dto.NewCandidateResponse(candidate)
	return &resp, nil
}

func (s *CandidateService) ListByJobPosting(ctx context.Context, jobPostingID, userID string, role models.UserRole) ([]dto.CandidateResponse, error) {
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

	candidates, err := s.repos.Candidate.ListByJobPosting(ctx, jobPostingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCandidateResponses(candidates), nil
}

func (s *CandidateService) ListMine(ctx context.Context, userID string) ([]dto.CandidateResponse, error) {
	freelance, err := s.repos.Freelance.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	candidates, err := s.repos.Candidate.ListByFreelance(ctx, freelance.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCandidateResponses(candidates), nil
}

// Accept resolves the candidate and provisions the project in a single
// transaction. The conditional status update is the concurrency gate: only
// the request that actually flips pending to accepted proceeds to provision.
func (s *CandidateService) Accept(ctx context.Context, candidateID, userID string, role models.UserRole) (*dto.AcceptResult, error) {
	candidate, err := s.getCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccess(userID, role, auth.JobPostingSubject(&candidate.JobPosting)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if candidate.JobPosting.Status != models.JobPostingStatusPublished {
		return nil, apperrors.ErrInvalidJobPostingStatus
	}

	var project *models.Project
	err = s.tx.Do(ctx, func(r *repositories.Repos) error {
		rows, err := r.Candidate.UpdateStatusIfPending(ctx, candidateID, models.CandidateStatusAccepted)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if rows == 0 {
			return apperrors.ErrCandidateAlreadyResolved
		}
		project, err = provisionProject(ctx, r, &candidate.JobPosting, &candidate.Freelance, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "candidate accepted", "candidate_id", candidateID, "project_id", project.ID)
	s.notify(ctx, candidate.Freelance.User.Email,
		"Your application was accepted",
		fmt.Sprintf("<p>Congratulations! Your application to <b>%s</b> was accepted. A project has been set up for you.</p>", candidate.JobPosting.Title))

	candidate.Status = models.CandidateStatusAccepted
	project.Company = candidate.JobPosting.Company
	project.Freelance = candidate.Freelance
	return &dto.AcceptResult{
		Candidate: dto.NewCandidateResponse(candidate),
		Project:   dto.NewProjectResponse(project),
	}, nil
}

// Reject resolves the candidate without side effects beyond the status flip.
func (s *CandidateService) Reject(ctx context.Context, candidateID, userID string, role models.UserRole) (*dto.CandidateResponse, error) {
	candidate, err := s.getCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccess(userID, role, auth.JobPostingSubject(&candidate.JobPosting)) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	rows, err := s.repos.Candidate.UpdateStatusIfPending(ctx, candidateID, models.CandidateStatusRejected)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if rows == 0 {
		return nil, apperrors.ErrCandidateAlreadyResolved
	}

	logger.CtxInfo(ctx, "candidate rejected", "candidate_id", candidateID)
	s.notify(ctx, candidate.Freelance.User.Email,
		"Update on your application",
		fmt.Sprintf("<p>Your application to <b>%s</b> was not retained this time.</p>", candidate.JobPosting.Title))

	candidate.Status = models.CandidateStatusRejected
	resp := dto.NewCandidateResponse(candidate)
	return &resp, nil
}

func (s *CandidateService) getCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	candidate, err := s.repos.Candidate.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return candidate, nil
}

// notify sends best-effort email; delivery problems never fail the request.
func (s *CandidateService) notify(ctx context.Context, to, subject, body string) {
	if to == "" {
		return
	}
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		logger.CtxWarn(ctx, "notification email failed", "to", to, "error", err)
	}
}
