package services

import (
	"context"
	"encoding/json"
	"fmt"

	"freehunt_backend/internal/auth"
	"freehunt_backend/internal/config"
	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/payment"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// promotedFeeFactor doubles the publication fee for promoted postings.
const promotedFeeFactor = 2

type JobPostingService struct {
	repos   *repositories.Repos
	tx      repositories.TxManager
	gateway payment.Gateway
	payCfg  config.PaymentConfig
}

func NewJobPostingService(repos *repositories.Repos, tx repositories.TxManager, gateway payment.Gateway, payCfg config.PaymentConfig) *JobPostingService {
	return &JobPostingService{repos: repos, tx: tx, gateway: gateway, payCfg: payCfg}
}

func (s *JobPostingService) Create(ctx context.Context, userID string, req dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error) {
	company, err := s.repos.Company.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewForbiddenError("Only companies can create job postings")
		}
		return nil, apperrors.InternalError(err)
	}

	skills, err := s.repos.Skill.GetByIDs(ctx, req.SkillIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	posting := &models.JobPosting{
		CompanyID:        company.ID,
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		IsPromoted:       req.IsPromoted,
		AverageDailyRate: req.AverageDailyRate,
		SeniorityYears:   req.SeniorityYears,
		Status:           models.JobPostingStatusDraft,
		Categories:       categoriesJSON(req.Categories),
		Skills:           skills,
	}
	for _, cp := range req.Checkpoints {
		posting.Checkpoints = append(posting.Checkpoints, models.Checkpoint{
			Name:        cp.Name,
			Description: cp.Description,
			Date:        cp.Date,
			Amount:      cp.Amount,
			Status:      models.CheckpointStatusTodo,
		})
	}

	if err := s.repos.JobPosting.Create(ctx, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job posting created", "job_posting_id", posting.ID, "company_id", company.ID)
	posting.Company = *company
	resp := dto.NewJobPostingResponse(posting)
	return &resp, nil
}

// GetByID returns the posting. Drafts are only visible to the owning company
// and admins; published and canceled postings are public.
func (s *JobPostingService) GetByID(ctx context.Context, id, userID string, role models.UserRole) (*dto.JobPostingResponse, error) {
	posting, err := s.getPosting(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.Status == models.JobPostingStatusDraft &&
		!auth.CanAccess(userID, role, auth.JobPostingSubject(posting)) {
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}
	resp := dto.NewJobPostingResponse(posting)
	return &resp, nil
}

// Update only applies to drafts. Once published the posting is immutable
// apart from the status transitions.
func (s *JobPostingService) Update(ctx context.Context, id, userID string, role models.UserRole, req dto.UpdateJobPostingRequest) (*dto.JobPostingResponse, error) {
	posting, err := s.getPosting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccess(userID, role, auth.JobPostingSubject(posting)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if posting.Status != models.JobPostingStatusDraft {
		return nil, apperrors.ErrInvalidJobPostingStatus
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.Location != nil {
		posting.Location = *req.Location
	}
	if req.IsPromoted != nil {
		posting.IsPromoted = *req.IsPromoted
	}
	if req.AverageDailyRate != nil {
		posting.AverageDailyRate = *req.AverageDailyRate
	}
	if req.SeniorityYears != nil {
		posting.SeniorityYears = *req.SeniorityYears
	}
	if req.Categories != nil {
		posting.Categories = categoriesJSON(req.Categories)
	}

	if err := s.repos.JobPosting.Update(ctx, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.SkillIDs != nil {
		skills, err := s.repos.Skill.GetByIDs(ctx, req.SkillIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if err := s.repos.JobPosting.ReplaceSkills(ctx, posting, skills); err != nil {
			return nil, apperrors.InternalError(err)
		}
		posting.Skills = skills
	}

	resp := dto.NewJobPostingResponse(posting)
	return &resp, nil
}

// Delete removes a draft outright. Published postings must go through Cancel
// so the charge is refunded and the reason recorded.
func (s *JobPostingService) Delete(ctx context.Context, id, userID string, role models.UserRole) error {
	posting, err := s.getPosting(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanAccess(userID, role, auth.JobPostingSubject(posting)) {
		return apperrors.ErrInsufficientPermissions
	}
	if posting.Status != models.JobPostingStatusDraft {
		return apperrors.ErrInvalidJobPostingStatus
	}
	if err := s.repos.JobPosting.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobPostingService) ListByCompany(ctx context.Context, userID string) ([]dto.JobPostingResponse, error) {
	company, err := s.repos.Company.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	postings, err := s.repos.JobPosting.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobPostingResponses(postings), nil
}

func (s *JobPostingService) Search(ctx context.Context, criteria repositories.JobPostingSearch) (*dto.JobPostingListResponse, error) {
	postings, total, err := s.repos.JobPosting.SearchPublished(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.JobPostingListResponse{
		Items: dto.NewJobPostingResponses(postings),
		Total: total,
	}, nil
}

// PublicationFee is the flat fee from config, doubled for promoted postings.
func (s *JobPostingService) PublicationFee(posting *models.JobPosting) float64 {
	fee := s.payCfg.PublicationFee
	if posting.IsPromoted {
		fee *= promotedFeeFactor
	}
	return fee
}

// Publish charges the publication fee and flips the posting to published.
// A declined charge leaves the posting in draft.
func (s *JobPostingService) Publish(ctx context.Context, id, userID string, role models.UserRole) (*dto.PublicationResult, error) {
	posting, err := s.getPosting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccess(userID, role, auth.JobPostingSubject(posting)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if posting.Status != models.JobPostingStatusDraft {
		return nil, apperrors.ErrInvalidJobPostingStatus
	}

	fee := s.PublicationFee(posting)
	charge, err := s.gateway.Charge(ctx, posting.ID, fee,
		fmt.Sprintf("Publication of job posting %q", posting.Title))
	if err != nil {
		return nil, err
	}

	txStatus := models.TransactionStatusSucceeded
	if !charge.Success {
		txStatus = models.TransactionStatusFailed
	}
	record := &models.PaymentTransaction{
		JobPostingID:    posting.ID,
		Type:            models.TransactionTypeCharge,
		Amount:          fee,
		Status:          txStatus,
		ChargeID:        charge.ChargeID,
		GatewayResponse: gatewayJSON(charge),
	}
	if err := s.repos.Payment.Create(ctx, record); err != nil {
		logger.CtxError(ctx, "failed to record payment transaction", "error", err, "job_posting_id", posting.ID)
	}

	if !charge.Success {
		logger.CtxWarn(ctx, "publication charge declined", "job_posting_id", posting.ID, "reason", charge.Message)
		return nil, apperrors.ErrPaymentRequired.WithDetails(charge.Message)
	}

	posting.Status = models.JobPostingStatusPublished
	if err := s.repos.JobPosting.Update(ctx, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job posting published", "job_posting_id", posting.ID, "amount", fee, "charge_id", charge.ChargeID)
	return &dto.PublicationResult{
		Success:  true,
		Message:  "Job posting published",
		ChargeID: charge.ChargeID,
		Amount:   fee,
	}, nil
}

// Cancel refunds the publication charge and marks the posting canceled. The
// order is deliberate: refund first, then flip status, so a refund failure
// leaves the posting published and retryable. A posting with a provisioned
// project can no longer be canceled; the project check runs inside the same
// transaction as the status flip so an acceptance racing the cancel cannot
// slip a project in after the check.
func (s *JobPostingService) Cancel(ctx context.Context, id, userID string, role models.UserRole, req dto.CancelJobPostingRequest) (*dto.CancellationResult, error) {
	posting, err := s.getPosting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccess(userID, role, auth.JobPostingSubject(posting)) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if posting.Status != models.JobPostingStatusPublished {
		return nil, apperrors.ErrInvalidJobPostingStatus
	}

	result := &dto.CancellationResult{Success: true, Message: "Job posting canceled"}

	err = s.tx.Do(ctx, func(r *repositories.Repos) error {
		if _, err := r.Project.GetByJobPostingID(ctx, id); err == nil {
			return apperrors.ErrJobPostingHasProject
		} else if !apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.InternalError(err)
		}

		charge, err := r.Payment.LatestSucceededCharge(ctx, id)
		switch {
		case err == nil:
			refund, err := s.gateway.Refund(ctx, charge.ChargeID, charge.Amount)
			if err != nil {
				return err
			}
			if !refund.Success {
				logger.CtxError(ctx, "refund declined", "job_posting_id", id, "charge_id", charge.ChargeID, "reason", refund.Message)
				return apperrors.ErrRefundFailed.WithDetails(refund.Message)
			}

			charge.Status = models.TransactionStatusRefunded
			charge.RefundID = &refund.RefundID
			if err := r.Payment.Update(ctx, charge); err != nil {
				logger.CtxError(ctx, "failed to mark charge refunded", "error", err, "job_posting_id", id)
			}
			refundRecord := &models.PaymentTransaction{
				JobPostingID:    id,
				Type:            models.TransactionTypeRefund,
				Amount:          refund.Amount,
				Status:          models.TransactionStatusSucceeded,
				ChargeID:        charge.ChargeID,
				RefundID:        &refund.RefundID,
				GatewayResponse: gatewayJSON(refund),
			}
			if err := r.Payment.Create(ctx, refundRecord); err != nil {
				logger.CtxError(ctx, "failed to record refund transaction", "error", err, "job_posting_id", id)
			}

			result.Message = "Job posting canceled, payment refunded"
			result.RefundID = &refund.RefundID
			result.RefundAmount = &refund.Amount
			status := refund.Status
			if status == "" {
				status = string(models.TransactionStatusSucceeded)
			}
			result.RefundStatus = &status

		case apperrors.Is(err, repositories.ErrNotFound):
			// Published without a recorded charge; nothing to refund.
			logger.CtxWarn(ctx, "canceling posting with no recorded charge", "job_posting_id", id)

		default:
			return apperrors.InternalError(err)
		}

		posting.Status = models.JobPostingStatusCanceled
		if req.Reason != "" {
			posting.CancelReason = &req.Reason
		}
		if err := r.JobPosting.Update(ctx, posting); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "job posting canceled", "job_posting_id", id)
	return result, nil
}

func (s *JobPostingService) getPosting(ctx context.Context, id string) (*models.JobPosting, error) {
	posting, err := s.repos.JobPosting.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

func categoriesJSON(categories []string) datatypes.JSON {
	if len(categories) == 0 {
		return nil
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return nil
	}
	return raw
}

func gatewayJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
