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

type AuthService struct {
	repos     *repositories.Repos
	tx        repositories.TxManager
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repos *repositories.Repos, tx repositories.TxManager, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{repos: repos, tx: tx, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// RegisterCompany creates the user and its company profile in one
// transaction and returns a ready-to-use session token.
func (s *AuthService) RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRoleCompany,
		IsActive:     true,
	}

	err = s.tx.Do(ctx, func(r *repositories.Repos) error {
		if err := r.User.Create(ctx, user); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicate) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}
		company := &models.Company{
			UserID:      user.ID,
			Name:        req.CompanyName,
			Description: req.Description,
			SiretNumber: req.SiretNumber,
			Address:     req.Address,
		}
		if err := r.Company.Create(ctx, company); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "company registered", "user_id", user.ID)
	return s.issueToken(user)
}

// RegisterFreelance mirrors RegisterCompany for the freelance role, resolving
// the requested skills before the profile is stored.
func (s *AuthService) RegisterFreelance(ctx context.Context, req dto.RegisterFreelanceRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	skills, err := s.repos.Skill.GetByIDs(ctx, req.SkillIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRoleFreelance,
		IsActive:     true,
	}

	err = s.tx.Do(ctx, func(r *repositories.Repos) error {
		if err := r.User.Create(ctx, user); err != nil {
			if apperrors.Is(err, repositories.ErrDuplicate) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}
		freelance := &models.Freelance{
			UserID:           user.ID,
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			JobTitle:         req.JobTitle,
			AverageDailyRate: req.AverageDailyRate,
			Location:         req.Location,
			Skills:           skills,
		}
		if err := r.Freelance.Create(ctx, freelance); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "freelance registered", "user_id", user.ID)
	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repos.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsActive || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueToken(user)
}

func (s *AuthService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repos.User.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}
