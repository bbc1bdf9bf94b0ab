package services

import (
	"context"

	"freehunt_backend/internal/models"
	"freehunt_backend/internal/repositories"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) GetCompanyProfile(ctx context.Context, userID string) (*dto.CompanyResponse, error) {
	company, err := s.repos.Company.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *UserService) GetFreelanceProfile(ctx context.Context, userID string) (*dto.FreelanceResponse, error) {
	freelance, err := s.repos.Freelance.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewFreelanceResponse(freelance)
	return &resp, nil
}

func (s *UserService) GetFreelanceByID(ctx context.Context, id string) (*dto.FreelanceResponse, error) {
	freelance, err := s.repos.Freelance.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewFreelanceResponse(freelance)
	return &resp, nil
}

func (s *UserService) UpdateCompanyProfile(ctx context.Context, userID string, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.repos.Company.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.SiretNumber != nil {
		company.SiretNumber = *req.SiretNumber
	}
	if req.Address != nil {
		company.Address = *req.Address
	}

	if err := s.repos.Company.Update(ctx, company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *UserService) UpdateFreelanceProfile(ctx context.Context, userID string, req dto.UpdateFreelanceRequest) (*dto.FreelanceResponse, error) {
	freelance, err := s.repos.Freelance.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		freelance.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		freelance.LastName = *req.LastName
	}
	if req.JobTitle != nil {
		freelance.JobTitle = *req.JobTitle
	}
	if req.AverageDailyRate != nil {
		freelance.AverageDailyRate = *req.AverageDailyRate
	}
	if req.Location != nil {
		freelance.Location = *req.Location
	}

	if err := s.repos.Freelance.Update(ctx, freelance); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.SkillIDs != nil {
		skills, err := s.repos.Skill.GetByIDs(ctx, req.SkillIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if err := s.repos.Freelance.ReplaceSkills(ctx, freelance, skills); err != nil {
			return nil, apperrors.InternalError(err)
		}
		freelance.Skills = skills
	}

	resp := dto.NewFreelanceResponse(freelance)
	return &resp, nil
}

func (s *UserService) ListSkills(ctx context.Context) ([]dto.SkillResponse, error) {
	skills, err := s.repos.Skill.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSkillResponses(skills), nil
}

// CreateSkill is admin-only, enforced at the route level.
func (s *UserService) CreateSkill(ctx context.Context, req dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	skill := &models.Skill{Name: req.Name, Type: models.SkillType(req.Type)}
	if err := s.repos.Skill.Create(ctx, skill); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewSkillResponse(skill)
	return &resp, nil
}
