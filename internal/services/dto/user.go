package dto

import (
	"time"

	"freehunt_backend/internal/models"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

type CompanyResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	SiretNumber string        `json:"siretNumber,omitempty"`
	Address     string        `json:"address,omitempty"`
	User        *UserResponse `json:"user,omitempty"`
}

func NewCompanyResponse(company *models.Company) CompanyResponse {
	resp := CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		SiretNumber: company.SiretNumber,
		Address:     company.Address,
	}
	if company.User.ID != "" {
		user := NewUserResponse(&company.User)
		resp.User = &user
	}
	return resp
}

type SkillResponse struct {
	ID   string           `json:"id"`
	Name string           `json:"name"`
	Type models.SkillType `json:"type"`
}

func NewSkillResponse(skill *models.Skill) SkillResponse {
	return SkillResponse{ID: skill.ID, Name: skill.Name, Type: skill.Type}
}

func NewSkillResponses(skills []models.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for i := range skills {
		out = append(out, NewSkillResponse(&skills[i]))
	}
	return out
}

type FreelanceResponse struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	JobTitle         string          `json:"jobTitle,omitempty"`
	AverageDailyRate float64         `json:"averageDailyRate"`
	Location         string          `json:"location,omitempty"`
	Skills           []SkillResponse `json:"skills,omitempty"`
	User             *UserResponse   `json:"user,omitempty"`
}

func NewFreelanceResponse(freelance *models.Freelance) FreelanceResponse {
	resp := FreelanceResponse{
		ID:               freelance.ID,
		FirstName:        freelance.FirstName,
		LastName:         freelance.LastName,
		JobTitle:         freelance.JobTitle,
		AverageDailyRate: freelance.AverageDailyRate,
		Location:         freelance.Location,
		Skills:           NewSkillResponses(freelance.Skills),
	}
	if freelance.User.ID != "" {
		user := NewUserResponse(&freelance.User)
		resp.User = &user
	}
	return resp
}

type UpdateFreelanceRequest struct {
	FirstName        *string  `json:"firstName" validate:"omitempty,max=100"`
	LastName         *string  `json:"lastName" validate:"omitempty,max=100"`
	JobTitle         *string  `json:"jobTitle" validate:"omitempty,max=150"`
	AverageDailyRate *float64 `json:"averageDailyRate" validate:"omitempty,gte=0"`
	Location         *string  `json:"location" validate:"omitempty,max=150"`
	SkillIDs         []string `json:"skillIds" validate:"omitempty,dive,uuid"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=150"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	SiretNumber *string `json:"siretNumber" validate:"omitempty,max=14"`
	Address     *string `json:"address" validate:"omitempty,max=300"`
}

type CreateSkillRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,oneof=technical soft"`
}
