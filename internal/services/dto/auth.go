package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterCompanyRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required,max=100"`
	CompanyName string `json:"companyName" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
	SiretNumber string `json:"siretNumber" validate:"max=14"`
	Address     string `json:"address" validate:"max=300"`
}

type RegisterFreelanceRequest struct {
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8"`
	Name             string   `json:"name" validate:"required,max=100"`
	FirstName        string   `json:"firstName" validate:"required,max=100"`
	LastName         string   `json:"lastName" validate:"required,max=100"`
	JobTitle         string   `json:"jobTitle" validate:"max=150"`
	AverageDailyRate float64  `json:"averageDailyRate" validate:"gte=0"`
	Location         string   `json:"location" validate:"max=150"`
	SkillIDs         []string `json:"skillIds" validate:"dive,uuid"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
