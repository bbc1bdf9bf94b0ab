package models

// User is the authentication identity. Company and Freelance profiles hang
// off it 1:1 depending on the role.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"not null" json:"name"`
	Role         UserRole `gorm:"not null" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
}
