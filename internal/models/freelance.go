package models

type Freelance struct {
	BaseModel
	UserID           string  `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName        string  `gorm:"not null" json:"first_name"`
	LastName         string  `gorm:"not null" json:"last_name"`
	JobTitle         string  `json:"job_title"`
	AverageDailyRate float64 `gorm:"default:0" json:"average_daily_rate"`
	Location         string  `json:"location"`

	User   User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skills []Skill `gorm:"many2many:freelance_skills" json:"skills,omitempty"`
}
