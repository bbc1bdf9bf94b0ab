package models

import (
	"gorm.io/datatypes"
)

type JobPosting struct {
	BaseModel
	CompanyID        string           `gorm:"index;not null" json:"company_id"`
	Title            string           `gorm:"not null" json:"title"`
	Description      string           `gorm:"type:text" json:"description"`
	Location         string           `json:"location"`
	IsPromoted       bool             `gorm:"default:false" json:"is_promoted"`
	AverageDailyRate float64          `gorm:"default:0" json:"average_daily_rate"`
	SeniorityYears   int              `gorm:"default:0" json:"seniority_years"`
	Status           JobPostingStatus `gorm:"not null;default:'draft'" json:"status"`
	Categories       datatypes.JSON   `gorm:"type:jsonb" json:"categories,omitempty"`
	CancelReason     *string          `json:"cancel_reason,omitempty"`

	Company     Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Skills      []Skill      `gorm:"many2many:job_posting_skills" json:"skills,omitempty"`
	Checkpoints []Checkpoint `gorm:"foreignKey:JobPostingID" json:"checkpoints,omitempty"`
}
