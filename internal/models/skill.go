package models

type Skill struct {
	BaseModel
	Name string    `gorm:"uniqueIndex;not null" json:"name"`
	Type SkillType `gorm:"not null;default:'technical'" json:"type"`
}
