package models

type Company struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	SiretNumber string `json:"siret_number"`
	Address     string `json:"address"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
