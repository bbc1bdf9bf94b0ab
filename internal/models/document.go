package models

// Document is a pointer to an externally stored file that a message can
// reference. Upload and storage live outside this service.
type Document struct {
	BaseModel
	UserID string `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	URL    string `gorm:"not null" json:"url"`
}
