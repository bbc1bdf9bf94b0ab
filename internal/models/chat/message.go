package chat

import "time"

// Message ordering by CreatedAt defines display order.
type Message struct {
	ID             string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ConversationID string  `gorm:"index;not null" json:"conversation_id"`
	SenderID       string  `gorm:"index;not null" json:"sender_id"`
	ReceiverID     string  `gorm:"not null" json:"receiver_id"`
	Content        string  `gorm:"type:text" json:"content"`
	DocumentID     *string `gorm:"index" json:"document_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "chat.messages"
}
