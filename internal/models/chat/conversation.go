package chat

import "time"

// Conversation links the two project parties. Sender and receiver are the
// owning user ids of the company and the freelance; ProjectID is backfilled
// right after the project row exists.
type Conversation struct {
	ID         string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SenderID   string  `gorm:"index;not null" json:"sender_id"`
	ReceiverID string  `gorm:"index;not null" json:"receiver_id"`
	ProjectID  *string `gorm:"index" json:"project_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "chat.conversations"
}

// HasParticipant reports whether the user is one of the two parties.
func (c *Conversation) HasParticipant(userID string) bool {
	return userID != "" && (c.SenderID == userID || c.ReceiverID == userID)
}

// OtherParticipant returns the counterpart of the given user, or "" when the
// user is not a participant.
func (c *Conversation) OtherParticipant(userID string) string {
	switch userID {
	case c.SenderID:
		return c.ReceiverID
	case c.ReceiverID:
		return c.SenderID
	default:
		return ""
	}
}
