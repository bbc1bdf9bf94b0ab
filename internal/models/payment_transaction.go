package models

import (
	"gorm.io/datatypes"
)

// PaymentTransaction is the audit trail of gateway calls for a job posting.
// The refund path looks up the latest succeeded charge here.
type PaymentTransaction struct {
	BaseModel
	JobPostingID    string            `gorm:"index;not null" json:"job_posting_id"`
	Type            TransactionType   `gorm:"not null" json:"type"`
	Amount          float64           `gorm:"not null" json:"amount"`
	Status          TransactionStatus `gorm:"not null;default:'pending'" json:"status"`
	ChargeID        string            `gorm:"index" json:"charge_id"`
	RefundID        *string           `json:"refund_id,omitempty"`
	GatewayResponse datatypes.JSON    `gorm:"type:jsonb" json:"gateway_response,omitempty"`
}
