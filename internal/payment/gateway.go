package payment

import "context"

// ChargeResult is the gateway's answer to a charge attempt. ChargeID is only
// set when Success is true.
type ChargeResult struct {
	Success  bool
	ChargeID string
	Message  string
}

// RefundResult reports the outcome of refunding a previous charge.
type RefundResult struct {
	Success  bool
	RefundID string
	Amount   float64
	Status   string
	Message  string
}

// Gateway abstracts the payment provider so services and tests never touch
// HTTP directly.
type Gateway interface {
	Charge(ctx context.Context, orderID string, amount float64, description string) (*ChargeResult, error)
	Refund(ctx context.Context, chargeID string, amount float64) (*RefundResult, error)
}
