package app

import (
	"context"
	"fmt"

	"freehunt_backend/internal/payment"

	"github.com/google/uuid"
)

// StubPaymentGateway approves every charge and refund. Used in development
// when no merchant credentials are configured.
type StubPaymentGateway struct{}

func (g *StubPaymentGateway) Charge(_ context.Context, orderID string, amount float64, _ string) (*payment.ChargeResult, error) {
	return &payment.ChargeResult{
		Success:  true,
		ChargeID: fmt.Sprintf("stub-charge-%s-%s", orderID, uuid.NewString()[:8]),
		Message:  fmt.Sprintf("stub charge of %.2f approved", amount),
	}, nil
}

func (g *StubPaymentGateway) Refund(_ context.Context, chargeID string, amount float64) (*payment.RefundResult, error) {
	return &payment.RefundResult{
		Success:  true,
		RefundID: fmt.Sprintf("stub-refund-%s", uuid.NewString()[:8]),
		Amount:   amount,
		Status:   "succeeded",
		Message:  fmt.Sprintf("stub refund of charge %s approved", chargeID),
	}, nil
}
