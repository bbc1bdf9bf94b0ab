package repositories

import (
	"context"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentTransactionRepository interface {
	Create(ctx context.Context, tx *models.PaymentTransaction) error
	Update(ctx context.Context, tx *models.PaymentTransaction) error
	ListByJobPosting(ctx context.Context, jobPostingID string) ([]models.PaymentTransaction, error)
	// LatestSucceededCharge finds the charge a cancellation should refund.
	LatestSucceededCharge(ctx context.Context, jobPostingID string) (*models.PaymentTransaction, error)
}

type paymentTransactionRepository struct {
	db *gorm.DB
}

func NewPaymentTransactionRepository(db *gorm.DB) PaymentTransactionRepository {
	return &paymentTransactionRepository{db: db}
}

func (r *paymentTransactionRepository) Create(ctx context.Context, tx *models.PaymentTransaction) error {
	return translate(r.db.WithContext(ctx).Create(tx).Error)
}

func (r *paymentTransactionRepository) Update(ctx context.Context, tx *models.PaymentTransaction) error {
	return translate(r.db.WithContext(ctx).Save(tx).Error)
}

func (r *paymentTransactionRepository) ListByJobPosting(ctx context.Context, jobPostingID string) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("job_posting_id = ?", jobPostingID).
		Order("created_at desc").
		Find(&txs).Error
	if err != nil {
		return nil, translate(err)
	}
	return txs, nil
}

func (r *paymentTransactionRepository) LatestSucceededCharge(ctx context.Context, jobPostingID string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("job_posting_id = ? AND type = ? AND status = ?",
			jobPostingID, models.TransactionTypeCharge, models.TransactionStatusSucceeded).
		Order("created_at desc").
		First(&tx).Error
	if err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}
