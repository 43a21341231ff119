package repository

import (
	"context"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// PaymentRepository describes the payment ledger.
type PaymentRepository interface {
	Create(ctx context.Context, payment model.Payment) (*model.Payment, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Payment, error)
}
