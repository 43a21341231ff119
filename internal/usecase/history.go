package usecase

import (
	"context"

	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/domain/repository"
)

// HistoryUseCase assembles what a customer has on record.
type HistoryUseCase struct {
	bookings repository.BookingRepository
	payments repository.PaymentRepository
}

// NewHistoryUseCase constructs HistoryUseCase.
func NewHistoryUseCase(bookings repository.BookingRepository, payments repository.PaymentRepository) *HistoryUseCase {
	return &HistoryUseCase{bookings: bookings, payments: payments}
}

// History returns live bookings and all payments of the customer.
func (u *HistoryUseCase) History(ctx context.Context, customerID int64) (*model.History, error) {
	bookings, err := u.bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &model.History{Bookings: bookings, Payments: payments}, nil
}
