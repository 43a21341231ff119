package repository

import (
	"context"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// BookingRepository describes the booking ledger.
type BookingRepository interface {
	// Create claims an available property and records the booking in one step.
	Create(ctx context.Context, customerID, propertyID int64, stay model.Stay) (*model.Booking, error)
	// Remove deletes a customer's booking and releases its property.
	Remove(ctx context.Context, customerID, bookingID int64) (*model.Booking, error)
	GetForCustomer(ctx context.Context, customerID, bookingID int64) (*model.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Booking, error)
}
