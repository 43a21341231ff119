package handlers

import (
	"context"
	"iter"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, secret string) (*model.User, string, error)
	Login(ctx context.Context, name, secret string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade exposes the property catalog.
type CatalogFacade interface {
	Properties(ctx context.Context) iter.Seq[model.Property]
	Property(ctx context.Context, id int64) (*model.Property, error)
}

// BookingFacade encapsulates booking and payment operations exposed via HTTP.
type BookingFacade interface {
	CreateBooking(ctx context.Context, customerID, propertyID int64, checkIn, checkOut string) (*model.Booking, error)
	Bookings(ctx context.Context, customerID int64) ([]model.Booking, error)
	Checkout(ctx context.Context, customerID, bookingID int64) (*model.Booking, error)
	ProcessPayment(ctx context.Context, customerID, bookingID int64) (*model.Payment, error)
}

// HistoryFacade returns what a customer has on record.
type HistoryFacade interface {
	History(ctx context.Context, customerID int64) (*model.History, error)
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	AuthFacade
	CatalogFacade
	BookingFacade
	HistoryFacade
}
