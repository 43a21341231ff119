package app

import (
	"context"
	"iter"

	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/usecase"
)

// BookingFacade is the single entry point the interfaces talk to.
type BookingFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	bookings *usecase.BookingUseCase
	payments *usecase.PaymentUseCase
	history  *usecase.HistoryUseCase
}

func NewBookingFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	bookings *usecase.BookingUseCase,
	payments *usecase.PaymentUseCase,
	history *usecase.HistoryUseCase,
) *BookingFacade {
	return &BookingFacade{auth: auth, catalog: catalog, bookings: bookings, payments: payments, history: history}
}

func (f *BookingFacade) Register(ctx context.Context, name, secret string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, secret)
}

func (f *BookingFacade) Login(ctx context.Context, name, secret string) (*model.User, string, error) {
	return f.auth.Login(ctx, name, secret)
}

func (f *BookingFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *BookingFacade) Properties(ctx context.Context) iter.Seq[model.Property] {
	return f.catalog.ListAvailable(ctx)
}

func (f *BookingFacade) Property(ctx context.Context, id int64) (*model.Property, error) {
	return f.catalog.FindAvailable(ctx, id)
}

func (f *BookingFacade) CreateBooking(ctx context.Context, customerID, propertyID int64, checkIn, checkOut string) (*model.Booking, error) {
	return f.bookings.Create(ctx, customerID, propertyID, checkIn, checkOut)
}

func (f *BookingFacade) Bookings(ctx context.Context, customerID int64) ([]model.Booking, error) {
	return f.bookings.ListFor(ctx, customerID)
}

// ProcessPayment pays for a live booking of the customer.
func (f *BookingFacade) ProcessPayment(ctx context.Context, customerID, bookingID int64) (*model.Payment, error) {
	return f.payments.ProcessFor(ctx, customerID, bookingID)
}

func (f *BookingFacade) Checkout(ctx context.Context, customerID, bookingID int64) (*model.Booking, error) {
	return f.bookings.Checkout(ctx, customerID, bookingID)
}

func (f *BookingFacade) History(ctx context.Context, customerID int64) (*model.History, error) {
	return f.history.History(ctx, customerID)
}
