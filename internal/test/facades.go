package test

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn func(context.Context, string, string) (*model.User, string, error)
	LoginFn    func(context.Context, string, string) (*model.User, string, error)
	ParseFn    func(string) (int64, error)
}

// Register returns a session for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, secret string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, secret)
	}
	return &model.User{ID: 1, Name: name}, "token", nil
}

// Login returns a session for successful login scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, name, secret string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, name, secret)
	}
	return &model.User{ID: 1, Name: name}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// SampleProperty returns a catalog entry for tests.
func SampleProperty() model.Property {
	return model.Property{
		ID:           1,
		Location:     "New York",
		NightlyPrice: decimal.NewFromInt(150),
		Amenities:    []string{"WiFi", "Parking"},
		Available:    true,
	}
}

// SampleBooking returns a two night booking of SampleProperty.
func SampleBooking(customerID int64) model.Booking {
	return model.Booking{
		ID:         1,
		PropertyID: 1,
		Location:   "New York",
		CustomerID: customerID,
		CheckIn:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Nights:     2,
		TotalPrice: decimal.NewFromInt(300),
		CreatedAt:  time.Unix(0, 0).UTC(),
	}
}

// CatalogFacadeStub provides controllable catalog behaviour.
type CatalogFacadeStub struct {
	Items      []model.Property
	PropertyFn func(context.Context, int64) (*model.Property, error)
}

// Properties yields configured items or the sample property.
func (s CatalogFacadeStub) Properties(context.Context) iter.Seq[model.Property] {
	items := s.Items
	if items == nil {
		items = []model.Property{SampleProperty()}
	}
	return slices.Values(items)
}

// Property delegates to PropertyFn or returns the sample property.
func (s CatalogFacadeStub) Property(ctx context.Context, id int64) (*model.Property, error) {
	if s.PropertyFn != nil {
		return s.PropertyFn(ctx, id)
	}
	p := SampleProperty()
	p.ID = id
	return &p, nil
}

// BookingFacadeStub simulates booking and payment operations.
type BookingFacadeStub struct {
	CreateFn   func(context.Context, int64, int64, string, string) (*model.Booking, error)
	BookingsFn func(context.Context, int64) ([]model.Booking, error)
	CheckoutFn func(context.Context, int64, int64) (*model.Booking, error)
	PaymentFn  func(context.Context, int64, int64) (*model.Payment, error)
}

// CreateBooking delegates to CreateFn or returns the sample booking.
func (s BookingFacadeStub) CreateBooking(ctx context.Context, customerID, propertyID int64, checkIn, checkOut string) (*model.Booking, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerID, propertyID, checkIn, checkOut)
	}
	b := SampleBooking(customerID)
	b.PropertyID = propertyID
	return &b, nil
}

// Bookings returns configured bookings or a single sample booking.
func (s BookingFacadeStub) Bookings(ctx context.Context, customerID int64) ([]model.Booking, error) {
	if s.BookingsFn != nil {
		return s.BookingsFn(ctx, customerID)
	}
	return []model.Booking{SampleBooking(customerID)}, nil
}

// Checkout delegates to CheckoutFn or returns the sample booking.
func (s BookingFacadeStub) Checkout(ctx context.Context, customerID, bookingID int64) (*model.Booking, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, customerID, bookingID)
	}
	b := SampleBooking(customerID)
	b.ID = bookingID
	return &b, nil
}

// ProcessPayment delegates to PaymentFn or completes a payment for the sample booking.
func (s BookingFacadeStub) ProcessPayment(ctx context.Context, customerID, bookingID int64) (*model.Payment, error) {
	if s.PaymentFn != nil {
		return s.PaymentFn(ctx, customerID, bookingID)
	}
	b := SampleBooking(customerID)
	b.ID = bookingID
	p := model.NewPayment(b)
	p.ID = 1
	p.Complete(time.Unix(0, 0).UTC())
	return &p, nil
}

// HistoryFacadeStub returns configured history.
type HistoryFacadeStub struct {
	HistoryFn func(context.Context, int64) (*model.History, error)
}

// History delegates to HistoryFn or returns an empty history.
func (s HistoryFacadeStub) History(ctx context.Context, customerID int64) (*model.History, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, customerID)
	}
	return &model.History{}, nil
}

// FacadeStub aggregates facade dependencies for HTTP and console tests.
type FacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	BookingFacadeStub
	HistoryFacadeStub
}
