package memory

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory. Every ledger is
// an ordered slice keyed by a sequential identifier that is never reused.
type Storage struct {
	mu     sync.RWMutex
	logger *slog.Logger
	now    func() time.Time

	users      []model.User
	properties []model.Property
	bookings   []model.Booking
	payments   []model.Payment

	lastUserID    int64
	lastBookingID int64
	lastPaymentID int64
}

type userRepository struct {
	storage *Storage
}

type propertyRepository struct {
	storage *Storage
}

type bookingRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// New creates storage seeded with the given catalog.
func New(catalog []model.Property, logger *slog.Logger) *Storage {
	properties := make([]model.Property, 0, len(catalog))
	for _, p := range catalog {
		properties = append(properties, p.Clone())
	}
	return &Storage{
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
		properties: properties,
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Properties() repository.PropertyRepository {
	return &propertyRepository{storage: s}
}

func (s *Storage) Bookings() repository.BookingRepository {
	return &bookingRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

// WithinTransaction executes fn while holding the write lock, so the changes it
// makes are observed by other callers all at once. fn must validate before it
// mutates: nothing is rolled back on error.
func (s *Storage) WithinTransaction(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Storage) read(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
	return nil
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

// propertyIndex must be called with the lock held.
func (s *Storage) propertyIndex(id int64) int {
	return slices.IndexFunc(s.properties, func(p model.Property) bool { return p.ID == id })
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, digest string) (*model.User, error) {
	var u model.User
	err := r.storage.WithinTransaction(ctx, func() error {
		r.storage.lastUserID++
		u = model.User{
			ID:           r.storage.lastUserID,
			Name:         name,
			SecretDigest: digest,
			CreatedAt:    r.storage.now(),
		}
		r.storage.users = append(r.storage.users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ListByName(ctx context.Context, name string) ([]model.User, error) {
	var result []model.User
	err := r.storage.read(ctx, func() {
		for _, u := range r.storage.users {
			if u.Name == name {
				result = append(result, u)
			}
		}
	})
	return result, err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var (
		u     model.User
		found bool
	)
	err := r.storage.read(ctx, func() {
		i := slices.IndexFunc(r.storage.users, func(u model.User) bool { return u.ID == id })
		if i >= 0 {
			u, found = r.storage.users[i], true
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return &u, nil
}

// --- PropertyRepository implementation ---

func (r *propertyRepository) ListAvailable(ctx context.Context) iter.Seq[model.Property] {
	return func(yield func(model.Property) bool) {
		var snapshot []model.Property
		err := r.storage.read(ctx, func() {
			for _, p := range r.storage.properties {
				if p.Available {
					snapshot = append(snapshot, p.Clone())
				}
			}
		})
		if err != nil {
			return
		}
		for _, p := range snapshot {
			if ctx.Err() != nil || !yield(p) {
				return
			}
		}
	}
}

func (r *propertyRepository) FindAvailable(ctx context.Context, id int64) (*model.Property, error) {
	var (
		p     model.Property
		found bool
	)
	err := r.storage.read(ctx, func() {
		if i := r.storage.propertyIndex(id); i >= 0 && r.storage.properties[i].Available {
			p, found = r.storage.properties[i].Clone(), true
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrUnavailable
	}
	return &p, nil
}

func (r *propertyRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.storage.WithinTransaction(ctx, func() error {
		i := r.storage.propertyIndex(id)
		if i < 0 {
			return domainErrors.ErrNotFound
		}
		r.storage.properties[i].Available = available
		return nil
	})
}

// --- BookingRepository implementation ---

func (r *bookingRepository) Create(ctx context.Context, customerID, propertyID int64, stay model.Stay) (*model.Booking, error) {
	var b model.Booking
	err := r.storage.WithinTransaction(ctx, func() error {
		i := r.storage.propertyIndex(propertyID)
		if i < 0 || !r.storage.properties[i].Available {
			return domainErrors.ErrUnavailable
		}
		prop := &r.storage.properties[i]

		r.storage.lastBookingID++
		b = model.Booking{
			ID:         r.storage.lastBookingID,
			PropertyID: prop.ID,
			Location:   prop.Location,
			CustomerID: customerID,
			CheckIn:    stay.CheckIn,
			CheckOut:   stay.CheckOut,
			Nights:     stay.Nights(),
			TotalPrice: stay.Total(prop.NightlyPrice),
			CreatedAt:  r.storage.now(),
		}
		r.storage.bookings = append(r.storage.bookings, b)
		prop.Available = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Remove(ctx context.Context, customerID, bookingID int64) (*model.Booking, error) {
	var b model.Booking
	err := r.storage.WithinTransaction(ctx, func() error {
		i := slices.IndexFunc(r.storage.bookings, func(b model.Booking) bool {
			return b.ID == bookingID && b.CustomerID == customerID
		})
		if i < 0 {
			return domainErrors.ErrNotFound
		}
		b = r.storage.bookings[i]
		if p := r.storage.propertyIndex(b.PropertyID); p >= 0 {
			r.storage.properties[p].Available = true
		} else {
			r.storage.logger.Warn("booked property missing from catalog",
				slog.Int64("booking_id", b.ID), slog.Int64("property_id", b.PropertyID))
		}
		r.storage.bookings = slices.Delete(r.storage.bookings, i, i+1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) GetForCustomer(ctx context.Context, customerID, bookingID int64) (*model.Booking, error) {
	var (
		b     model.Booking
		found bool
	)
	err := r.storage.read(ctx, func() {
		for _, candidate := range r.storage.bookings {
			if candidate.ID == bookingID && candidate.CustomerID == customerID {
				b, found = candidate, true
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return &b, nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Booking, error) {
	var result []model.Booking
	err := r.storage.read(ctx, func() {
		for _, b := range r.storage.bookings {
			if b.CustomerID == customerID {
				result = append(result, b)
			}
		}
	})
	return result, err
}

// --- PaymentRepository implementation ---

func (r *paymentRepository) Create(ctx context.Context, payment model.Payment) (*model.Payment, error) {
	err := r.storage.WithinTransaction(ctx, func() error {
		r.storage.lastPaymentID++
		payment.ID = r.storage.lastPaymentID
		r.storage.payments = append(r.storage.payments, payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Payment, error) {
	var result []model.Payment
	err := r.storage.read(ctx, func() {
		for _, p := range r.storage.payments {
			if p.CustomerID() == customerID {
				result = append(result, p)
			}
		}
	})
	return result, err
}
