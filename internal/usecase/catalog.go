package usecase

import (
	"context"
	"iter"

	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/domain/repository"
)

// CatalogUseCase exposes the property catalog.
type CatalogUseCase struct {
	properties repository.PropertyRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(properties repository.PropertyRepository) *CatalogUseCase {
	return &CatalogUseCase{properties: properties}
}

// ListAvailable yields available properties in catalog order. Ranging over the
// result again reflects the catalog at that moment.
func (u *CatalogUseCase) ListAvailable(ctx context.Context) iter.Seq[model.Property] {
	return u.properties.ListAvailable(ctx)
}

// FindAvailable returns the property with id if it can currently be booked.
func (u *CatalogUseCase) FindAvailable(ctx context.Context, id int64) (*model.Property, error) {
	return u.properties.FindAvailable(ctx, id)
}

// SetAvailability flips the availability flag of a property. Bookings do not
// go through here: the booking repository flips the flag inside the same
// transaction that adds or removes the booking.
func (u *CatalogUseCase) SetAvailability(ctx context.Context, id int64, available bool) error {
	return u.properties.SetAvailability(ctx, id, available)
}
