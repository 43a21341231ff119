package repository

import (
	"context"
	"iter"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// PropertyRepository provides access to the catalog.
type PropertyRepository interface {
	// ListAvailable yields available properties in catalog order. The sequence
	// reads the catalog each time it is ranged over.
	ListAvailable(ctx context.Context) iter.Seq[model.Property]
	FindAvailable(ctx context.Context, id int64) (*model.Property, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}
