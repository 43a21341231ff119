package repository

import (
	"context"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// UserRepository describes the identity store.
type UserRepository interface {
	Create(ctx context.Context, name, digest string) (*model.User, error)
	// ListByName returns users registered under name in registration order.
	ListByName(ctx context.Context, name string) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
