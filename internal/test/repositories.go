package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users []model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Next: 1}
}

// Create appends user unless stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, digest string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := model.User{ID: s.Next, Name: name, SecretDigest: digest}
	s.Next++
	s.Users = append(s.Users, user)
	return &user, nil
}

// ListByName returns users registered under name in insertion order.
func (s *UserRepositoryStub) ListByName(ctx context.Context, name string) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for _, u := range s.Users {
		if u.Name == name {
			result = append(result, u)
		}
	}
	return result, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// EventSinkStub records enqueued events.
type EventSinkStub struct {
	Reject bool

	mu     sync.Mutex
	events []model.Event
}

// Enqueue stores the event unless Reject is set.
func (s *EventSinkStub) Enqueue(ev model.Event) bool {
	if s.Reject {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return true
}

// Events returns a copy of recorded events.
func (s *EventSinkStub) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Event(nil), s.events...)
}

// Types returns the types of recorded events in order.
func (s *EventSinkStub) Types() []model.EventType {
	var types []model.EventType
	for _, ev := range s.Events() {
		types = append(types, ev.Type)
	}
	return types
}
