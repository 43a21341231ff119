package test

import (
	"context"
	"sync"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// PublisherStub records published events.
type PublisherStub struct {
	PublishFn func(context.Context, model.Event) error

	mu        sync.Mutex
	published []model.Event
	closed    bool
}

// Publish records the event unless PublishFn overrides it.
func (p *PublisherStub) Publish(ctx context.Context, ev model.Event) error {
	if p.PublishFn != nil {
		if err := p.PublishFn(ctx, ev); err != nil {
			return err
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, ev)
	return nil
}

// Close marks the stub closed.
func (p *PublisherStub) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Published returns a copy of recorded events.
func (p *PublisherStub) Published() []model.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Event(nil), p.published...)
}

// Closed reports whether Close was called.
func (p *PublisherStub) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
