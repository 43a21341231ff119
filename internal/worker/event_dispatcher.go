package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/staybook/internal/adapter/events"
	"github.com/polkiloo/staybook/internal/domain/model"
)

const publishTimeout = 5 * time.Second

// EventDispatcher delivers domain events to a publisher from a pool of workers.
// Enqueue never blocks the caller; Stop drains what is already queued.
type EventDispatcher struct {
	publisher events.Publisher
	workers   int
	logger    *slog.Logger

	jobs    chan model.Event
	wg      sync.WaitGroup
	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewEventDispatcher constructs event dispatcher worker pool.
func NewEventDispatcher(publisher events.Publisher, buffer, workers int, logger *slog.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 1
	}
	return &EventDispatcher{
		publisher: publisher,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan model.Event, buffer),
	}
}

// Start launches background publishing. ctx bounds individual publish calls.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
}

// Stop closes the queue and waits for workers to publish remaining events.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue schedules ev for publishing. It reports false when the dispatcher is
// stopped or the buffer is full.
func (d *EventDispatcher) Enqueue(ev model.Event) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.logger.Warn("event dropped, dispatcher stopped", slog.String("type", string(ev.Type)))
		return false
	}
	select {
	case d.jobs <- ev:
		return true
	default:
		d.logger.Warn("event dropped, buffer full",
			slog.String("type", string(ev.Type)),
			slog.Int64("booking_id", ev.BookingID))
		return false
	}
}

func (d *EventDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for ev := range d.jobs {
		d.handleEvent(ctx, ev)
	}
}

func (d *EventDispatcher) handleEvent(ctx context.Context, ev model.Event) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(publishCtx, ev); err != nil {
		d.logger.Error("publish event failed",
			slog.String("type", string(ev.Type)),
			slog.Int64("booking_id", ev.BookingID),
			slog.String("error", err.Error()))
	}
}
