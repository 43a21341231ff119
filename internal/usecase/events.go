package usecase

import "github.com/polkiloo/staybook/internal/domain/model"

// EventSink accepts domain events for asynchronous delivery. Enqueue must not
// block; it reports false when the event was dropped.
type EventSink interface {
	Enqueue(ev model.Event) bool
}

type discardSink struct{}

func (discardSink) Enqueue(model.Event) bool { return false }

func sinkOrDiscard(sink EventSink) EventSink {
	if sink == nil {
		return discardSink{}
	}
	return sink
}
