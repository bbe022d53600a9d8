package audit

import (
	"context"
	"log/slog"
	"sync"
)

const (
	ActionAccountCreated     = "account_created"
	ActionAccountUpdated     = "account_updated"
	ActionAccountDeleted     = "account_deleted"
	ActionEventCreated       = "event_created"
	ActionEventUpdated       = "event_updated"
	ActionEventStatusChanged = "event_status_changed"
	ActionEventDeleted       = "event_deleted"
	ActionCateringCreated    = "catering_created"
	ActionCateringUpdated    = "catering_updated"
	ActionCateringDeleted    = "catering_deleted"
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher hands events to a single background worker so audit writes
// never hold up a request.
type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}
	once  sync.Once
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			slog.Error("audit write failed",
				slog.String("action", ev.Action),
				slog.Any("error", err),
			)
		}
	}
}

// Dispatch drops the event when the queue is full. A nil dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close flushes queued events and stops the worker.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
