package audit

import "go.uber.org/zap"

type Event struct {
	ClinicID *uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists audit events.
type Sink interface {
	Log(ev Event) error
}

// Dispatcher writes events off the request path. Audit must never fail or
// slow down a booking: when the queue is full the event is dropped.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains pending events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
