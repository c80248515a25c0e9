package generation

import (
	"context"

	"github.com/google/uuid"
)

type EventKind int

const (
	EventFragment EventKind = iota
	EventDone
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventFragment:
		return "fragment"
	case EventDone:
		return "done"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	Text string
	Err  error
}

// Producer pushes fragments through emit in order. emit reports false once the
// stream has been cancelled and the producer should return.
type Producer func(ctx context.Context, emit func(fragment string) bool) error

// Stream is a cancellable subscription of ordered fragment events terminated by
// exactly one EventDone or EventError, after which the channel is closed.
// The subscriber must drain Events until it is closed.
type Stream struct {
	ID     uuid.UUID
	events chan Event
	cancel context.CancelFunc
}

func NewStream(ctx context.Context, produce Producer) *Stream {
	ctx, cancel := context.WithCancel(ctx)
	s := &Stream{
		ID:     uuid.New(),
		events: make(chan Event, 16),
		cancel: cancel,
	}

	go func() {
		defer close(s.events)
		defer cancel()

		emit := func(fragment string) bool {
			select {
			case <-ctx.Done():
				return false
			default:
			}
			select {
			case s.events <- Event{Kind: EventFragment, Text: fragment}:
				return true
			case <-ctx.Done():
				return false
			}
		}

		err := produce(ctx, emit)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			s.events <- Event{Kind: EventError, Err: err}
			return
		}
		s.events <- Event{Kind: EventDone}
	}()

	return s
}

// Failed returns a stream that terminates immediately with err.
func Failed(ctx context.Context, err error) *Stream {
	return NewStream(ctx, func(context.Context, func(string) bool) error {
		return err
	})
}

func (s *Stream) Events() <-chan Event {
	return s.events
}

func (s *Stream) Cancel() {
	s.cancel()
}
