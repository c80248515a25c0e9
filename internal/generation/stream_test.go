package generation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation/generationtest"
)

func collect(t *testing.T, s *generation.Stream) []generation.Event {
	t.Helper()
	var events []generation.Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("stream did not terminate")
		}
	}
}

func TestStream(t *testing.T) {
	t.Run("FragmentsThenDone", func(t *testing.T) {
		s := generation.NewStream(context.Background(), func(ctx context.Context, emit func(string) bool) error {
			emit("Hel")
			emit("lo")
			return nil
		})

		events := collect(t, s)
		if len(events) != 3 {
			t.Fatalf("got %d events, want 3", len(events))
		}
		if events[0].Text != "Hel" || events[1].Text != "lo" {
			t.Errorf("fragments out of order: %q %q", events[0].Text, events[1].Text)
		}
		if events[2].Kind != generation.EventDone {
			t.Errorf("terminal event = %s, want done", events[2].Kind)
		}
	})

	t.Run("ErrorTerminates", func(t *testing.T) {
		boom := errors.New("boom")
		s := generation.NewStream(context.Background(), func(ctx context.Context, emit func(string) bool) error {
			emit("partial")
			return boom
		})

		events := collect(t, s)
		last := events[len(events)-1]
		if last.Kind != generation.EventError || !errors.Is(last.Err, boom) {
			t.Errorf("terminal event = %+v, want error boom", last)
		}
	})

	t.Run("CancelStopsProducer", func(t *testing.T) {
		started := make(chan struct{})
		s := generation.NewStream(context.Background(), func(ctx context.Context, emit func(string) bool) error {
			close(started)
			<-ctx.Done()
			if emit("late") {
				t.Error("emit succeeded after cancel")
			}
			return nil
		})

		<-started
		s.Cancel()

		events := collect(t, s)
		if len(events) != 1 || events[0].Kind != generation.EventError {
			t.Fatalf("events = %+v, want a single error event", events)
		}
		if !errors.Is(events[0].Err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", events[0].Err)
		}
	})

	t.Run("Failed", func(t *testing.T) {
		events := collect(t, generation.Failed(context.Background(), generation.ErrUnavailable))
		if len(events) != 1 || !errors.Is(events[0].Err, generation.ErrUnavailable) {
			t.Errorf("events = %+v, want single unavailable error", events)
		}
	})
}

func TestInstrumentRelaysStream(t *testing.T) {
	fake := &generationtest.Fake{Fragments: []string{"a", "b", "c"}}
	g := generation.Instrument(fake)

	if generation.Instrument(g) != g {
		t.Error("Instrument should not wrap twice")
	}

	events := collect(t, g.StreamChat(context.Background(), generation.ChatRequest{Message: "hi"}))
	var text string
	for _, ev := range events[:len(events)-1] {
		text += ev.Text
	}
	if text != "abc" {
		t.Errorf("relayed text = %q, want abc", text)
	}
	if events[len(events)-1].Kind != generation.EventDone {
		t.Errorf("terminal event = %s, want done", events[len(events)-1].Kind)
	}

	req, ok := fake.LastChatRequest()
	if !ok || req.Message != "hi" {
		t.Errorf("chat request not forwarded: %+v", req)
	}
}

func TestInstrumentPassesErrors(t *testing.T) {
	boom := errors.New("upstream down")
	g := generation.Instrument(&generationtest.Fake{TextErr: boom, StreamErr: boom})

	if _, err := g.Generate(context.Background(), "p"); !errors.Is(err, boom) {
		t.Errorf("Generate err = %v, want %v", err, boom)
	}

	events := collect(t, g.StreamChat(context.Background(), generation.ChatRequest{}))
	if last := events[len(events)-1]; last.Kind != generation.EventError || !errors.Is(last.Err, boom) {
		t.Errorf("terminal event = %+v, want upstream error", last)
	}
}
