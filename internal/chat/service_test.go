package chat_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/saulo-duarte/omnilearn-lambda/internal/chat"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation/generationtest"
)

type recorder struct {
	mu     sync.Mutex
	states []chat.State
}

func (r *recorder) Publish(t events.Type, data any) {
	if t != events.TypeChat {
		return
	}
	r.mu.Lock()
	r.states = append(r.states, data.(chat.State))
	r.mu.Unlock()
}

func TestInitialGreeting(t *testing.T) {
	st := chat.NewService(&generationtest.Fake{}, nil, nil, false).State()
	if len(st.Messages) != 1 || st.Messages[0].Text != chat.Greeting || st.Messages[0].Role != chat.RoleAssistant {
		t.Errorf("messages = %+v", st.Messages)
	}
	if st.Typing {
		t.Error("typing should start false")
	}
}

func TestSendFoldsFragments(t *testing.T) {
	rec := &recorder{}
	fake := &generationtest.Fake{Fragments: []string{"Hel", "lo"}}
	svc := chat.NewService(fake, rec, nil, false)

	var seen []string
	reply, err := svc.Send(context.Background(), "hi", "ACID Properties", func(fragment string, m chat.Message) {
		seen = append(seen, m.Text)
	})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "Hello" || reply.Streaming {
		t.Errorf("reply = %+v", reply)
	}
	if len(seen) != 2 || seen[0] != "Hel" || seen[1] != "Hello" {
		t.Errorf("observed texts = %v", seen)
	}

	st := svc.State()
	if st.Typing || len(st.Messages) != 3 {
		t.Fatalf("state = %+v", st)
	}
	if st.Messages[1].Role != chat.RoleUser || st.Messages[1].Text != "hi" {
		t.Errorf("user message = %+v", st.Messages[1])
	}
	if st.Messages[2].Text != "Hello" {
		t.Errorf("assistant message = %+v", st.Messages[2])
	}
	for i := 1; i < len(st.Messages); i++ {
		if st.Messages[i].Timestamp <= st.Messages[i-1].Timestamp {
			t.Errorf("timestamps not increasing: %+v", st.Messages)
		}
	}

	req, ok := fake.LastChatRequest()
	if !ok || req.Message != "hi" || req.History != nil {
		t.Errorf("request = %+v", req)
	}
	if want := chat.SystemInstruction("ACID Properties"); req.SystemInstruction != want {
		t.Errorf("system instruction = %q", req.SystemInstruction)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.states) < 4 {
		t.Fatalf("published %d states, want one per fragment plus start and end", len(rec.states))
	}
	if !rec.states[0].Typing || rec.states[len(rec.states)-1].Typing {
		t.Error("typing flag should be set on start and cleared at the end")
	}
}

func TestSendStreamFailure(t *testing.T) {
	t.Run("NoFragments", func(t *testing.T) {
		svc := chat.NewService(&generationtest.Fake{StreamErr: errors.New("boom")}, nil, nil, false)
		reply, err := svc.Send(context.Background(), "hi", "", nil)
		if err != nil {
			t.Fatal(err)
		}
		if reply.Text != chat.Apology {
			t.Errorf("reply = %q, want exactly the apology", reply.Text)
		}
		if svc.State().Typing {
			t.Error("typing not cleared")
		}
	})

	t.Run("AfterPartialReply", func(t *testing.T) {
		fake := &generationtest.Fake{Fragments: []string{"Part"}, StreamErr: errors.New("boom")}
		svc := chat.NewService(fake, nil, nil, false)
		reply, _ := svc.Send(context.Background(), "hi", "", nil)
		if reply.Text != "Part"+chat.Apology {
			t.Errorf("reply = %q", reply.Text)
		}
	})

	t.Run("Unavailable", func(t *testing.T) {
		g := generation.New(context.Background(), "", "")
		svc := chat.NewService(g, nil, nil, false)
		reply, err := svc.Send(context.Background(), "hi", "", nil)
		if err != nil {
			t.Fatal(err)
		}
		if reply.Text != chat.Apology {
			t.Errorf("reply = %q", reply.Text)
		}
	})
}

func TestSendRejections(t *testing.T) {
	t.Run("Blank", func(t *testing.T) {
		svc := chat.NewService(&generationtest.Fake{}, nil, nil, false)
		if _, err := svc.Send(context.Background(), "  \n", "", nil); !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("err = %v", err)
		}
		if len(svc.State().Messages) != 1 {
			t.Error("blank message must not be appended")
		}
	})

	t.Run("BusyWhileTyping", func(t *testing.T) {
		fake := &generationtest.Fake{Fragments: []string{"ok"}, Gate: make(chan struct{})}
		svc := chat.NewService(fake, nil, nil, false)

		done := make(chan struct{})
		go func() {
			svc.Send(context.Background(), "first", "", nil)
			close(done)
		}()

		deadline := time.Now().Add(2 * time.Second)
		for !svc.State().Typing {
			if time.Now().After(deadline) {
				t.Fatal("reply never started")
			}
			time.Sleep(5 * time.Millisecond)
		}

		if _, err := svc.Send(context.Background(), "second", "", nil); !errors.Is(err, chat.ErrBusy) {
			t.Errorf("err = %v, want busy", err)
		}

		close(fake.Gate)
		<-done
		if n := len(svc.State().Messages); n != 3 {
			t.Errorf("messages = %d, want 3", n)
		}
	})
}

func TestSendCancelledClientStillCompletes(t *testing.T) {
	fake := &generationtest.Fake{Fragments: []string{"a", "b"}}
	svc := chat.NewService(fake, nil, nil, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply, err := svc.Send(ctx, "hi", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "ab" {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestReplayHistory(t *testing.T) {
	fake := &generationtest.Fake{Fragments: []string{"first answer"}}
	svc := chat.NewService(fake, nil, nil, true)

	svc.Send(context.Background(), "one", "", nil)
	req, _ := fake.LastChatRequest()
	if len(req.History) != 0 {
		t.Errorf("first request history = %+v, greeting must not be replayed", req.History)
	}

	svc.Send(context.Background(), "two", "", nil)
	req, _ = fake.LastChatRequest()
	want := []generation.Turn{
		{Role: generation.RoleUser, Text: "one"},
		{Role: generation.RoleModel, Text: "first answer"},
	}
	if len(req.History) != len(want) {
		t.Fatalf("history = %+v", req.History)
	}
	for i := range want {
		if req.History[i] != want[i] {
			t.Errorf("history[%d] = %+v, want %+v", i, req.History[i], want[i])
		}
	}
	if req.Message != "two" {
		t.Errorf("message = %q", req.Message)
	}
}
