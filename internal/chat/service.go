package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
	util "github.com/saulo-duarte/omnilearn-lambda/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a reply is already streaming")
)

// FragmentFunc observes the assistant message after each fragment is folded in.
type FragmentFunc func(fragment string, reply Message)

type ChatService interface {
	State() State
	// Send appends the user message, streams the reply into a new assistant
	// message and returns it once the stream has terminated.
	Send(ctx context.Context, text, contextLabel string, onFragment FragmentFunc) (Message, error)
}

type chatService struct {
	generator     generation.Generator
	publisher     events.Publisher
	clock         *util.Clock
	replayHistory bool

	mu       sync.Mutex
	messages []Message
	typing   bool
}

func NewService(g generation.Generator, p events.Publisher, clock *util.Clock, replayHistory bool) ChatService {
	if p == nil {
		p = events.Discard
	}
	if clock == nil {
		clock = util.NewClock(nil)
	}
	return &chatService{
		generator:     g,
		publisher:     p,
		clock:         clock,
		replayHistory: replayHistory,
		messages: []Message{{
			Role:      RoleAssistant,
			Text:      Greeting,
			Timestamp: clock.NextMillis(),
		}},
	}
}

func (s *chatService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *chatService) snapshotLocked() State {
	return State{
		Messages: append([]Message(nil), s.messages...),
		Typing:   s.typing,
	}
}

func (s *chatService) publishLocked() {
	s.publisher.Publish(events.TypeChat, s.snapshotLocked())
}

func (s *chatService) Send(ctx context.Context, text, contextLabel string, onFragment FragmentFunc) (Message, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.typing {
		s.mu.Unlock()
		log.Warn("Chat message sent while a reply is streaming")
		return Message{}, ErrBusy
	}
	history := s.historyLocked()
	s.messages = append(s.messages, Message{
		Role:      RoleUser,
		Text:      text,
		Timestamp: s.clock.NextMillis(),
	})
	reply := Message{
		Role:      RoleAssistant,
		Timestamp: s.clock.NextMillis(),
		Streaming: true,
	}
	s.messages = append(s.messages, reply)
	s.typing = true
	s.publishLocked()
	s.mu.Unlock()

	stream := s.generator.StreamChat(context.WithoutCancel(ctx), generation.ChatRequest{
		SystemInstruction: SystemInstruction(contextLabel),
		History:           history,
		Message:           text,
	})
	log = log.WithFields(logrus.Fields{
		"stream_id": stream.ID,
		"context":   contextLabel,
	})

	fragments := 0
	for ev := range stream.Events() {
		switch ev.Kind {
		case generation.EventFragment:
			fragments++
			reply = s.fold(reply, ev.Text, onFragment)
		case generation.EventError:
			log.WithError(ev.Err).Error("Chat stream failed")
			reply = s.fold(reply, Apology, onFragment)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	reply.Streaming = false
	s.replaceLocked(reply)
	s.typing = false
	s.publishLocked()

	log.WithField("fragments", fragments).Debug("Chat reply complete")
	return reply, nil
}

// fold appends fragment to the in-progress reply and republishes the state.
func (s *chatService) fold(reply Message, fragment string, onFragment FragmentFunc) Message {
	reply.Text += fragment

	s.mu.Lock()
	s.replaceLocked(reply)
	s.publishLocked()
	s.mu.Unlock()

	if onFragment != nil {
		onFragment(fragment, reply)
	}
	return reply
}

func (s *chatService) replaceLocked(m Message) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Timestamp == m.Timestamp {
			s.messages[i] = m
			return
		}
	}
}

// historyLocked maps completed messages to model turns. The leading greeting is
// local only and is never replayed.
func (s *chatService) historyLocked() []generation.Turn {
	if !s.replayHistory {
		return nil
	}
	var turns []generation.Turn
	for i, m := range s.messages {
		if i == 0 && m.Role == RoleAssistant {
			continue
		}
		if m.Streaming || m.Text == "" {
			continue
		}
		role := generation.RoleUser
		if m.Role == RoleAssistant {
			role = generation.RoleModel
		}
		turns = append(turns, generation.Turn{Role: role, Text: m.Text})
	}
	return turns
}
