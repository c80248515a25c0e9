// Package generationtest provides an in-memory generation backend for tests.
package generationtest

import (
	"context"
	"sync"

	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
	"google.golang.org/genai"
)

// Fake records every call and answers from its configured fields.
// A non-nil Gate blocks each call until it is closed or receives a value.
type Fake struct {
	mu sync.Mutex

	Text    string
	TextErr error
	JSON    string
	JSONErr error

	Fragments []string
	StreamErr error

	Gate chan struct{}

	Prompts      []string
	JSONPrompts  []string
	Schemas      []*genai.Schema
	ChatRequests []generation.ChatRequest
}

var _ generation.Generator = (*Fake)(nil)

func (f *Fake) wait(ctx context.Context) error {
	if f.Gate == nil {
		return nil
	}
	select {
	case <-f.Gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Fake) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.Prompts = append(f.Prompts, prompt)
	text, err := f.Text, f.TextErr
	f.mu.Unlock()

	if werr := f.wait(ctx); werr != nil {
		return "", werr
	}
	return text, err
}

func (f *Fake) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.mu.Lock()
	f.JSONPrompts = append(f.JSONPrompts, prompt)
	f.Schemas = append(f.Schemas, schema)
	text, err := f.JSON, f.JSONErr
	f.mu.Unlock()

	if werr := f.wait(ctx); werr != nil {
		return "", werr
	}
	return text, err
}

func (f *Fake) StreamChat(ctx context.Context, req generation.ChatRequest) *generation.Stream {
	f.mu.Lock()
	f.ChatRequests = append(f.ChatRequests, req)
	fragments := append([]string(nil), f.Fragments...)
	streamErr := f.StreamErr
	f.mu.Unlock()

	return generation.NewStream(ctx, func(ctx context.Context, emit func(string) bool) error {
		if err := f.wait(ctx); err != nil {
			return err
		}
		for _, fragment := range fragments {
			if !emit(fragment) {
				return ctx.Err()
			}
		}
		return streamErr
	})
}

func (f *Fake) PromptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}

func (f *Fake) LastChatRequest() (generation.ChatRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.ChatRequests) == 0 {
		return generation.ChatRequest{}, false
	}
	return f.ChatRequests[len(f.ChatRequests)-1], true
}
