package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
)

var (
	ErrEmptyResponse = errors.New("empty response from model")
	ErrMalformed     = errors.New("malformed question batch")
)

type Provider interface {
	SendPrompt(ctx context.Context, prompt string) ([]Question, error)
}

type geminiProvider struct {
	generator generation.Generator
}

func NewProvider(g generation.Generator) Provider {
	return &geminiProvider{generator: g}
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) ([]Question, error) {
	log := config.WithContext(ctx)

	raw, err := p.generator.GenerateJSON(ctx, prompt, ResponseSchema())
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	log.Debugf("[AIQUIZ] Raw model response:\n%s", raw)

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Failed to decode questions. Content:\n%s", raw)
		return nil, err
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(questions))
	return questions, nil
}

// ParseQuestions decodes a model response, tolerating a surrounding markdown fence.
// Any question that does not have four options and an index in range rejects the batch.
func ParseQuestions(raw string) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ErrEmptyResponse
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i, q := range questions {
		if !q.valid() {
			return nil, fmt.Errorf("%w: question %d does not match the expected shape", ErrMalformed, i)
		}
	}
	return questions, nil
}
