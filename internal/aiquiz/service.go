package aiquiz

import (
	"context"
	"errors"
	"strings"
)

var ErrTopicRequired = errors.New("topic is required")

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)
}

type service struct {
	provider     Provider
	defaultCount int
}

func NewService(provider Provider, defaultCount int) Service {
	return &service{provider: provider, defaultCount: defaultCount}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}
	prompt := BuildPrompt(topic, ClampCount(req.Count, s.defaultCount))

	return s.provider.SendPrompt(ctx, prompt)
}
