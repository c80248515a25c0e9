package aiquiz

import "github.com/saulo-duarte/omnilearn-lambda/internal/generation"

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(g generation.Generator, defaultCount int) *AIQuizContainer {
	provider := NewProvider(g)
	service := NewService(provider, defaultCount)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
