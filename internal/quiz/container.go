package quiz

import (
	"github.com/saulo-duarte/omnilearn-lambda/internal/aiquiz"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
)

type QuizContainer struct {
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(questions aiquiz.Service, p events.Publisher, topics TopicSource) *QuizContainer {
	service := NewService(questions, p)
	handler := NewHandler(service, topics)

	return &QuizContainer{
		Service: service,
		Handler: handler,
	}
}
