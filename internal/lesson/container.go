package lesson

import (
	"github.com/saulo-duarte/omnilearn-lambda/internal/catalog"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
)

type LessonContainer struct {
	Service LessonService
	Handler *Handler
}

func NewLessonContainer(c *catalog.Catalog, g generation.Generator, p events.Publisher, discardStale bool) *LessonContainer {
	service := NewService(c, g, p, discardStale)
	handler := NewHandler(service)

	return &LessonContainer{
		Service: service,
		Handler: handler,
	}
}
