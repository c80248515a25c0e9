package chat

import (
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
	util "github.com/saulo-duarte/omnilearn-lambda/internal/utils"
)

type ChatContainer struct {
	Service ChatService
	Handler *Handler
}

func NewChatContainer(g generation.Generator, p events.Publisher, c ContextSource, replayHistory bool) *ChatContainer {
	service := NewService(g, p, util.NewClock(nil), replayHistory)
	handler := NewHandler(service, c)

	return &ChatContainer{
		Service: service,
		Handler: handler,
	}
}
