package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/omnilearn-lambda/internal/aiquiz"
	"github.com/saulo-duarte/omnilearn-lambda/internal/catalog"
	"github.com/saulo-duarte/omnilearn-lambda/internal/chat"
	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
	"github.com/saulo-duarte/omnilearn-lambda/internal/lesson"
	"github.com/saulo-duarte/omnilearn-lambda/internal/metrics"
	"github.com/saulo-duarte/omnilearn-lambda/internal/quiz"
	"github.com/saulo-duarte/omnilearn-lambda/internal/router"
	"github.com/saulo-duarte/omnilearn-lambda/internal/workspace"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Settings *config.Settings
	Hub      *events.Hub

	CatalogContainer *catalog.CatalogContainer
	LessonContainer  *lesson.LessonContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	QuizContainer    *quiz.QuizContainer
	ChatContainer    *chat.ChatContainer
	WorkspaceHandler *workspace.Handler
}

// New loads settings from the working directory and the environment and wires every component.
func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	return Build(ctx, settings, nil)
}

// Build wires the components from settings. A nil generator constructs the Gemini client.
func Build(ctx context.Context, settings *config.Settings, g generation.Generator) (*Container, error) {
	config.Init(settings.Log)
	metrics.Init()

	cat, err := catalog.Load(settings.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if g == nil {
		g = generation.New(ctx, settings.Gemini.APIKey, settings.Gemini.Model)
	}
	g = generation.Instrument(g)
	hub := events.NewHub()

	catalogContainer := catalog.NewCatalogContainer(cat)
	lessonContainer := lesson.NewLessonContainer(cat, g, hub, settings.Lesson.DiscardStale)
	aiQuizContainer := aiquiz.NewAIQuizContainer(g, settings.Quiz.QuestionCount)
	quizContainer := quiz.NewQuizContainer(aiQuizContainer.Service, hub, lessonContainer.Service)
	chatContainer := chat.NewChatContainer(g, hub, lessonContainer.Service, settings.Chat.ReplayHistory)
	workspaceHandler := workspace.NewHandler(lessonContainer.Service, quizContainer.Service, chatContainer.Service)

	config.WithContext(ctx).WithFields(logrus.Fields{
		"subjects":       len(cat.Subjects()),
		"model":          settings.Gemini.Model,
		"discard_stale":  settings.Lesson.DiscardStale,
		"replay_history": settings.Chat.ReplayHistory,
	}).Info("Container ready")

	return &Container{
		Settings:         settings,
		Hub:              hub,
		CatalogContainer: catalogContainer,
		LessonContainer:  lessonContainer,
		AIQuizContainer:  aiQuizContainer,
		QuizContainer:    quizContainer,
		ChatContainer:    chatContainer,
		WorkspaceHandler: workspaceHandler,
	}, nil
}

// Router serves the full API including the long-lived /events stream.
func (c *Container) Router() http.Handler {
	return c.router(c.Hub)
}

// BufferedRouter omits /events for transports that buffer whole responses, such as API Gateway.
func (c *Container) BufferedRouter() http.Handler {
	return c.router(nil)
}

func (c *Container) router(stream http.Handler) http.Handler {
	return router.New(router.RouterConfig{
		CatalogHandler:   c.CatalogContainer.Handler,
		LessonHandler:    c.LessonContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		AIQuizHandler:    c.AIQuizContainer.Handler,
		ChatHandler:      c.ChatContainer.Handler,
		WorkspaceHandler: c.WorkspaceHandler,
		Events:           stream,
		AllowedOrigins:   c.Settings.CORS.AllowedOrigins,
	})
}
