package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/omnilearn-lambda/docs"
	"github.com/saulo-duarte/omnilearn-lambda/internal/aiquiz"
	"github.com/saulo-duarte/omnilearn-lambda/internal/catalog"
	"github.com/saulo-duarte/omnilearn-lambda/internal/chat"
	"github.com/saulo-duarte/omnilearn-lambda/internal/lesson"
	"github.com/saulo-duarte/omnilearn-lambda/internal/metrics"
	"github.com/saulo-duarte/omnilearn-lambda/internal/middlewares"
	"github.com/saulo-duarte/omnilearn-lambda/internal/quiz"
	"github.com/saulo-duarte/omnilearn-lambda/internal/workspace"
)

type RouterConfig struct {
	CatalogHandler   *catalog.Handler
	LessonHandler    *lesson.Handler
	QuizHandler      *quiz.Handler
	AIQuizHandler    *aiquiz.Handler
	ChatHandler      *chat.Handler
	WorkspaceHandler *workspace.Handler
	Events           http.Handler
	AllowedOrigins   []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/subjects", catalog.Routes(cfg.CatalogHandler))
	r.Mount("/lesson", lesson.Routes(cfg.LessonHandler))
	r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
	r.Mount("/chat", chat.Routes(cfg.ChatHandler))
	r.Mount("/state", workspace.Routes(cfg.WorkspaceHandler))

	if cfg.Events != nil {
		r.Method(http.MethodGet, "/events", cfg.Events)
	}
	return r
}
