// Package workspace serves the whole UI state tree in one response, so a
// client can render before the first event arrives on /events.
package workspace

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/omnilearn-lambda/internal/chat"
	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/lesson"
	"github.com/saulo-duarte/omnilearn-lambda/internal/quiz"
)

type Snapshot struct {
	Lesson lesson.State `json:"lesson"`
	Quiz   quiz.State   `json:"quiz"`
	Chat   chat.State   `json:"chat"`
}

type Handler struct {
	lesson lesson.LessonService
	quiz   quiz.QuizService
	chat   chat.ChatService
}

func NewHandler(l lesson.LessonService, q quiz.QuizService, c chat.ChatService) *Handler {
	return &Handler{lesson: l, quiz: q, chat: c}
}

func (h *Handler) Snapshot() Snapshot {
	return Snapshot{
		Lesson: h.lesson.State(),
		Quiz:   h.quiz.State(),
		Chat:   h.chat.State(),
	}
}

// GetState godoc
// @Summary Aggregated UI state
// @Tags workspace
// @Produce json
// @Success 200 {object} Snapshot
// @Router /state [get]
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.Snapshot())
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetState)
	return r
}
