package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetQuiz)
	r.Post("/open", h.OpenQuiz)
	r.Post("/answer", h.AnswerQuestion)
	r.Post("/next", h.NextQuestion)
	r.Post("/close", h.CloseQuiz)
	return r
}
