package lesson

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetLesson)
	r.Post("/home", h.Home)
	r.Post("/subject", h.SelectSubject)
	r.Post("/topic", h.SelectTopic)
	return r
}
