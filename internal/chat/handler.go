package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
)

// ContextSource labels what the student is currently looking at.
type ContextSource interface {
	ContextLabel() string
}

type Handler struct {
	service ChatService
	labels  ContextSource
}

func NewHandler(s ChatService, c ContextSource) *Handler {
	return &Handler{service: s, labels: c}
}

type fragmentEvent struct {
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// GetChat godoc
// @Summary Chat history and typing flag
// @Tags chat
// @Produce json
// @Success 200 {object} State
// @Router /chat [get]
func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.State())
}

// SendMessage godoc
// @Summary Send a message to the tutor
// @Description Streams the reply as server-sent events: one "fragment" event per chunk, then "done" with the final message.
// @Tags chat
// @Accept json
// @Produce text/event-stream
// @Param body body SendRequest true "Message"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Router /chat/messages [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	label := req.Context
	if label == "" && h.labels != nil {
		label = h.labels.ContextLabel()
	}

	flusher, _ := w.(http.Flusher)
	started := false
	start := func() {
		if started {
			return
		}
		started = true
		events.SetStreamHeaders(w)
		w.WriteHeader(http.StatusOK)
	}

	reply, err := h.service.Send(r.Context(), req.Message, label, func(fragment string, reply Message) {
		start()
		if err := events.WriteEvent(w, "fragment", fragmentEvent{Text: fragment, Timestamp: reply.Timestamp}); err != nil {
			log.WithError(err).Debug("Client stopped reading chat stream")
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			http.Error(w, "message required", http.StatusBadRequest)
		case errors.Is(err, ErrBusy):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	start()
	if err := events.WriteEvent(w, "done", reply); err != nil {
		log.WithError(err).Debug("Client stopped reading chat stream")
		return
	}
	if flusher != nil {
		flusher.Flush()
	}
}
