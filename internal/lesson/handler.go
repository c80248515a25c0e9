package lesson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
)

type Handler struct {
	service LessonService
}

func NewHandler(s LessonService) *Handler {
	return &Handler{service: s}
}

// GetLesson godoc
// @Summary Current lesson state
// @Tags lesson
// @Produce json
// @Success 200 {object} State
// @Router /lesson [get]
func (h *Handler) GetLesson(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.State())
}

// Home godoc
// @Summary Return to the dashboard
// @Tags lesson
// @Produce json
// @Success 200 {object} State
// @Router /lesson/home [post]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Home())
}

// SelectSubject godoc
// @Summary Select a subject
// @Tags lesson
// @Accept json
// @Produce json
// @Param body body SelectSubjectRequest true "Subject"
// @Success 200 {object} State
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /lesson/subject [post]
func (h *Handler) SelectSubject(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SelectSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SubjectID == "" {
		http.Error(w, "subject_id required", http.StatusBadRequest)
		return
	}

	state, err := h.service.SelectSubject(r.Context(), req.SubjectID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, state)
}

// SelectTopic godoc
// @Summary Select a topic and generate its lesson
// @Description Blocks until the lesson is generated. Progress is also published on /events.
// @Tags lesson
// @Accept json
// @Produce json
// @Param body body SelectTopicRequest true "Topic"
// @Success 200 {object} State
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /lesson/topic [post]
func (h *Handler) SelectTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SelectTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SubjectID == "" || req.TopicID == "" {
		http.Error(w, "subject_id and topic_id required", http.StatusBadRequest)
		return
	}

	state, err := h.service.SelectTopic(r.Context(), req.SubjectID, req.TopicID)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, state)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSubjectNotFound):
		http.Error(w, "subject not found", http.StatusNotFound)
	case errors.Is(err, ErrTopicNotFound):
		http.Error(w, "topic not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
