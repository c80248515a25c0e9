package quiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/omnilearn-lambda/internal/catalog"
	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
)

// TopicSource supplies the currently selected topic when a quiz is opened without one.
type TopicSource interface {
	SelectedTopic() (catalog.Topic, bool)
}

type Handler struct {
	service QuizService
	topics  TopicSource
}

func NewHandler(s QuizService, topics TopicSource) *Handler {
	return &Handler{service: s, topics: topics}
}

// GetQuiz godoc
// @Summary Current quiz state
// @Tags quiz
// @Produce json
// @Success 200 {object} State
// @Router /quiz [get]
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.State())
}

// OpenQuiz godoc
// @Summary Open the quiz panel and generate questions
// @Description Uses the selected lesson topic when the body names none.
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body OpenRequest false "Topic"
// @Success 200 {object} State
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Router /quiz/open [post]
func (h *Handler) OpenQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Topic == "" && h.topics != nil {
		if topic, ok := h.topics.SelectedTopic(); ok {
			req.Topic = topic.Title
		}
	}

	state, err := h.service.Open(r.Context(), req.Topic)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, state)
}

// AnswerQuestion godoc
// @Summary Answer the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body AnswerRequest true "Option index"
// @Success 200 {object} State
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Router /quiz/answer [post]
func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Option == nil {
		http.Error(w, "option required", http.StatusBadRequest)
		return
	}

	state, err := h.service.Answer(r.Context(), *req.Option)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, state)
}

// NextQuestion godoc
// @Summary Advance to the next question or to the results
// @Tags quiz
// @Produce json
// @Success 200 {object} State
// @Failure 409 {string} string
// @Router /quiz/next [post]
func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Next(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, state)
}

// CloseQuiz godoc
// @Summary Close the quiz panel and reset progress
// @Tags quiz
// @Produce json
// @Success 200 {object} State
// @Router /quiz/close [post]
func (h *Handler) CloseQuiz(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Close(r.Context()))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoTopic):
		http.Error(w, "no topic selected", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidOption):
		http.Error(w, "option out of range", http.StatusBadRequest)
	case errors.Is(err, ErrBusy),
		errors.Is(err, ErrNotOpen),
		errors.Is(err, ErrNoQuestions),
		errors.Is(err, ErrAlreadyAnswered),
		errors.Is(err, ErrNotAnswered),
		errors.Is(err, ErrQuizFinished):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
