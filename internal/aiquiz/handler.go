package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestions godoc
// @Summary Generate a standalone question batch
// @Tags ai-quiz
// @Accept json
// @Produce json
// @Param body body QuestionRequest true "Topic and count"
// @Success 201 {object} QuestionResponse
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /ai-quiz [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrTopicRequired) {
			http.Error(w, "topic required", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		log.WithError(err).Errorf("Failed to generate questions: %v", err)
		return
	}

	config.JSON(w, http.StatusCreated, QuestionResponse{Questions: questions})
}

// GetSchema godoc
// @Summary Response schema the model is constrained to
// @Tags ai-quiz
// @Produce json
// @Success 200 {object} object
// @Router /ai-quiz/schema [get]
func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, ResponseSchema())
}
