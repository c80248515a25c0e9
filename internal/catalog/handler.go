package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// ListSubjects godoc
// @Summary List subjects
// @Tags catalog
// @Produce json
// @Success 200 {array} Subject
// @Router /subjects [get]
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.catalog.Subjects())
}

// GetSubject godoc
// @Summary Get a subject with its topics
// @Tags catalog
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} Subject
// @Failure 404 {string} string
// @Router /subjects/{subjectId} [get]
func (h *Handler) GetSubject(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "subjectId")
	subject, err := h.catalog.Subject(id)
	if errors.Is(err, ErrSubjectNotFound) {
		log.WithField("subject_id", id).Warn("Subject not found")
		http.Error(w, "subject not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, subject)
}
