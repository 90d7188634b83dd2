package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/views"
)

// SectionHandler serves one document section: view, add, edit and delete.
// Every action answers with the section rendered after the action.
type SectionHandler[R any, F any] struct {
	section *views.Section[R, F]
	log     *zap.Logger
}

func NewSectionHandler[R any, F any](section *views.Section[R, F], log *zap.Logger) *SectionHandler[R, F] {
	return &SectionHandler[R, F]{
		section: section,
		log:     logger.Named(log, "handlers."+section.Schema().Slug),
	}
}

// Routes mounts the section under its own router.
func (h *SectionHandler[R, F]) Routes(r chi.Router) {
	r.Get("/", h.View)
	r.Post("/", h.Add)
	r.Put("/{id}", h.Save)
	r.Delete("/{id}", h.Remove)
}

func (h *SectionHandler[R, F]) View(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, ViewResponse{
		Success: true,
		View:    h.section.Render(r.Context()),
	})
}

func (h *SectionHandler[R, F]) Add(w http.ResponseWriter, r *http.Request) {
	var form F
	if !decodeBody(w, r, &form) {
		return
	}
	out, err := h.section.Add(r.Context(), form)
	h.respond(w, r, out, err, http.StatusCreated)
}

func (h *SectionHandler[R, F]) Save(w http.ResponseWriter, r *http.Request) {
	var form F
	if !decodeBody(w, r, &form) {
		return
	}
	out, err := h.section.Save(r.Context(), chi.URLParam(r, "id"), form)
	h.respond(w, r, out, err, http.StatusOK)
}

func (h *SectionHandler[R, F]) Remove(w http.ResponseWriter, r *http.Request) {
	out, err := h.section.Remove(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, out, err, http.StatusOK)
}

func (h *SectionHandler[R, F]) respond(w http.ResponseWriter, r *http.Request, out views.Outcome, err error, okStatus int) {
	status := okStatus
	if err != nil {
		status = apperror.Status(err)
	}
	RespondWithJSON(w, status, actionResponse(out, h.section.Render(r.Context())))
}
