package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/views"
)

type PackingHandler struct {
	*SectionHandler[models.PackingItem, models.PackingForm]
	packing *views.Packing
}

func NewPackingHandler(packing *views.Packing, log *zap.Logger) *PackingHandler {
	return &PackingHandler{
		SectionHandler: NewSectionHandler(packing.Section, log),
		packing:        packing,
	}
}

// SaveChecksRequest maps packing item ids to their checked state.
type SaveChecksRequest struct {
	Checks map[string]bool `json:"checks"`
}

func (h *PackingHandler) Routes(r chi.Router) {
	h.SectionHandler.Routes(r)
	r.Post("/checks", h.SaveChecks)
}

// SaveChecks saves the checkbox state of the whole list.
func (h *PackingHandler) SaveChecks(w http.ResponseWriter, r *http.Request) {
	var req SaveChecksRequest
	if !decodeBody(w, r, &req) {
		return
	}
	out, err := h.packing.SaveChecks(r.Context(), req.Checks)
	status := http.StatusOK
	if err != nil {
		status = apperror.Status(err)
	}
	RespondWithJSON(w, status, actionResponse(out, h.packing.Render(r.Context())))
}
