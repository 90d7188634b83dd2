package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/internal/views"
)

// ItineraryHandler serves the session itinerary. It needs the Sessions
// middleware in front of it.
type ItineraryHandler struct {
	itinerary *views.Itinerary
	log       *zap.Logger
}

func NewItineraryHandler(itinerary *views.Itinerary, log *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{itinerary: itinerary, log: logger.Named(log, "handlers.itinerary")}
}

func (h *ItineraryHandler) Routes(r chi.Router) {
	r.Get("/", h.View)
	r.Get("/map", h.Map)
	r.Post("/", h.Add)
	r.Put("/{row}", h.Edit)
}

func (h *ItineraryHandler) View(w http.ResponseWriter, r *http.Request) {
	s, ok := services.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "No session")
		return
	}
	RespondWithJSON(w, http.StatusOK, ViewResponse{Success: true, View: h.itinerary.Render(s)})
}

// Map geocodes the itinerary locations; this is slow, about one second per row.
func (h *ItineraryHandler) Map(w http.ResponseWriter, r *http.Request) {
	s, ok := services.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "No session")
		return
	}
	RespondWithJSON(w, http.StatusOK, ViewResponse{Success: true, View: h.itinerary.Map(r.Context(), s)})
}

func (h *ItineraryHandler) Add(w http.ResponseWriter, r *http.Request) {
	s, ok := services.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "No session")
		return
	}
	var form models.ItineraryAddForm
	if !decodeBody(w, r, &form) {
		return
	}
	updated, out, err := h.itinerary.Add(r.Context(), s.ID, form)
	h.respond(w, s, updated, out, err, http.StatusCreated)
}

func (h *ItineraryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	s, ok := services.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "No session")
		return
	}
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid row number")
		return
	}
	var form models.ItineraryEditForm
	if !decodeBody(w, r, &form) {
		return
	}
	updated, out, err := h.itinerary.Edit(r.Context(), s.ID, row, form)
	h.respond(w, s, updated, out, err, http.StatusOK)
}

func (h *ItineraryHandler) respond(w http.ResponseWriter, current, updated *services.Session, out views.Outcome, err error, okStatus int) {
	if updated == nil {
		updated = current
	}
	status := okStatus
	switch {
	case err == nil:
	case errors.Is(err, services.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrSessionUnavailable):
		status = http.StatusServiceUnavailable
	default:
		status = apperror.Status(err)
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("itinerary action failed", zap.Error(err))
	}
	RespondWithJSON(w, status, actionResponse(out, h.itinerary.Render(updated)))
}
