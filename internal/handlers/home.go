package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/views"
)

type HomeHandler struct {
	home views.HomeView
}

func NewHomeHandler(home views.HomeView) *HomeHandler {
	return &HomeHandler{home: home}
}

// Sections returns the sidebar menu.
func (h *HomeHandler) Sections(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, ViewResponse{Success: true, View: views.Sidebar})
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, ViewResponse{Success: true, View: h.home})
}

// Pinger is the part of the document store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	log   *zap.Logger
}

func NewHealthHandler(store Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: logger.Named(log, "handlers.health")}
}

// Health answers OK while the document store is reachable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.Warn("document store ping failed", zap.Error(err))
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("OK"))
}
