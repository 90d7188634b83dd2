package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/middleware"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/pkg/utils"
)

// SessionHandler unlocks sessions when a passphrase is configured.
type SessionHandler struct {
	sessions       *services.SessionManager
	passphraseHash string
	log            *zap.Logger
}

func NewSessionHandler(sessions *services.SessionManager, passphraseHash string, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:       sessions,
		passphraseHash: passphraseHash,
		log:            logger.Named(log, "handlers.session"),
	}
}

type UnlockRequest struct {
	Passphrase string `json:"passphrase"`
}

type SessionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Locked   bool   `json:"locked"`
	Required bool   `json:"passphrase_required"`
}

// Status reports whether the caller still has to unlock.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	s, ok := services.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "No session")
		return
	}
	required := h.passphraseHash != ""
	RespondWithJSON(w, http.StatusOK, SessionResponse{
		Success:  true,
		Message:  "Session active",
		Locked:   required && !s.Unlocked,
		Required: required,
	})
}

// Unlock checks the passphrase and marks the session unlocked.
func (h *SessionHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	s, ok := services.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "No session")
		return
	}
	if h.passphraseHash == "" {
		RespondWithJSON(w, http.StatusOK, SessionResponse{Success: true, Message: "No passphrase configured"})
		return
	}

	var req UnlockRequest
	if !decodeBody(w, r, &req) {
		return
	}
	match, err := utils.VerifyPassphrase(req.Passphrase, h.passphraseHash)
	if err != nil {
		h.log.Error("passphrase hash is invalid", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Passphrase check unavailable")
		return
	}
	if !match {
		h.log.Warn("wrong passphrase", zap.String("session_id", s.ID))
		RespondWithJSON(w, http.StatusUnauthorized, SessionResponse{
			Success:  false,
			Message:  "Wrong passphrase",
			Locked:   true,
			Required: true,
		})
		return
	}

	if _, err := h.sessions.Update(r.Context(), s.ID, func(s *services.Session) error {
		s.Unlocked = true
		return nil
	}); err != nil {
		h.log.Error("failed to unlock session", zap.Error(err))
		respondWithError(w, http.StatusServiceUnavailable, "Session storage unavailable")
		return
	}
	RespondWithJSON(w, http.StatusOK, SessionResponse{Success: true, Message: "Unlocked", Required: true})
}

// End discards the caller's session, itinerary edits included. The next
// request starts a fresh seeded session that is locked again.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	s, ok := services.SessionFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "No session")
		return
	}
	if err := h.sessions.Delete(r.Context(), s.ID); err != nil {
		h.log.Error("failed to end session", zap.Error(err))
		respondWithError(w, http.StatusServiceUnavailable, "Session storage unavailable")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	RespondWithJSON(w, http.StatusOK, SessionResponse{
		Success:  true,
		Message:  "Session ended",
		Locked:   h.passphraseHash != "",
		Required: h.passphraseHash != "",
	})
}
