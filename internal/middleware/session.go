package middleware

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "trip_session"

// Sessions attaches the caller's session to the request context, starting a
// new seeded session when the cookie is missing or the session expired.
func Sessions(m *services.SessionManager, secure bool, log *zap.Logger) func(http.Handler) http.Handler {
	log = logger.Named(log, "middleware.sessions")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var s *services.Session
			if c, err := r.Cookie(SessionCookie); err == nil {
				s, err = m.Get(ctx, c.Value)
				if err != nil && !errors.Is(err, services.ErrSessionNotFound) {
					log.Error("failed to load session", zap.Error(err))
					writeError(w, http.StatusServiceUnavailable, "Session storage unavailable")
					return
				}
			}

			if s == nil {
				created, err := m.Create(ctx)
				if err != nil {
					log.Error("failed to create session", zap.Error(err))
					writeError(w, http.StatusServiceUnavailable, "Session storage unavailable")
					return
				}
				s = created
			} else if err := m.Touch(ctx, s.ID); err != nil {
				log.Warn("failed to refresh session", zap.String("session_id", s.ID), zap.Error(err))
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    s.ID,
				Path:     "/",
				MaxAge:   int(m.TTL().Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(services.WithSession(ctx, s)))
		})
	}
}

// RequireUnlocked rejects requests from sessions that have not entered the
// passphrase. An empty hash disables the gate.
func RequireUnlocked(passphraseHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if passphraseHash == "" {
				next.ServeHTTP(w, r)
				return
			}
			s, ok := services.SessionFrom(r.Context())
			if !ok || !s.Unlocked {
				writeError(w, http.StatusUnauthorized, "Passphrase required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}
