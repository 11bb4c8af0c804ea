package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
)

const SessionHeader = "X-Session-Id"

type SessionStore interface {
	Create(ctx context.Context) (*session.Session, error)
	Get(id string) (*session.Session, error)
	Touch(sess *session.Session)
}

// Session resolves the caller's session from the X-Session-Id header and
// holds its lock for the rest of the request. Requests without the header
// get a new session whose id is echoed back. The session is marked active
// again before its lock is released.
func Session(store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionHeader))

			var (
				sess *session.Session
				err  error
			)
			if id == "" {
				sess, err = store.Create(r.Context())
			} else {
				sess, err = store.Get(id)
			}
			if err != nil {
				if errors.Is(err, commons.ErrSessionNotFound) {
					logger.Info("session middleware unknown session", logger.Fields{
						"method":    r.Method,
						"path":      r.URL.Path,
						"sessionId": id,
					})
					writeJSON(w, http.StatusNotFound, commons.ErrorResponse[struct{}]("session not found", "Session expired or does not exist. Start a new session."))
					return
				}
				logger.Error("session middleware resolve session failed", err, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				writeJSON(w, http.StatusInternalServerError, commons.ErrorResponse[struct{}]("failed to start session", "Unable to start a session right now"))
				return
			}

			w.Header().Set(SessionHeader, sess.ID)

			sess.Lock()
			defer sess.Unlock()
			defer store.Touch(sess)

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
