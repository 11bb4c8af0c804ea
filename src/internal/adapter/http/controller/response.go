package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusFor(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrNoHistory),
		errors.Is(err, commons.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respond writes a service result, mapping a service error to its status.
func respond[T any](w http.ResponseWriter, r *http.Request, response commons.Response[T], err error, status int, start time.Time) {
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status = statusFor(err)
	}
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request, req any, start time.Time) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[T]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return false
	}
	return true
}

func requireSession[T any](w http.ResponseWriter, r *http.Request, start time.Time) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		logError(r, commons.ErrSessionNotFound, nil)
		response := commons.ErrorResponse[T]("session not found", "Start a session before calling this endpoint")
		writeJSON(w, http.StatusNotFound, response)
		logResponse(r, http.StatusNotFound, response, start)
		return nil, false
	}
	return sess, true
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := commons.ErrorResponse[struct{}]("method not allowed")
	writeJSON(w, http.StatusMethodNotAllowed, response)
	logResponse(r, http.StatusMethodNotAllowed, response, time.Now())
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	response := commons.ErrorResponse[struct{}]("route not found")
	writeJSON(w, http.StatusNotFound, response)
	logResponse(r, http.StatusNotFound, response, time.Now())
}
