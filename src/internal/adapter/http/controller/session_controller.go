package controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/middleware"
	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
	"github.com/go-chi/chi/v5"
)

type SessionStore interface {
	Create(ctx context.Context) (*session.Session, error)
	Delete(id string) bool
}

type SessionController struct {
	store SessionStore
}

func NewSessionController(store SessionStore) *SessionController {
	return &SessionController{store: store}
}

func (c *SessionController) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", c.createSession)
	r.Delete("/sessions", c.deleteSession)
}

func (c *SessionController) createSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	sess, err := c.store.Create(r.Context())
	if err != nil {
		response := commons.ErrorResponse[models.SessionResponse]("failed to start session", "Unable to start a session right now")
		respond(w, r, response, err, http.StatusInternalServerError, start)
		return
	}

	points, err := sess.Liquidity.Count(r.Context())
	if err != nil {
		response := commons.ErrorResponse[models.SessionResponse]("failed to start session", "Unable to start a session right now")
		respond(w, r, response, err, http.StatusInternalServerError, start)
		return
	}

	w.Header().Set(middleware.SessionHeader, sess.ID)
	response := commons.SuccessResponse("session started successfully", models.SessionResponse{
		SessionID:       sess.ID,
		CreatedAt:       sess.CreatedAt.Format(time.RFC3339),
		LiquidityPoints: points,
	})
	respond(w, r, response, nil, http.StatusCreated, start)
}

func (c *SessionController) deleteSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := strings.TrimSpace(r.Header.Get(middleware.SessionHeader))
	if id == "" {
		response := commons.ErrorResponse[struct{}](commons.MessageValidationFailed, "X-Session-Id header is required")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	if !c.store.Delete(id) {
		respond(w, r, commons.ErrorResponse[struct{}]("session not found"), commons.ErrSessionNotFound, http.StatusNotFound, start)
		return
	}

	respond(w, r, commons.SuccessResponse("session ended successfully", struct{}{}), nil, http.StatusOK, start)
}
