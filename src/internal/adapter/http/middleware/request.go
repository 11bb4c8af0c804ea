package middleware

import (
	"context"
	"net/http"

	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID)))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey{}).(string)
	return reqID
}

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recover middleware caught panic", nil, logger.Fields{
					"method":    r.Method,
					"path":      r.URL.Path,
					"requestId": RequestIDFromContext(r.Context()),
					"panic":     rec,
				})
				writeJSON(w, http.StatusInternalServerError, commons.ErrorResponse[struct{}]("internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
