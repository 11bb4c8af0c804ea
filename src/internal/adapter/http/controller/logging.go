package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/middleware"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
)

func requestFields(r *http.Request) logger.Fields {
	fields := logger.Fields{
		"method":    r.Method,
		"path":      r.URL.Path,
		"query":     r.URL.RawQuery,
		"requestId": middleware.RequestIDFromContext(r.Context()),
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		fields["sessionId"] = sess.ID
	}
	return fields
}

func logRequest(r *http.Request, payload any) {
	fields := requestFields(r)
	fields["payload"] = logger.SanitizePayload(payload)
	logger.Info("http request", fields)
}

func logResponse(r *http.Request, status int, payload any, start time.Time) {
	logger.Info("http response", logger.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"requestId":  middleware.RequestIDFromContext(r.Context()),
		"status":     status,
		"durationMs": time.Since(start).Milliseconds(),
		"response":   logger.SanitizePayload(payload),
	})
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := requestFields(r)
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}
