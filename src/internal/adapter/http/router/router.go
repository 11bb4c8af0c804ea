package router

import (
	"net/http"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/controller"
	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/middleware"
	"github.com/go-chi/chi/v5"
)

type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// Controllers groups the registrars mounted under /v1. Nil registrars are
// skipped. Session, Reference, Rate and Charges are stateless and mounted
// outside the session middleware.
type Controllers struct {
	Session    RouteRegistrar
	Reference  RouteRegistrar
	Rate       RouteRegistrar
	Charges    RouteRegistrar
	Payment    RouteRegistrar
	Ledger     RouteRegistrar
	Liquidity  RouteRegistrar
	Compliance RouteRegistrar
}

func New(controllers Controllers, sessionMiddleware func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover)
	r.NotFound(controller.NotFound)
	r.MethodNotAllowed(controller.MethodNotAllowed)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	registerSwaggerRoutes(r)

	r.Route("/v1", func(r chi.Router) {
		register(r, controllers.Session)
		register(r, controllers.Reference)
		register(r, controllers.Rate)
		register(r, controllers.Charges)

		// Only routes that read or change session state resolve a session.
		r.Group(func(r chi.Router) {
			if sessionMiddleware != nil {
				r.Use(sessionMiddleware)
			}
			register(r, controllers.Payment)
			register(r, controllers.Ledger)
			register(r, controllers.Liquidity)
			register(r, controllers.Compliance)
		})
	})

	return r
}

func register(r chi.Router, registrar RouteRegistrar) {
	if registrar != nil {
		registrar.RegisterRoutes(r)
	}
}
