package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type ReferenceController struct {
	service service_interfaces.ReferenceService
}

func NewReferenceController(service service_interfaces.ReferenceService) *ReferenceController {
	return &ReferenceController{service: service}
}

func (c *ReferenceController) RegisterRoutes(r chi.Router) {
	r.Get("/reference", c.getReferenceData)
}

func (c *ReferenceController) getReferenceData(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetReferenceData(r.Context())
	respond(w, r, response, err, http.StatusOK, start)
}
