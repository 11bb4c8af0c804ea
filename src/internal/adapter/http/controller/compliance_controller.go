package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type ComplianceController struct {
	service service_interfaces.ComplianceService
}

func NewComplianceController(service service_interfaces.ComplianceService) *ComplianceController {
	return &ComplianceController{service: service}
}

func (c *ComplianceController) RegisterRoutes(r chi.Router) {
	r.Get("/compliance", c.runAnalysis)
}

func (c *ComplianceController) runAnalysis(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.ComplianceRequest{
		Corridor:     r.URL.Query().Get("corridor"),
		AnalysisType: r.URL.Query().Get("analysisType"),
	}
	logRequest(r, req)

	response, err := c.service.RunAnalysis(r.Context(), req)
	respond(w, r, response, err, http.StatusOK, start)
}
