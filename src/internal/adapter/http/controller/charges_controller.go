package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ChargesController struct {
	service service_interfaces.ChargesService
}

func NewChargesController(service service_interfaces.ChargesService) *ChargesController {
	return &ChargesController{service: service}
}

func (c *ChargesController) RegisterRoutes(r chi.Router) {
	r.Get("/charges", c.getCharges)
}

func (c *ChargesController) getCharges(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.GetChargesResponse](commons.MessageValidationFailed, "amount must be a valid decimal")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	req := models.GetChargesRequest{
		Amount:   amount,
		Priority: r.URL.Query().Get("priority"),
	}
	logRequest(r, req)

	response, err := c.service.GetChargesSummary(r.Context(), req)
	respond(w, r, response, err, http.StatusOK, start)
}
