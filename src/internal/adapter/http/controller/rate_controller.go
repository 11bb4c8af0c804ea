package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type RateController struct {
	service service_interfaces.RateService
}

func NewRateController(service service_interfaces.RateService) *RateController {
	return &RateController{service: service}
}

func (c *RateController) RegisterRoutes(r chi.Router) {
	r.Get("/rates", c.getRates)
	r.Get("/rate", c.getRate)
}

func (c *RateController) getRates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetRates(r.Context())
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *RateController) getRate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.GetRateRequest{
		FromCoin: r.URL.Query().Get("fromCoin"),
		ToCoin:   r.URL.Query().Get("toCoin"),
	}
	logRequest(r, req)

	response, err := c.service.GetRate(r.Context(), req)
	respond(w, r, response, err, http.StatusOK, start)
}
