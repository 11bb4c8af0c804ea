package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type LiquidityController struct {
	service service_interfaces.LiquidityService
}

func NewLiquidityController(service service_interfaces.LiquidityService) *LiquidityController {
	return &LiquidityController{service: service}
}

func (c *LiquidityController) RegisterRoutes(r chi.Router) {
	r.Get("/liquidity", c.getHistory)
	r.Post("/liquidity/refresh", c.refresh)
	r.Post("/liquidity/forecast", c.forecast)
}

func (c *LiquidityController) getHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sess, ok := requireSession[models.LiquiditySeriesResponse](w, r, start)
	if !ok {
		return
	}

	req := models.SeriesRequest{
		Institution: r.URL.Query().Get("institution"),
		Stablecoin:  r.URL.Query().Get("stablecoin"),
		Corridor:    r.URL.Query().Get("corridor"),
	}
	logRequest(r, req)

	response, err := c.service.GetHistory(r.Context(), sess, req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *LiquidityController) refresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sess, ok := requireSession[models.RefreshLiquidityResponse](w, r, start)
	if !ok {
		return
	}

	var req models.SeriesRequest
	if !decodeBody[models.RefreshLiquidityResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.Refresh(r.Context(), sess, req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *LiquidityController) forecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sess, ok := requireSession[models.ForecastResponse](w, r, start)
	if !ok {
		return
	}

	var req models.ForecastRequest
	if !decodeBody[models.ForecastResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.GenerateForecast(r.Context(), sess, req)
	respond(w, r, response, err, http.StatusOK, start)
}
