package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type PaymentController struct {
	service service_interfaces.PaymentService
}

func NewPaymentController(service service_interfaces.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) RegisterRoutes(r chi.Router) {
	r.Post("/payments", c.submitPayment)
}

func (c *PaymentController) submitPayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sess, ok := requireSession[models.SubmitPaymentResponse](w, r, start)
	if !ok {
		return
	}

	var req models.SubmitPaymentRequest
	if !decodeBody[models.SubmitPaymentResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.SubmitPayment(r.Context(), sess, req)
	respond(w, r, response, err, http.StatusCreated, start)
}
