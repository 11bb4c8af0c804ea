package service_interfaces

import (
	"context"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
)

type PaymentService interface {
	Prepare(ctx context.Context, req models.SubmitPaymentRequest) (domain.LedgerEntry, error)
	SubmitPayment(ctx context.Context, sess *session.Session, req models.SubmitPaymentRequest) (commons.Response[models.SubmitPaymentResponse], error)
}
