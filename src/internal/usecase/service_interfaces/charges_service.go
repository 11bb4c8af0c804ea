package service_interfaces

import (
	"context"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type ChargesService interface {
	GetChargesSummary(ctx context.Context, req models.GetChargesRequest) (commons.Response[models.GetChargesResponse], error)
	CalculateFee(amount decimal.Decimal, priority domain.Priority) decimal.Decimal
	TraditionalFeeRange(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal)
}
