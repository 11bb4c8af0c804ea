package service_interfaces

import (
	"context"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type RateService interface {
	GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error)
	GetRate(ctx context.Context, req models.GetRateRequest) (commons.Response[models.RateResponse], error)
	LookupRate(ctx context.Context, fromCoin domain.Stablecoin, toCoin domain.Stablecoin) (decimal.Decimal, bool, error)
	ConvertRate(ctx context.Context, amount decimal.Decimal, fromCoin domain.Stablecoin, toCoin domain.Stablecoin) (decimal.Decimal, decimal.Decimal, bool, error)
}
