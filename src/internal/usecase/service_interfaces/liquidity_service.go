package service_interfaces

import (
	"context"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
)

type LiquidityService interface {
	SeedSession(ctx context.Context, sess *session.Session) error
	GetHistory(ctx context.Context, sess *session.Session, req models.SeriesRequest) (commons.Response[models.LiquiditySeriesResponse], error)
	Refresh(ctx context.Context, sess *session.Session, req models.SeriesRequest) (commons.Response[models.RefreshLiquidityResponse], error)
	GenerateForecast(ctx context.Context, sess *session.Session, req models.ForecastRequest) (commons.Response[models.ForecastResponse], error)
}
