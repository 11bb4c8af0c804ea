package services_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
)

type referenceRepoStub struct {
	getRatesFn           func(ctx context.Context) ([]domain.Rate, error)
	getRateFn            func(ctx context.Context, fromCoin domain.Stablecoin, toCoin domain.Stablecoin) (domain.Rate, error)
	getInstitutionsFn    func(ctx context.Context) ([]string, error)
	getRoutesFn          func(ctx context.Context) ([]domain.InstitutionRoute, error)
	getSeriesKeysFn      func(ctx context.Context) ([]domain.SeriesKey, error)
	getPositionProfileFn func(ctx context.Context, key domain.SeriesKey) (domain.PositionProfile, error)
}

func (s referenceRepoStub) GetRates(ctx context.Context) ([]domain.Rate, error) {
	if s.getRatesFn != nil {
		return s.getRatesFn(ctx)
	}
	return nil, nil
}

func (s referenceRepoStub) GetRate(ctx context.Context, fromCoin domain.Stablecoin, toCoin domain.Stablecoin) (domain.Rate, error) {
	if s.getRateFn != nil {
		return s.getRateFn(ctx, fromCoin, toCoin)
	}
	return domain.Rate{}, domain.ErrRecordNotFound
}

func (s referenceRepoStub) GetInstitutions(ctx context.Context) ([]string, error) {
	if s.getInstitutionsFn != nil {
		return s.getInstitutionsFn(ctx)
	}
	return nil, nil
}

func (s referenceRepoStub) GetRoutes(ctx context.Context) ([]domain.InstitutionRoute, error) {
	if s.getRoutesFn != nil {
		return s.getRoutesFn(ctx)
	}
	return nil, nil
}

func (s referenceRepoStub) GetSeriesKeys(ctx context.Context) ([]domain.SeriesKey, error) {
	if s.getSeriesKeysFn != nil {
		return s.getSeriesKeysFn(ctx)
	}
	return nil, nil
}

func (s referenceRepoStub) GetPositionProfile(ctx context.Context, key domain.SeriesKey) (domain.PositionProfile, error) {
	if s.getPositionProfileFn != nil {
		return s.getPositionProfileFn(ctx, key)
	}
	return domain.PositionProfile{}, domain.ErrRecordNotFound
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(
		"test-session",
		memory.NewLedgerRepository(),
		memory.NewLiquidityRepository(1000),
		rand.New(rand.NewPCG(1, 2)),
	)
}
