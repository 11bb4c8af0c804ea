package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/services"
)

var liquidityNow = time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

func newLiquidityService() *services.LiquidityService {
	generator := services.NewSeriesGenerator(memory.NewReferenceDataRepository())
	svc := services.NewLiquidityService(generator, services.NewForecastService(), 30, 2)
	svc.SetClock(func() time.Time { return liquidityNow })
	return svc
}

func seededSession(t *testing.T, svc *services.LiquidityService) *session.Session {
	t.Helper()
	sess := newTestSession(t)
	if err := svc.SeedSession(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return sess
}

var pspAlpha = models.SeriesRequest{Institution: "PSP Alpha", Stablecoin: "USDC", Corridor: "USD-MXN"}

func TestLiquidityServiceSeedSession(t *testing.T) {
	svc := newLiquidityService()
	sess := seededSession(t, svc)

	count, _ := sess.Liquidity.Count(context.Background())
	if count != 210 {
		t.Fatalf("expected 210 seeded points, got %d", count)
	}

	resp, err := svc.GetHistory(context.Background(), sess, pspAlpha)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resp.Data.Points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(resp.Data.Points))
	}
	if resp.Data.Points[29].Timestamp != "2025-07-10 00:00:00" {
		t.Fatalf("expected history to end today, got %s", resp.Data.Points[29].Timestamp)
	}
}

func TestLiquidityServiceRefreshAppendsPoint(t *testing.T) {
	svc := newLiquidityService()
	sess := seededSession(t, svc)

	resp, err := svc.Refresh(context.Background(), sess, pspAlpha)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.SeriesLength != 31 {
		t.Fatalf("expected series length 31, got %d", resp.Data.SeriesLength)
	}
	if resp.Data.Point.Timestamp != "2025-07-10 12:00:00" {
		t.Fatalf("expected point at the current time, got %s", resp.Data.Point.Timestamp)
	}
	if v := resp.Data.Point.NetPosition; v < domain.MinNetPosition || v > domain.MaxNetPosition {
		t.Fatalf("expected net position within bounds, got %v", v)
	}
}

func TestLiquidityServiceRefreshWithoutHistory(t *testing.T) {
	svc := newLiquidityService()
	sess := seededSession(t, svc)

	req := models.SeriesRequest{Institution: "FinTech Omega Nigeria", Stablecoin: "USDC", Corridor: "USD-MXN"}
	resp, err := svc.Refresh(context.Background(), sess, req)
	if !errors.Is(err, domain.ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Cannot refresh data: No historical data found for the selected parameters." {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}

	count, _ := sess.Liquidity.Count(context.Background())
	if count != 210 {
		t.Fatalf("expected liquidity unchanged, got %d points", count)
	}
}

func TestLiquidityServiceRefreshValidation(t *testing.T) {
	svc := newLiquidityService()

	resp, err := svc.Refresh(context.Background(), newTestSession(t), models.SeriesRequest{Institution: "PSP Alpha"})
	if err == nil {
		t.Fatal("expected validation error for incomplete selection")
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Please select Institution, Stablecoin, and Corridor." {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
}

func TestLiquidityServiceGenerateForecast(t *testing.T) {
	svc := newLiquidityService()
	sess := seededSession(t, svc)

	resp, err := svc.GenerateForecast(context.Background(), sess, models.ForecastRequest{SeriesRequest: pspAlpha, Horizon: 5})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	data := resp.Data
	if len(data.History) != 30 {
		t.Fatalf("expected 30 history points, got %d", len(data.History))
	}
	if len(data.Paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(data.Paths))
	}
	if data.Paths[0].Label != "Simulated EMA" || data.Paths[1].Label != "Simulated ARIMA" {
		t.Fatalf("unexpected labels %s, %s", data.Paths[0].Label, data.Paths[1].Label)
	}
	for _, path := range data.Paths {
		if len(path.Points) != 5 {
			t.Fatalf("expected 5 forecast points, got %d", len(path.Points))
		}
		if path.Points[0].Date != "2025-07-11" {
			t.Fatalf("expected forecast from tomorrow, got %s", path.Points[0].Date)
		}
	}
	if len(data.Average) != 5 {
		t.Fatalf("expected 5 averaged points, got %d", len(data.Average))
	}
	if len(data.Recommendations) == 0 && data.Message == "" {
		t.Fatal("expected recommendations or a no-concern message")
	}
	if data.ShortfallThreshold != -10000 || data.SurplusThreshold != 50000 {
		t.Fatalf("unexpected thresholds %v, %v", data.ShortfallThreshold, data.SurplusThreshold)
	}
}

func TestLiquidityServiceGenerateForecastRejectsHorizon(t *testing.T) {
	svc := newLiquidityService()
	sess := seededSession(t, svc)

	for _, horizon := range []int{2, 15} {
		_, err := svc.GenerateForecast(context.Background(), sess, models.ForecastRequest{SeriesRequest: pspAlpha, Horizon: horizon})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("horizon %d: expected validation error, got %v", horizon, err)
		}
	}
}

func TestLiquidityServiceGenerateForecastWithoutHistory(t *testing.T) {
	svc := newLiquidityService()

	resp, err := svc.GenerateForecast(context.Background(), newTestSession(t), models.ForecastRequest{SeriesRequest: pspAlpha})
	if !errors.Is(err, domain.ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected unsuccessful response")
	}
}
