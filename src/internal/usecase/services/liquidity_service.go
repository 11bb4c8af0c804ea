package services

import (
	"context"
	"fmt"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
)

var (
	_ service_interfaces.LiquidityService = (*LiquidityService)(nil)
	_ session.Seeder                      = (*LiquidityService)(nil)
)

const (
	liquidityTimestampLayout = "2006-01-02 15:04:05"
	forecastDateLayout       = "2006-01-02"

	noHistoryMessage         = "no historical data"
	refreshNoHistoryProblem  = "Cannot refresh data: No historical data found for the selected parameters."
	forecastNoHistoryProblem = "Select an Institution, Stablecoin, and Corridor with available historical data to generate a forecast."
)

type LiquidityService struct {
	generator     *SeriesGenerator
	forecaster    *ForecastService
	historyDays   int
	forecastPaths int
	now           func() time.Time
}

func NewLiquidityService(generator *SeriesGenerator, forecaster *ForecastService, historyDays int, forecastPaths int) *LiquidityService {
	return &LiquidityService{
		generator:     generator,
		forecaster:    forecaster,
		historyDays:   historyDays,
		forecastPaths: forecastPaths,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// SeedSession fills a new session with the bulk history ending today.
func (s *LiquidityService) SeedSession(ctx context.Context, sess *session.Session) error {
	points, err := s.generator.GenerateHistory(ctx, s.now(), s.historyDays, sess.Rand)
	if err != nil {
		return fmt.Errorf("generate history: %w", err)
	}
	if err := sess.Liquidity.Append(ctx, points...); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	logger.Info("liquidity service seeded session", logger.Fields{
		"sessionId": sess.ID,
		"points":    len(points),
	})
	return nil
}

func (s *LiquidityService) GetHistory(ctx context.Context, sess *session.Session, req models.SeriesRequest) (commons.Response[models.LiquiditySeriesResponse], error) {
	if err := req.Validate(); err != nil {
		logger.Error("liquidity service get history validation failed", err, nil)
		return commons.ValidationFailedResponse[models.LiquiditySeriesResponse](err), err
	}

	series, err := sess.Liquidity.GetSeries(ctx, req.Key())
	if err != nil {
		logger.Error("liquidity service get series failed", err, nil)
		return commons.ErrorResponse[models.LiquiditySeriesResponse]("failed to fetch liquidity", "Unable to fetch liquidity data right now"), err
	}

	return commons.SuccessResponse("liquidity history fetched successfully", models.LiquiditySeriesResponse{
		Points: toPointResponses(series),
	}), nil
}

// Refresh appends one simulated real-time point to an existing series.
func (s *LiquidityService) Refresh(ctx context.Context, sess *session.Session, req models.SeriesRequest) (commons.Response[models.RefreshLiquidityResponse], error) {
	logger.Info("liquidity service refresh request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("liquidity service refresh validation failed", err, nil)
		return commons.ValidationFailedResponse[models.RefreshLiquidityResponse](err), err
	}

	key := req.Key()
	series, err := sess.Liquidity.GetSeries(ctx, key)
	if err != nil {
		logger.Error("liquidity service get series failed", err, nil)
		return commons.ErrorResponse[models.RefreshLiquidityResponse]("failed to refresh liquidity", "Unable to refresh liquidity data right now"), err
	}
	if len(series) == 0 {
		logger.Warn("liquidity service refresh without history", logger.Fields{"series": key})
		return commons.ErrorResponse[models.RefreshLiquidityResponse](noHistoryMessage, refreshNoHistoryProblem), domain.ErrNoHistory
	}

	point, err := s.generator.NextPoint(ctx, key, series, s.now(), sess.Rand)
	if err != nil {
		logger.Error("liquidity service next point failed", err, nil)
		return commons.ErrorResponse[models.RefreshLiquidityResponse]("failed to refresh liquidity", "Unable to refresh liquidity data right now"), err
	}
	if err := sess.Liquidity.Append(ctx, point); err != nil {
		logger.Error("liquidity service append point failed", err, nil)
		return commons.ErrorResponse[models.RefreshLiquidityResponse]("failed to refresh liquidity", "Unable to refresh liquidity data right now"), err
	}

	updated, err := sess.Liquidity.GetSeries(ctx, key)
	if err != nil {
		return commons.ErrorResponse[models.RefreshLiquidityResponse]("failed to refresh liquidity", "Unable to refresh liquidity data right now"), err
	}

	logger.Info("liquidity service refresh success", logger.Fields{
		"netPosition":  point.NetPosition,
		"seriesLength": len(updated),
	})

	return commons.SuccessResponse("Simulated real-time data updated!", models.RefreshLiquidityResponse{
		Point:        toPointResponse(point),
		SeriesLength: len(updated),
	}), nil
}

// GenerateForecast projects the selected series and derives recommendations
// from the pointwise average of all paths.
func (s *LiquidityService) GenerateForecast(ctx context.Context, sess *session.Session, req models.ForecastRequest) (commons.Response[models.ForecastResponse], error) {
	logger.Info("liquidity service generate forecast request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("liquidity service generate forecast validation failed", err, nil)
		return commons.ValidationFailedResponse[models.ForecastResponse](err), err
	}

	key := req.Key()
	series, err := sess.Liquidity.GetSeries(ctx, key)
	if err != nil {
		logger.Error("liquidity service get series failed", err, nil)
		return commons.ErrorResponse[models.ForecastResponse]("failed to generate forecast", "Unable to generate forecast right now"), err
	}
	if len(series) == 0 {
		logger.Warn("liquidity service forecast without history", logger.Fields{"series": key})
		return commons.ErrorResponse[models.ForecastResponse](noHistoryMessage, forecastNoHistoryProblem), domain.ErrNoHistory
	}

	if len(series) > forecastWindow {
		series = series[len(series)-forecastWindow:]
	}
	history := make([]domain.ForecastPoint, 0, len(series))
	for _, point := range series {
		history = append(history, domain.ForecastPoint{Date: point.Timestamp, Value: point.NetPosition})
	}

	horizon := req.HorizonValue()
	paths := req.Paths
	if paths == 0 {
		paths = s.forecastPaths
	}

	projected := s.forecaster.Forecast(history, horizon, paths, sess.Rand)
	if req.Stress {
		projected = ApplyStress(projected)
	}
	average := AveragePath(projected)
	recommendations := s.forecaster.Recommend(average, key)

	resp := models.ForecastResponse{
		History:            toPointResponses(series),
		Paths:              make([]models.ForecastPathResponse, 0, len(projected)),
		Average:            toForecastPointResponses(average),
		Recommendations:    make([]models.RecommendationResponse, 0, len(recommendations)),
		ShortfallThreshold: domain.ShortfallThreshold,
		SurplusThreshold:   domain.SurplusThreshold,
		Stressed:           req.Stress,
	}
	for _, path := range projected {
		resp.Paths = append(resp.Paths, models.ForecastPathResponse{
			Label:  path.Label,
			Points: toForecastPointResponses(path.Points),
		})
	}
	for _, rec := range recommendations {
		resp.Recommendations = append(resp.Recommendations, models.RecommendationResponse{
			Day:     rec.Day,
			Date:    rec.Date.Format(forecastDateLayout),
			Kind:    string(rec.Kind),
			Amount:  rec.Amount,
			Message: rec.Message,
		})
	}
	if len(recommendations) == 0 {
		resp.Message = fmt.Sprintf(
			"No significant liquidity concerns projected on average for %s in %s (%s) over the next %d days.",
			key.Institution, key.Corridor, key.Stablecoin, horizon,
		)
	}

	logger.Info("liquidity service generate forecast success", logger.Fields{
		"horizon":         horizon,
		"paths":           len(projected),
		"stressed":        req.Stress,
		"recommendations": len(recommendations),
	})

	return commons.SuccessResponse("forecast generated successfully", resp), nil
}

func toPointResponse(point domain.LiquidityPoint) models.LiquidityPointResponse {
	return models.LiquidityPointResponse{
		Timestamp:   point.Timestamp.Format(liquidityTimestampLayout),
		Institution: point.Institution,
		Corridor:    string(point.Corridor),
		Stablecoin:  string(point.Stablecoin),
		NetPosition: point.NetPosition,
	}
}

func toPointResponses(points []domain.LiquidityPoint) []models.LiquidityPointResponse {
	out := make([]models.LiquidityPointResponse, 0, len(points))
	for _, point := range points {
		out = append(out, toPointResponse(point))
	}
	return out
}

func toForecastPointResponses(points []domain.ForecastPoint) []models.ForecastPointResponse {
	out := make([]models.ForecastPointResponse, 0, len(points))
	for _, point := range points {
		out = append(out, models.ForecastPointResponse{
			Date:  point.Date.Format(forecastDateLayout),
			Value: point.Value,
		})
	}
	return out
}
