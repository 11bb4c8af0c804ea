package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/shopspring/decimal"
)

const (
	trendWindow           = 7
	tickVolatilityScaling = 1.5
)

// SeriesGenerator produces synthetic liquidity positions from the configured
// base, trend and volatility of each series.
type SeriesGenerator struct {
	referenceRepo domain.ReferenceDataRepository
}

func NewSeriesGenerator(referenceRepo domain.ReferenceDataRepository) *SeriesGenerator {
	return &SeriesGenerator{referenceRepo: referenceRepo}
}

// GenerateHistory emits one point per known series per day over the days
// ending at startDate, oldest first. Day d of a series has the value
// base + trend*d + N(0, volatility).
func (g *SeriesGenerator) GenerateHistory(ctx context.Context, startDate time.Time, days int, rng *rand.Rand) ([]domain.LiquidityPoint, error) {
	if days <= 0 {
		return nil, nil
	}

	keys, err := g.referenceRepo.GetSeriesKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("get series keys: %w", err)
	}

	profiles := make([]domain.PositionProfile, len(keys))
	for i, key := range keys {
		profile, err := g.Profile(ctx, key)
		if err != nil {
			return nil, err
		}
		profiles[i] = profile
	}

	end := truncateToDay(startDate)
	first := end.AddDate(0, 0, -(days - 1))

	points := make([]domain.LiquidityPoint, 0, days*len(keys))
	for d := 0; d < days; d++ {
		date := first.AddDate(0, 0, d)
		for i, key := range keys {
			profile := profiles[i]
			value := profile.Base + profile.TrendPerDay*float64(d) + normal(rng, profile.Volatility)
			points = append(points, domain.LiquidityPoint{
				Timestamp:   date,
				Institution: key.Institution,
				Corridor:    key.Corridor,
				Stablecoin:  key.Stablecoin,
				NetPosition: round2(value),
			})
		}
	}

	logger.Debug("series generator generated history", logger.Fields{
		"days":   days,
		"series": len(keys),
		"points": len(points),
	})
	return points, nil
}

// NextPoint simulates one real-time tick for a series from its history.
func (g *SeriesGenerator) NextPoint(ctx context.Context, key domain.SeriesKey, history []domain.LiquidityPoint, now time.Time, rng *rand.Rand) (domain.LiquidityPoint, error) {
	profile, err := g.Profile(ctx, key)
	if err != nil {
		return domain.LiquidityPoint{}, err
	}

	values := make([]float64, 0, len(history))
	for _, point := range history {
		values = append(values, point.NetPosition)
	}

	var last float64
	if len(values) > 0 {
		last = values[len(values)-1]
	}

	return domain.LiquidityPoint{
		Timestamp:   now,
		Institution: key.Institution,
		Corridor:    key.Corridor,
		Stablecoin:  key.Stablecoin,
		NetPosition: NextPosition(last, values, profile.Volatility, rng),
	}, nil
}

// Profile returns the configured profile, or the default one for series
// without configuration.
func (g *SeriesGenerator) Profile(ctx context.Context, key domain.SeriesKey) (domain.PositionProfile, error) {
	profile, err := g.referenceRepo.GetPositionProfile(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.DefaultPositionProfile, nil
		}
		return domain.PositionProfile{}, fmt.Errorf("get position profile: %w", err)
	}
	return profile, nil
}

// NextPosition continues the average change over the trailing week of
// history with noise of 1.5x volatility, clamped and rounded to cents.
func NextPosition(last float64, history []float64, volatility float64, rng *rand.Rand) float64 {
	trailing := history
	if len(trailing) > trendWindow {
		trailing = trailing[len(trailing)-trendWindow:]
	}

	var averageChange float64
	if len(trailing) > 1 {
		averageChange = (trailing[len(trailing)-1] - trailing[0]) / float64(len(trailing)-1)
	}

	next := last + averageChange + normal(rng, volatility*tickVolatilityScaling)
	return round2(domain.ClampNetPosition(next))
}

func normal(rng *rand.Rand, stdDev float64) float64 {
	if stdDev == 0 {
		return 0
	}
	if rng == nil {
		return rand.NormFloat64() * stdDev
	}
	return rng.NormFloat64() * stdDev
}

func round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
