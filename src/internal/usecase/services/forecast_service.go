package services

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

const (
	forecastWindow            = 30
	defaultForecastVolatility = 1000.0
)

var pathLabels = []string{"Simulated EMA", "Simulated ARIMA"}

// ForecastService projects liquidity with a linear trend and noisy random
// walks. It never fails: sparse input yields flat paths.
type ForecastService struct {
	now     func() time.Time
	printer *message.Printer
}

func NewForecastService() *ForecastService {
	return &ForecastService{
		now:     time.Now,
		printer: message.NewPrinter(language.English),
	}
}

// Forecast returns paths projected over horizon days starting the day after
// the last historical point.
//
// paths is capped at domain.MaxForecastPaths.
//
// With fewer than two points every path repeats the last value (0 when
// empty). Otherwise a line is fitted to the trailing 30 points, every path
// starts at the line one step past the data and then moves by the slope
// plus N(0, sd of daily changes) per day.
func (s *ForecastService) Forecast(history []domain.ForecastPoint, horizon int, paths int, rng *rand.Rand) []domain.ForecastPath {
	if paths <= 0 {
		return nil
	}
	if paths > domain.MaxForecastPaths {
		paths = domain.MaxForecastPaths
	}
	if horizon < 0 {
		horizon = 0
	}

	series := append([]domain.ForecastPoint(nil), history...)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	if len(series) < 2 {
		var last float64
		anchor := truncateToDay(s.now())
		if len(series) == 1 {
			last = series[0].Value
			anchor = series[0].Date
		}
		return s.flatPaths(anchor, last, horizon, paths)
	}

	if len(series) > forecastWindow {
		series = series[len(series)-forecastWindow:]
	}

	k := len(series)
	x := make([]float64, k)
	y := make([]float64, k)
	for i, point := range series {
		x[i] = float64(i)
		y[i] = point.Value
	}
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(slope) || math.IsNaN(intercept) {
		slope, intercept = 0, y[k-1]
	}

	volatility := changeVolatility(y)
	dates := forecastDates(series[k-1].Date, horizon)
	start := slope*float64(k) + intercept

	out := make([]domain.ForecastPath, 0, paths)
	for p := 0; p < paths; p++ {
		points := make([]domain.ForecastPoint, horizon)
		value := start
		for i := 0; i < horizon; i++ {
			if i > 0 {
				value = value + slope + normal(rng, volatility)
			}
			points[i] = domain.ForecastPoint{Date: dates[i], Value: value}
		}
		out = append(out, domain.ForecastPath{Label: PathLabel(p), Points: points})
	}
	return out
}

// ApplyStress models 20% increased outflows: every value loses 20% of its
// magnitude, so positives shrink and negatives deepen.
func ApplyStress(paths []domain.ForecastPath) []domain.ForecastPath {
	out := make([]domain.ForecastPath, 0, len(paths))
	for _, path := range paths {
		points := make([]domain.ForecastPoint, len(path.Points))
		for i, point := range path.Points {
			points[i] = domain.ForecastPoint{
				Date:  point.Date,
				Value: point.Value - math.Abs(point.Value)*domain.StressFactor,
			}
		}
		out = append(out, domain.ForecastPath{Label: path.Label, Points: points})
	}
	return out
}

// AveragePath is the pointwise mean of paths, over the shortest path length.
func AveragePath(paths []domain.ForecastPath) []domain.ForecastPoint {
	if len(paths) == 0 {
		return nil
	}

	length := len(paths[0].Points)
	for _, path := range paths[1:] {
		if len(path.Points) < length {
			length = len(path.Points)
		}
	}

	out := make([]domain.ForecastPoint, length)
	values := make([]float64, len(paths))
	for i := 0; i < length; i++ {
		for p, path := range paths {
			values[p] = path.Points[i].Value
		}
		out[i] = domain.ForecastPoint{Date: paths[0].Points[i].Date, Value: stat.Mean(values, nil)}
	}
	return out
}

// Recommend flags days whose averaged value is strictly below the shortfall
// threshold or strictly above the surplus threshold.
func (s *ForecastService) Recommend(average []domain.ForecastPoint, key domain.SeriesKey) []domain.Recommendation {
	var out []domain.Recommendation
	for i, point := range average {
		day := i + 1
		date := point.Date.Format(forecastDateLayout)

		switch {
		case point.Value < domain.ShortfallThreshold:
			amount := math.Abs(point.Value)
			out = append(out, domain.Recommendation{
				Day:    day,
				Date:   point.Date,
				Kind:   domain.RecommendationShortfall,
				Amount: amount,
				Message: s.printer.Sprintf(
					"Projected average shortfall of %.0f for %s in %s (%s) on %s (Day %d). Recommendation: Source %s or adjust flows.",
					amount, key.Institution, key.Corridor, key.Stablecoin, date, day, key.Stablecoin,
				),
			})
		case point.Value > domain.SurplusThreshold:
			out = append(out, domain.Recommendation{
				Day:    day,
				Date:   point.Date,
				Kind:   domain.RecommendationSurplus,
				Amount: point.Value,
				Message: s.printer.Sprintf(
					"Projected average surplus of %.0f for %s in %s (%s) on %s (Day %d). Recommendation: Offer short-term lending on StableNet.",
					point.Value, key.Institution, key.Corridor, key.Stablecoin, date, day,
				),
			})
		}
	}
	return out
}

// PathLabel names a path by position. Labels are presentation only.
func PathLabel(index int) string {
	if index >= 0 && index < len(pathLabels) {
		return pathLabels[index]
	}
	return fmt.Sprintf("Simulated Forecast Path %d", index+1)
}

func (s *ForecastService) flatPaths(anchor time.Time, value float64, horizon int, paths int) []domain.ForecastPath {
	dates := forecastDates(anchor, horizon)
	out := make([]domain.ForecastPath, 0, paths)
	for p := 0; p < paths; p++ {
		points := make([]domain.ForecastPoint, horizon)
		for i := range points {
			points[i] = domain.ForecastPoint{Date: dates[i], Value: value}
		}
		out = append(out, domain.ForecastPath{Label: PathLabel(p), Points: points})
	}
	return out
}

// changeVolatility is the sample standard deviation of day-over-day changes.
// It falls back to a fixed default when fewer than two changes exist.
func changeVolatility(values []float64) float64 {
	if len(values) < 3 {
		return defaultForecastVolatility
	}
	changes := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		changes[i-1] = values[i] - values[i-1]
	}
	volatility := stat.StdDev(changes, nil)
	if math.IsNaN(volatility) {
		return defaultForecastVolatility
	}
	return volatility
}

func forecastDates(last time.Time, horizon int) []time.Time {
	dates := make([]time.Time, horizon)
	for i := range dates {
		dates[i] = last.AddDate(0, 0, i+1)
	}
	return dates
}
