package services_test

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/services"
)

func linearHistory(n int, slope, intercept float64) []domain.ForecastPoint {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.ForecastPoint, n)
	for i := range points {
		points[i] = domain.ForecastPoint{Date: start.AddDate(0, 0, i), Value: slope*float64(i) + intercept}
	}
	return points
}

func TestForecastServiceEmptyHistory(t *testing.T) {
	svc := services.NewForecastService()
	svc.SetClock(func() time.Time { return time.Date(2025, 7, 10, 18, 30, 0, 0, time.UTC) })

	paths := svc.Forecast(nil, 5, 2, rand.New(rand.NewPCG(1, 1)))
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	for _, path := range paths {
		if len(path.Points) != 5 {
			t.Fatalf("expected 5 points, got %d", len(path.Points))
		}
		for _, point := range path.Points {
			if point.Value != 0 {
				t.Fatalf("expected flat zero forecast, got %v", point.Value)
			}
		}
		if !path.Points[0].Date.Equal(time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected forecast to start tomorrow, got %v", path.Points[0].Date)
		}
	}
}

func TestForecastServiceSinglePointIsFlat(t *testing.T) {
	svc := services.NewForecastService()
	history := linearHistory(1, 0, 4200)

	paths := svc.Forecast(history, 3, 1, nil)
	for i, point := range paths[0].Points {
		if point.Value != 4200 {
			t.Fatalf("expected flat value 4200, got %v", point.Value)
		}
		if want := history[0].Date.AddDate(0, 0, i+1); !point.Date.Equal(want) {
			t.Fatalf("expected date %v, got %v", want, point.Date)
		}
	}
}

func TestForecastServiceLinearSeriesContinuesLine(t *testing.T) {
	svc := services.NewForecastService()
	history := linearHistory(10, 100, 500)

	paths := svc.Forecast(history, 7, 1, rand.New(rand.NewPCG(9, 9)))
	if len(paths) != 1 || len(paths[0].Points) != 7 {
		t.Fatalf("unexpected forecast shape %+v", paths)
	}

	for i, point := range paths[0].Points {
		want := 100*float64(10+i) + 500
		if math.Abs(point.Value-want) > 1e-6 {
			t.Fatalf("step %d: expected %v, got %v", i+1, want, point.Value)
		}
	}
	if want := history[9].Date.AddDate(0, 0, 1); !paths[0].Points[0].Date.Equal(want) {
		t.Fatalf("expected first forecast date %v, got %v", want, paths[0].Points[0].Date)
	}
}

func TestForecastServiceUsesTrailingWindow(t *testing.T) {
	svc := services.NewForecastService()
	history := append(linearHistory(20, -500, 0), linearHistory(30, 100, 500)...)
	for i := range history {
		history[i].Date = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
	}

	paths := svc.Forecast(history, 3, 1, nil)
	if want := 100*30.0 + 500; math.Abs(paths[0].Points[0].Value-want) > 1e-6 {
		t.Fatalf("expected %v from trailing 30 points, got %v", want, paths[0].Points[0].Value)
	}
}

func TestApplyStress(t *testing.T) {
	paths := []domain.ForecastPath{{
		Label:  "p",
		Points: []domain.ForecastPoint{{Value: 1000}, {Value: -1000}, {Value: 0}},
	}}

	stressed := services.ApplyStress(paths)
	want := []float64{800, -1200, 0}
	for i, point := range stressed[0].Points {
		if math.Abs(point.Value-want[i]) > 1e-9 {
			t.Fatalf("point %d: expected %v, got %v", i, want[i], point.Value)
		}
		if change := math.Abs(paths[0].Points[i].Value - point.Value); math.Abs(change-0.2*math.Abs(paths[0].Points[i].Value)) > 1e-9 {
			t.Fatalf("point %d: expected change of 20%% of magnitude, got %v", i, change)
		}
	}
	if paths[0].Points[0].Value != 1000 {
		t.Fatal("expected input paths to be left unchanged")
	}
}

func TestAveragePath(t *testing.T) {
	paths := []domain.ForecastPath{
		{Points: []domain.ForecastPoint{{Value: 10}, {Value: 20}, {Value: 30}}},
		{Points: []domain.ForecastPoint{{Value: 30}, {Value: 40}}},
	}

	avg := services.AveragePath(paths)
	if len(avg) != 2 || avg[0].Value != 20 || avg[1].Value != 30 {
		t.Fatalf("unexpected average %+v", avg)
	}
	if services.AveragePath(nil) != nil {
		t.Fatal("expected nil average for no paths")
	}
}

func TestForecastServiceRecommendThresholds(t *testing.T) {
	svc := services.NewForecastService()
	date := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)
	average := []domain.ForecastPoint{
		{Date: date, Value: -10000},
		{Date: date.AddDate(0, 0, 1), Value: -10000.01},
		{Date: date.AddDate(0, 0, 2), Value: 50000},
		{Date: date.AddDate(0, 0, 3), Value: 50000.01},
	}

	recs := svc.Recommend(average, flatKey)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	shortfall := recs[0]
	if shortfall.Kind != domain.RecommendationShortfall || shortfall.Day != 2 {
		t.Fatalf("unexpected shortfall %+v", shortfall)
	}
	if !strings.Contains(shortfall.Message, "2025-07-12 (Day 2)") || !strings.Contains(shortfall.Message, "Source USDC or adjust flows.") {
		t.Fatalf("unexpected shortfall message %q", shortfall.Message)
	}

	surplus := recs[1]
	if surplus.Kind != domain.RecommendationSurplus || surplus.Day != 4 {
		t.Fatalf("unexpected surplus %+v", surplus)
	}
	if !strings.Contains(surplus.Message, "Offer short-term lending on StableNet.") {
		t.Fatalf("unexpected surplus message %q", surplus.Message)
	}
}

func TestPathLabel(t *testing.T) {
	tests := map[int]string{
		0: "Simulated EMA",
		1: "Simulated ARIMA",
		2: "Simulated Forecast Path 3",
	}
	for index, want := range tests {
		if got := services.PathLabel(index); got != want {
			t.Fatalf("PathLabel(%d) = %q, want %q", index, got, want)
		}
	}
}

func TestForecastServicePathsShareStartAndDiverge(t *testing.T) {
	values := []float64{1000, 1200, 900, 1300, 1100, 1250}
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	history := make([]domain.ForecastPoint, len(values))
	for i, v := range values {
		history[i] = domain.ForecastPoint{Date: start.AddDate(0, 0, i), Value: v}
	}

	// least squares over x = 0..n-1
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n
	origin := slope*n + intercept

	changes := make([]float64, len(values)-1)
	var mean float64
	for i := 1; i < len(values); i++ {
		changes[i-1] = values[i] - values[i-1]
		mean += changes[i-1]
	}
	mean /= float64(len(changes))
	var squares float64
	for _, c := range changes {
		squares += (c - mean) * (c - mean)
	}
	volatility := math.Sqrt(squares / float64(len(changes)-1))

	if got := services.ChangeVolatility(values); math.Abs(got-volatility) > 1e-9 {
		t.Fatalf("expected volatility %v, got %v", volatility, got)
	}

	const horizon = 5
	paths := services.NewForecastService().Forecast(history, horizon, 2, rand.New(rand.NewPCG(5, 9)))
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}

	first, second := paths[0].Points, paths[1].Points
	if math.Abs(first[0].Value-origin) > 1e-6 || first[0].Value != second[0].Value {
		t.Fatalf("expected both paths to start at %v, got %v and %v", origin, first[0].Value, second[0].Value)
	}
	for i := 1; i < horizon; i++ {
		if first[i].Value == second[i].Value {
			t.Fatalf("expected paths to diverge at step %d, both %v", i, first[i].Value)
		}
	}

	// each path draws its own noise, one per step after the first
	replay := rand.New(rand.NewPCG(5, 9))
	for p, path := range paths {
		value := origin
		for i := 1; i < horizon; i++ {
			value = value + slope + replay.NormFloat64()*volatility
			if math.Abs(path.Points[i].Value-value) > 1e-6 {
				t.Fatalf("path %d step %d: expected %v, got %v", p, i, value, path.Points[i].Value)
			}
		}
	}
}

func TestForecastServiceCapsPathCount(t *testing.T) {
	paths := services.NewForecastService().Forecast(linearHistory(10, 5, 100), 3, 1<<60, rand.New(rand.NewPCG(1, 2)))
	if len(paths) != domain.MaxForecastPaths {
		t.Fatalf("expected %d paths, got %d", domain.MaxForecastPaths, len(paths))
	}
}
