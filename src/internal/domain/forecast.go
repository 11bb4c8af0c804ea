package domain

import "time"

const (
	ShortfallThreshold = -10000.0
	SurplusThreshold   = 50000.0
	StressFactor       = 0.20

	MinForecastHorizon = 3
	MaxForecastHorizon = 14
	MaxForecastPaths   = 10
)

type ForecastPoint struct {
	Date  time.Time
	Value float64
}

type ForecastPath struct {
	Label  string
	Points []ForecastPoint
}

type RecommendationKind string

const (
	RecommendationShortfall RecommendationKind = "shortfall"
	RecommendationSurplus   RecommendationKind = "surplus"
)

type Recommendation struct {
	Day     int
	Date    time.Time
	Kind    RecommendationKind
	Amount  float64
	Message string
}
