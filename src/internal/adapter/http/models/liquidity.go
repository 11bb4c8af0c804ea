package models

import (
	"fmt"
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
)

const DefaultForecastHorizon = 7

type SeriesRequest struct {
	Institution string `json:"institution"`
	Stablecoin  string `json:"stablecoin"`
	Corridor    string `json:"corridor"`
}

func (r SeriesRequest) Key() domain.SeriesKey {
	return domain.SeriesKey{
		Institution: strings.TrimSpace(r.Institution),
		Stablecoin:  domain.Stablecoin(strings.ToUpper(strings.TrimSpace(r.Stablecoin))),
		Corridor:    domain.Corridor(strings.ToUpper(strings.TrimSpace(r.Corridor))),
	}
}

func (r SeriesRequest) Validate() error {
	if !r.Key().IsComplete() {
		return domain.NewValidationError("Please select Institution, Stablecoin, and Corridor.")
	}
	return nil
}

type ForecastRequest struct {
	SeriesRequest
	Horizon int  `json:"horizon"`
	Stress  bool `json:"stress"`
	Paths   int  `json:"paths,omitempty"`
}

func (r ForecastRequest) Validate() error {
	var errs []string

	if err := r.SeriesRequest.Validate(); err != nil {
		errs = append(errs, domain.ValidationProblems(err)...)
	}
	if h := r.HorizonValue(); h < domain.MinForecastHorizon || h > domain.MaxForecastHorizon {
		errs = append(errs, "Forecast Horizon must be between 3 and 14 days.")
	}
	if r.Paths < 0 || r.Paths > domain.MaxForecastPaths {
		errs = append(errs, fmt.Sprintf("paths must be between 1 and %d", domain.MaxForecastPaths))
	}

	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}
	return nil
}

// HorizonValue defaults to a week when unset.
func (r ForecastRequest) HorizonValue() int {
	if r.Horizon == 0 {
		return DefaultForecastHorizon
	}
	return r.Horizon
}

type LiquidityPointResponse struct {
	Timestamp   string  `json:"timestamp"`
	Institution string  `json:"institution"`
	Corridor    string  `json:"corridor"`
	Stablecoin  string  `json:"stablecoin"`
	NetPosition float64 `json:"netPosition"`
}

type LiquiditySeriesResponse struct {
	Points []LiquidityPointResponse `json:"points"`
}

type RefreshLiquidityResponse struct {
	Point        LiquidityPointResponse `json:"point"`
	SeriesLength int                    `json:"seriesLength"`
}

type ForecastPointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ForecastPathResponse struct {
	Label  string                  `json:"label"`
	Points []ForecastPointResponse `json:"points"`
}

type RecommendationResponse struct {
	Day     int     `json:"day"`
	Date    string  `json:"date"`
	Kind    string  `json:"kind"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

type ForecastResponse struct {
	History            []LiquidityPointResponse `json:"history"`
	Paths              []ForecastPathResponse   `json:"paths"`
	Average            []ForecastPointResponse  `json:"average"`
	Recommendations    []RecommendationResponse `json:"recommendations"`
	ShortfallThreshold float64                  `json:"shortfallThreshold"`
	SurplusThreshold   float64                  `json:"surplusThreshold"`
	Stressed           bool                     `json:"stressed"`
	Message            string                   `json:"message,omitempty"`
}
