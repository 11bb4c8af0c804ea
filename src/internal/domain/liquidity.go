package domain

import "time"

const (
	MinNetPosition = -500000.0
	MaxNetPosition = 500000.0
)

type LiquidityPoint struct {
	Timestamp   time.Time
	Institution string
	Corridor    Corridor
	Stablecoin  Stablecoin
	NetPosition float64
}

func (p LiquidityPoint) Key() SeriesKey {
	return SeriesKey{Institution: p.Institution, Stablecoin: p.Stablecoin, Corridor: p.Corridor}
}

func ClampNetPosition(value float64) float64 {
	if value < MinNetPosition {
		return MinNetPosition
	}
	if value > MaxNetPosition {
		return MaxNetPosition
	}
	return value
}
