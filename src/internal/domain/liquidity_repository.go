package domain

import "context"

type LiquidityRepository interface {
	// Append adds points in order. Implementations may drop the oldest
	// points to stay within a size cap.
	Append(ctx context.Context, points ...LiquidityPoint) error
	// GetSeries returns the points of one series in ascending timestamp order.
	GetSeries(ctx context.Context, key SeriesKey) ([]LiquidityPoint, error)
	Count(ctx context.Context) (int, error)
}
