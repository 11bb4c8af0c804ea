package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
)

var _ domain.LiquidityRepository = (*LiquidityRepository)(nil)

// LiquidityRepository holds every series of a session in one table capped at
// maxPoints rows; the oldest rows are dropped first.
type LiquidityRepository struct {
	mu        sync.RWMutex
	points    []domain.LiquidityPoint
	maxPoints int
}

func NewLiquidityRepository(maxPoints int) *LiquidityRepository {
	return &LiquidityRepository{maxPoints: maxPoints}
}

func (r *LiquidityRepository) Append(_ context.Context, points ...domain.LiquidityPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.points = append(r.points, points...)

	if r.maxPoints > 0 && len(r.points) > r.maxPoints {
		dropped := len(r.points) - r.maxPoints
		r.points = append([]domain.LiquidityPoint(nil), r.points[dropped:]...)
		logger.Debug("liquidity repository truncated", logger.Fields{
			"dropped":   dropped,
			"maxPoints": r.maxPoints,
		})
	}
	return nil
}

func (r *LiquidityRepository) GetSeries(_ context.Context, key domain.SeriesKey) ([]domain.LiquidityPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.LiquidityPoint, 0)
	for _, point := range r.points {
		if point.Key() == key {
			out = append(out, point)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *LiquidityRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.points), nil
}
