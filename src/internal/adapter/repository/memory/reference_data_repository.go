package memory

import (
	"context"
	"fmt"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

var _ domain.ReferenceDataRepository = (*ReferenceDataRepository)(nil)

type ReferenceDataRepository struct {
	routes   []domain.InstitutionRoute
	profiles map[domain.SeriesKey]domain.PositionProfile
	rates    []domain.Rate
}

func NewReferenceDataRepository() *ReferenceDataRepository {
	return &ReferenceDataRepository{
		routes: []domain.InstitutionRoute{
			{Institution: "FinTech A", Stablecoin: domain.StablecoinUSDC, Corridors: []domain.Corridor{domain.CorridorUSDMXN}},
			{Institution: "FinTech A", Stablecoin: domain.StablecoinEURC, Corridors: []domain.Corridor{domain.CorridorEURNGN}},
			{Institution: "PSP Alpha", Stablecoin: domain.StablecoinUSDC, Corridors: []domain.Corridor{domain.CorridorUSDMXN}},
			{Institution: "PSP Alpha", Stablecoin: domain.StablecoinEURC, Corridors: []domain.Corridor{domain.CorridorEURNGN}},
			{Institution: "Bank B Mexico", Stablecoin: domain.StablecoinEURC, Corridors: []domain.Corridor{domain.CorridorEURNGN}},
			{Institution: "Bank B Mexico", Stablecoin: domain.StablecoinUSDC, Corridors: []domain.Corridor{domain.CorridorUSDMXN}},
			{Institution: "FinTech Omega Nigeria", Stablecoin: domain.StablecoinEURC, Corridors: []domain.Corridor{domain.CorridorEURNGN}},
		},
		profiles: map[domain.SeriesKey]domain.PositionProfile{
			{Institution: "FinTech A", Stablecoin: domain.StablecoinUSDC, Corridor: domain.CorridorUSDMXN}:             {Base: 40000, TrendPerDay: -800, Volatility: 3000},
			{Institution: "FinTech A", Stablecoin: domain.StablecoinEURC, Corridor: domain.CorridorEURNGN}:             {Base: 15000, TrendPerDay: 200, Volatility: 2000},
			{Institution: "PSP Alpha", Stablecoin: domain.StablecoinUSDC, Corridor: domain.CorridorUSDMXN}:             {Base: -10000, TrendPerDay: -1000, Volatility: 4000},
			{Institution: "PSP Alpha", Stablecoin: domain.StablecoinEURC, Corridor: domain.CorridorEURNGN}:             {Base: 25000, TrendPerDay: 300, Volatility: 2200},
			{Institution: "Bank B Mexico", Stablecoin: domain.StablecoinEURC, Corridor: domain.CorridorEURNGN}:         {Base: 60000, TrendPerDay: -600, Volatility: 3500},
			{Institution: "Bank B Mexico", Stablecoin: domain.StablecoinUSDC, Corridor: domain.CorridorUSDMXN}:         {Base: 30000, TrendPerDay: 400, Volatility: 2800},
			{Institution: "FinTech Omega Nigeria", Stablecoin: domain.StablecoinEURC, Corridor: domain.CorridorEURNGN}: {Base: 8000, TrendPerDay: 150, Volatility: 1500},
		},
		rates: []domain.Rate{
			{FromCoin: domain.StablecoinEURC, ToCoin: domain.StablecoinUSDC, Rate: decimal.RequireFromString("1.08")},
			{FromCoin: domain.StablecoinUSDC, ToCoin: domain.StablecoinEURC, Rate: decimal.NewFromInt(1).Div(decimal.RequireFromString("1.08"))},
			{FromCoin: domain.StablecoinUSDC, ToCoin: domain.StablecoinUSDC, Rate: decimal.NewFromInt(1)},
			{FromCoin: domain.StablecoinEURC, ToCoin: domain.StablecoinEURC, Rate: decimal.NewFromInt(1)},
		},
	}
}

func (r *ReferenceDataRepository) GetInstitutions(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{}, len(r.routes))
	out := make([]string, 0, len(r.routes))
	for _, route := range r.routes {
		if _, ok := seen[route.Institution]; ok {
			continue
		}
		seen[route.Institution] = struct{}{}
		out = append(out, route.Institution)
	}
	return out, nil
}

func (r *ReferenceDataRepository) GetRoutes(_ context.Context) ([]domain.InstitutionRoute, error) {
	out := make([]domain.InstitutionRoute, 0, len(r.routes))
	for _, route := range r.routes {
		route.Corridors = append([]domain.Corridor(nil), route.Corridors...)
		out = append(out, route)
	}
	return out, nil
}

func (r *ReferenceDataRepository) GetSeriesKeys(_ context.Context) ([]domain.SeriesKey, error) {
	keys := make([]domain.SeriesKey, 0, len(r.profiles))
	for _, route := range r.routes {
		for _, corridor := range route.Corridors {
			keys = append(keys, domain.SeriesKey{
				Institution: route.Institution,
				Stablecoin:  route.Stablecoin,
				Corridor:    corridor,
			})
		}
	}
	return keys, nil
}

func (r *ReferenceDataRepository) GetPositionProfile(_ context.Context, key domain.SeriesKey) (domain.PositionProfile, error) {
	profile, ok := r.profiles[key]
	if !ok {
		return domain.PositionProfile{}, fmt.Errorf("position profile %s/%s/%s: %w", key.Institution, key.Stablecoin, key.Corridor, domain.ErrRecordNotFound)
	}
	return profile, nil
}

func (r *ReferenceDataRepository) GetRates(_ context.Context) ([]domain.Rate, error) {
	return append([]domain.Rate(nil), r.rates...), nil
}

func (r *ReferenceDataRepository) GetRate(_ context.Context, fromCoin domain.Stablecoin, toCoin domain.Stablecoin) (domain.Rate, error) {
	for _, rate := range r.rates {
		if rate.FromCoin == fromCoin && rate.ToCoin == toCoin {
			return rate, nil
		}
	}
	return domain.Rate{}, fmt.Errorf("rate %s to %s: %w", fromCoin, toCoin, domain.ErrRecordNotFound)
}
