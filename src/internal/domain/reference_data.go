package domain

// SeriesKey identifies one liquidity series: an institution's position in a
// stablecoin on a corridor.
type SeriesKey struct {
	Institution string
	Stablecoin  Stablecoin
	Corridor    Corridor
}

func (k SeriesKey) IsComplete() bool {
	return k.Institution != "" && k.Stablecoin != "" && k.Corridor != ""
}

type PositionProfile struct {
	Base        float64
	TrendPerDay float64
	Volatility  float64
}

// DefaultPositionProfile applies to triplets with no configured profile.
var DefaultPositionProfile = PositionProfile{Base: 0, TrendPerDay: 0, Volatility: 1000}

type InstitutionRoute struct {
	Institution string
	Stablecoin  Stablecoin
	Corridors   []Corridor
}
