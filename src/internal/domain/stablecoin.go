package domain

type Stablecoin string

const (
	StablecoinUSDC Stablecoin = "USDC"
	StablecoinEURC Stablecoin = "EURC"
)

func SupportedStablecoins() []Stablecoin {
	return []Stablecoin{StablecoinUSDC, StablecoinEURC}
}

func (s Stablecoin) IsValid() bool {
	for _, supported := range SupportedStablecoins() {
		if s == supported {
			return true
		}
	}
	return false
}

type Corridor string

const (
	CorridorUSDMXN Corridor = "USD-MXN"
	CorridorEURNGN Corridor = "EUR-NGN"
)

func SupportedCorridors() []Corridor {
	return []Corridor{CorridorUSDMXN, CorridorEURNGN}
}

func (c Corridor) IsValid() bool {
	for _, supported := range SupportedCorridors() {
		if c == supported {
			return true
		}
	}
	return false
}

// DefaultReceivingStablecoin is the coin a corridor usually settles in.
func (c Corridor) DefaultReceivingStablecoin() Stablecoin {
	switch c {
	case CorridorEURNGN:
		return StablecoinEURC
	default:
		return StablecoinUSDC
	}
}

type Priority string

const (
	PriorityStandard Priority = "Standard"
	PriorityHigh     Priority = "High Priority"
)

func SupportedPriorities() []Priority {
	return []Priority{PriorityStandard, PriorityHigh}
}

func (p Priority) IsValid() bool {
	return p == PriorityStandard || p == PriorityHigh
}
