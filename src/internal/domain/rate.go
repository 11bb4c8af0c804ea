package domain

import "github.com/shopspring/decimal"

type Rate struct {
	FromCoin Stablecoin
	ToCoin   Stablecoin
	Rate     decimal.Decimal
}

// DefaultRate is used for pairs missing from the rate table.
var DefaultRate = decimal.NewFromInt(1)
