package models

import (
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
)

type RateResponse struct {
	FromCoin  string `json:"fromCoin"`
	ToCoin    string `json:"toCoin"`
	Rate      string `json:"rate"`
	Defaulted bool   `json:"defaulted"`
}

type GetRateRequest struct {
	FromCoin string `json:"fromCoin"`
	ToCoin   string `json:"toCoin"`
}

func (r GetRateRequest) Validate() error {
	var errs []string

	fromCoin := strings.ToUpper(strings.TrimSpace(r.FromCoin))
	toCoin := strings.ToUpper(strings.TrimSpace(r.ToCoin))

	if fromCoin == "" {
		errs = append(errs, "fromCoin is required")
	}
	if toCoin == "" {
		errs = append(errs, "toCoin is required")
	}

	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}
	return nil
}
