package models

import (
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type GetChargesRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Priority string          `json:"priority"`
}

func (r GetChargesRequest) Validate() error {
	var errs []string

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	if p := strings.TrimSpace(r.Priority); p != "" && !domain.Priority(p).IsValid() {
		errs = append(errs, "priority must be Standard or High Priority")
	}

	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}
	return nil
}

type GetChargesResponse struct {
	Amount             string `json:"amount"`
	Priority           string `json:"priority"`
	Fee                string `json:"fee"`
	FeePercent         string `json:"feePercent"`
	TraditionalFeeLow  string `json:"traditionalFeeLow"`
	TraditionalFeeHigh string `json:"traditionalFeeHigh"`
}
