package models

import (
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type SubmitPaymentRequest struct {
	SendingInstitution   string          `json:"sendingInstitution"`
	ReceivingInstitution string          `json:"receivingInstitution"`
	Corridor             string          `json:"corridor"`
	Amount               decimal.Decimal `json:"amount"`
	SendingStablecoin    string          `json:"sendingStablecoin"`
	ReceivingStablecoin  string          `json:"receivingStablecoin"`
	Priority             string          `json:"priority"`
}

// Validate reports every field problem at once as a *domain.ValidationError.
func (r SubmitPaymentRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.SendingInstitution) == "" {
		errs = append(errs, "Sending Institution name is required.")
	}
	if strings.TrimSpace(r.ReceivingInstitution) == "" {
		errs = append(errs, "Receiving Institution name is required.")
	}
	if !r.CorridorValue().IsValid() {
		errs = append(errs, "Invalid Corridor selected.")
	}
	if r.Amount.LessThan(domain.MinPaymentAmount) {
		errs = append(errs, "Amount to Send must be at least 100.")
	}
	if !r.SendingCoin().IsValid() {
		errs = append(errs, "Invalid Sending Stablecoin selected.")
	}
	if !r.ReceivingCoin().IsValid() {
		errs = append(errs, "Invalid Receiving Stablecoin selected.")
	}
	if !r.PriorityValue().IsValid() {
		errs = append(errs, "Invalid Transaction Priority selected.")
	}

	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}
	return nil
}

func (r SubmitPaymentRequest) CorridorValue() domain.Corridor {
	return domain.Corridor(strings.ToUpper(strings.TrimSpace(r.Corridor)))
}

func (r SubmitPaymentRequest) SendingCoin() domain.Stablecoin {
	return domain.Stablecoin(strings.ToUpper(strings.TrimSpace(r.SendingStablecoin)))
}

// ReceivingCoin falls back to the corridor's settlement coin when unset.
func (r SubmitPaymentRequest) ReceivingCoin() domain.Stablecoin {
	coin := strings.ToUpper(strings.TrimSpace(r.ReceivingStablecoin))
	if coin == "" {
		return r.CorridorValue().DefaultReceivingStablecoin()
	}
	return domain.Stablecoin(coin)
}

// PriorityValue defaults to Standard when unset.
func (r SubmitPaymentRequest) PriorityValue() domain.Priority {
	priority := strings.TrimSpace(r.Priority)
	if priority == "" {
		return domain.PriorityStandard
	}
	return domain.Priority(priority)
}

type SubmitPaymentResponse struct {
	Entry              LedgerEntryResponse `json:"entry"`
	FxRate             string              `json:"fxRate"`
	FxRateDefaulted    bool                `json:"fxRateDefaulted"`
	FeeCurrency        string              `json:"feeCurrency"`
	TraditionalFeeLow  string              `json:"traditionalFeeLow"`
	TraditionalFeeHigh string              `json:"traditionalFeeHigh"`
}
