package services

import (
	"context"
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

var _ service_interfaces.ChargesService = (*ChargesService)(nil)

var (
	DefaultFeePercent             = decimal.RequireFromString("0.01")
	DefaultHighPriorityMultiplier = decimal.RequireFromString("1.5")

	traditionalFeeLowPercent  = decimal.NewFromInt(1)
	traditionalFeeHighPercent = decimal.NewFromInt(5)
	hundred                   = decimal.NewFromInt(100)
)

type ChargesService struct {
	feePercent             decimal.Decimal
	highPriorityMultiplier decimal.Decimal
}

func NewChargesService(feePercent decimal.Decimal, highPriorityMultiplier decimal.Decimal) *ChargesService {
	return &ChargesService{
		feePercent:             feePercent,
		highPriorityMultiplier: highPriorityMultiplier,
	}
}

func (s *ChargesService) GetChargesSummary(_ context.Context, req models.GetChargesRequest) (commons.Response[models.GetChargesResponse], error) {
	logger.Info("charges service get charges request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("charges service get charges validation failed", err, nil)
		return commons.ValidationFailedResponse[models.GetChargesResponse](err), err
	}

	priority := domain.Priority(strings.TrimSpace(req.Priority))
	if priority == "" {
		priority = domain.PriorityStandard
	}

	fee := s.CalculateFee(req.Amount, priority)
	low, high := s.TraditionalFeeRange(req.Amount)

	response := models.GetChargesResponse{
		Amount:             req.Amount.String(),
		Priority:           string(priority),
		Fee:                fee.StringFixed(4),
		FeePercent:         s.feePercent.String(),
		TraditionalFeeLow:  low.StringFixed(2),
		TraditionalFeeHigh: high.StringFixed(2),
	}

	logger.Info("charges service get charges success", logger.Fields{
		"amount":   response.Amount,
		"priority": response.Priority,
		"fee":      response.Fee,
	})

	return commons.SuccessResponse("charges fetched successfully", response), nil
}

// CalculateFee applies the percentage fee, the high priority surcharge and
// the minimum fee, rounded to 4 decimal places.
func (s *ChargesService) CalculateFee(amount decimal.Decimal, priority domain.Priority) decimal.Decimal {
	fee := amount.Mul(s.feePercent).Div(hundred)
	if priority == domain.PriorityHigh {
		fee = fee.Mul(s.highPriorityMultiplier)
	}
	if fee.LessThan(domain.MinFee) {
		fee = domain.MinFee
	}
	return fee.Round(4)
}

// TraditionalFeeRange estimates what a correspondent banking transfer of the
// same amount would cost.
func (s *ChargesService) TraditionalFeeRange(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	return amount.Mul(traditionalFeeLowPercent).Div(hundred), amount.Mul(traditionalFeeHighPercent).Div(hundred)
}
