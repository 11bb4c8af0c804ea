package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

type RateService struct {
	rateRepo domain.RateRepository
}

func NewRateService(rateRepo domain.RateRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

func (s *RateService) GetRates(ctx context.Context) (commons.Response[[]models.RateResponse], error) {
	logger.Info("rate service get rates request", nil)

	rates, err := s.rateRepo.GetRates(ctx)
	if err != nil {
		logger.Error("rate service get rates failed", err, nil)
		return commons.ErrorResponse[[]models.RateResponse]("failed to get rates", "Unable to fetch rates right now"), err
	}

	resp := make([]models.RateResponse, 0, len(rates))
	for _, rate := range rates {
		resp = append(resp, models.RateResponse{
			FromCoin: string(rate.FromCoin),
			ToCoin:   string(rate.ToCoin),
			Rate:     rate.Rate.String(),
		})
	}

	logger.Info("rate service get rates success", logger.Fields{
		"count": len(resp),
	})

	return commons.SuccessResponse("rates fetched successfully", resp), nil
}

func (s *RateService) GetRate(ctx context.Context, req models.GetRateRequest) (commons.Response[models.RateResponse], error) {
	logger.Info("rate service get rate request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("rate service get rate validation failed", err, nil)
		return commons.ValidationFailedResponse[models.RateResponse](err), err
	}

	fromCoin := domain.Stablecoin(strings.ToUpper(strings.TrimSpace(req.FromCoin)))
	toCoin := domain.Stablecoin(strings.ToUpper(strings.TrimSpace(req.ToCoin)))

	rate, defaulted, err := s.LookupRate(ctx, fromCoin, toCoin)
	if err != nil {
		logger.Error("rate service get rate failed", err, logger.Fields{
			"fromCoin": fromCoin,
			"toCoin":   toCoin,
		})
		return commons.ErrorResponse[models.RateResponse]("failed to get rate", "Unable to fetch rate right now"), err
	}

	logger.Info("rate service get rate success", logger.Fields{
		"fromCoin":  fromCoin,
		"toCoin":    toCoin,
		"defaulted": defaulted,
	})

	return commons.SuccessResponse("rate fetched successfully", models.RateResponse{
		FromCoin:  string(fromCoin),
		ToCoin:    string(toCoin),
		Rate:      rate.String(),
		Defaulted: defaulted,
	}), nil
}

// LookupRate returns the table rate for a pair. Pairs missing from the table
// resolve to domain.DefaultRate with defaulted set.
func (s *RateService) LookupRate(ctx context.Context, fromCoin domain.Stablecoin, toCoin domain.Stablecoin) (decimal.Decimal, bool, error) {
	rate, err := s.rateRepo.GetRate(ctx, fromCoin, toCoin)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.DefaultRate, true, nil
		}
		return decimal.Decimal{}, false, fmt.Errorf("lookup rate %s to %s: %w", fromCoin, toCoin, err)
	}
	return rate.Rate, false, nil
}

// ConvertRate returns the converted amount rounded to 2 decimal places, the
// rate used and whether that rate was the default.
func (s *RateService) ConvertRate(ctx context.Context, amount decimal.Decimal, fromCoin domain.Stablecoin, toCoin domain.Stablecoin) (decimal.Decimal, decimal.Decimal, bool, error) {
	rate, defaulted, err := s.LookupRate(ctx, fromCoin, toCoin)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, false, err
	}
	return amount.Mul(rate).Round(2), rate, defaulted, nil
}
