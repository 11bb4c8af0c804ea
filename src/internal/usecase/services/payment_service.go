package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

var _ service_interfaces.PaymentService = (*PaymentService)(nil)

const maxTransactionIDAttempts = 5

type PaymentService struct {
	rateService     service_interfaces.RateService
	chargesService  service_interfaces.ChargesService
	processingDelay time.Duration
	strictFxRates   bool
	now             func() time.Time
	newID           func() string
}

// NewPaymentService builds the payment processor. With strictFxRates a pair
// missing from the rate table fails validation instead of converting at the
// default rate.
func NewPaymentService(
	rateService service_interfaces.RateService,
	chargesService service_interfaces.ChargesService,
	processingDelay time.Duration,
	strictFxRates bool,
) *PaymentService {
	return &PaymentService{
		rateService:     rateService,
		chargesService:  chargesService,
		processingDelay: processingDelay,
		strictFxRates:   strictFxRates,
		now:             time.Now,
		newID:           newTransactionID,
	}
}

// Prepare validates the request and builds the ledger entry it would record.
// It has no side effects.
func (s *PaymentService) Prepare(ctx context.Context, req models.SubmitPaymentRequest) (domain.LedgerEntry, error) {
	var problems []string
	if err := req.Validate(); err != nil {
		problems = append(problems, domain.ValidationProblems(err)...)
	}

	sendingCoin := req.SendingCoin()
	receivingCoin := req.ReceivingCoin()

	var rateDefaulted bool
	if sendingCoin.IsValid() && receivingCoin.IsValid() {
		_, defaulted, err := s.rateService.LookupRate(ctx, sendingCoin, receivingCoin)
		if err != nil {
			return domain.LedgerEntry{}, err
		}
		rateDefaulted = defaulted
	}
	if s.strictFxRates && rateDefaulted {
		problems = append(problems, fmt.Sprintf("No FX rate available for %s to %s.", sendingCoin, receivingCoin))
	}

	if len(problems) > 0 {
		return domain.LedgerEntry{}, domain.NewValidationError(problems...)
	}

	amountReceived, _, _, err := s.rateService.ConvertRate(ctx, req.Amount, sendingCoin, receivingCoin)
	if err != nil {
		return domain.LedgerEntry{}, err
	}

	priority := req.PriorityValue()

	return domain.LedgerEntry{
		TransactionID:        s.newID(),
		Timestamp:            s.now().UTC().Truncate(time.Second),
		SendingInstitution:   strings.TrimSpace(req.SendingInstitution),
		ReceivingInstitution: strings.TrimSpace(req.ReceivingInstitution),
		Corridor:             req.CorridorValue(),
		AmountSent:           req.Amount,
		SendingStablecoin:    sendingCoin,
		AmountReceived:       amountReceived,
		ReceivingStablecoin:  receivingCoin,
		Fee:                  s.chargesService.CalculateFee(req.Amount, priority),
		Priority:             priority,
		Status:               domain.LedgerStatusSettled,
	}, nil
}

// SubmitPayment records exactly one ledger entry in the session on success.
// The processing delay blocks and is not cancellable.
func (s *PaymentService) SubmitPayment(ctx context.Context, sess *session.Session, req models.SubmitPaymentRequest) (commons.Response[models.SubmitPaymentResponse], error) {
	logger.Info("payment service submit payment request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	entry, err := s.Prepare(ctx, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			logger.Error("payment service submit payment validation failed", err, nil)
			return commons.ValidationFailedResponse[models.SubmitPaymentResponse](verr), err
		}
		logger.Error("payment service submit payment prepare failed", err, nil)
		return commons.ErrorResponse[models.SubmitPaymentResponse]("failed to process payment", "Unable to process payment right now"), err
	}

	time.Sleep(s.processingDelay)

	if err := s.record(ctx, sess, &entry); err != nil {
		logger.Error("payment service submit payment ledger insert failed", err, logger.Fields{
			"transactionId": entry.TransactionID,
		})
		return commons.ErrorResponse[models.SubmitPaymentResponse]("failed to process payment", "Unable to record payment right now"), err
	}

	rate, defaulted, err := s.rateService.LookupRate(ctx, entry.SendingStablecoin, entry.ReceivingStablecoin)
	if err != nil {
		logger.Error("payment service submit payment rate lookup failed", err, nil)
	}
	low, high := s.chargesService.TraditionalFeeRange(entry.AmountSent)

	response := models.SubmitPaymentResponse{
		Entry:              models.NewLedgerEntryResponse(entry),
		FxRate:             rate.String(),
		FxRateDefaulted:    defaulted,
		FeeCurrency:        string(entry.SendingStablecoin),
		TraditionalFeeLow:  low.StringFixed(2),
		TraditionalFeeHigh: high.StringFixed(2),
	}

	logger.Info("payment service submit payment success", logger.Fields{
		"transactionId":  entry.TransactionID,
		"corridor":       entry.Corridor,
		"amountSent":     entry.AmountSent.String(),
		"amountReceived": entry.AmountReceived.String(),
		"fee":            entry.Fee.String(),
	})

	return commons.SuccessResponse(fmt.Sprintf("Payment settled instantly! Transaction ID: %s", entry.TransactionID), response), nil
}

func (s *PaymentService) record(ctx context.Context, sess *session.Session, entry *domain.LedgerEntry) error {
	for attempt := 1; ; attempt++ {
		err := sess.Ledger.Insert(ctx, *entry)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateTransaction) || attempt >= maxTransactionIDAttempts {
			return err
		}
		entry.TransactionID = s.newID()
	}
}

// newTransactionID returns 8 uppercase hex characters.
func newTransactionID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
