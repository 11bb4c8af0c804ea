package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newPaymentService(strict bool) *services.PaymentService {
	rateService := services.NewRateService(memory.NewReferenceDataRepository())
	svc := services.NewPaymentService(rateService, newChargesService(), 0, strict)
	svc.SetClock(func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 589000000, time.UTC)
	})
	return svc
}

func validPaymentRequest() models.SubmitPaymentRequest {
	return models.SubmitPaymentRequest{
		SendingInstitution:   "FinTech A",
		ReceivingInstitution: "Bank B Mexico",
		Corridor:             "USD-MXN",
		Amount:               decimal.NewFromInt(5000),
		SendingStablecoin:    "USDC",
		ReceivingStablecoin:  "EURC",
		Priority:             "Standard",
	}
}

func TestPaymentServiceSubmitPaymentRecordsEntry(t *testing.T) {
	svc := newPaymentService(false)
	sess := newTestSession(t)

	resp, err := svc.SubmitPayment(context.Background(), sess, validPaymentRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatalf("expected successful response, got %+v", resp)
	}

	entries, _ := sess.Ledger.List(context.Background())
	if len(entries) != 1 {
		t.Fatalf("expected exactly one ledger entry, got %d", len(entries))
	}

	entry := entries[0]
	if !entry.Fee.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("expected fee 0.5, got %s", entry.Fee)
	}
	if !entry.AmountReceived.Equal(decimal.RequireFromString("4629.63")) {
		t.Fatalf("expected amount received 4629.63, got %s", entry.AmountReceived)
	}
	if entry.Status != domain.LedgerStatusSettled {
		t.Fatalf("expected settled status, got %q", entry.Status)
	}
	if len(entry.TransactionID) != 8 {
		t.Fatalf("expected 8 character transaction id, got %q", entry.TransactionID)
	}
	if got := entry.FormattedTimestamp(); got != "2025-03-14 09:26:53" {
		t.Fatalf("expected timestamp truncated to seconds, got %s", got)
	}
	if resp.Data.Entry.Fee != "0.5000" || resp.Data.FeeCurrency != "USDC" {
		t.Fatalf("unexpected fee in response: %+v", resp.Data)
	}
	if resp.Message != "Payment settled instantly! Transaction ID: "+entry.TransactionID {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestPaymentServiceSubmitPaymentValidationLeavesLedgerUnchanged(t *testing.T) {
	svc := newPaymentService(false)
	sess := newTestSession(t)

	req := validPaymentRequest()
	req.SendingInstitution = "  "
	req.Amount = decimal.NewFromInt(99)

	resp, err := svc.SubmitPayment(context.Background(), sess, req)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if resp.Message != "validation failed" {
		t.Fatalf("expected validation failed message, got %q", resp.Message)
	}

	want := []string{"Sending Institution name is required.", "Amount to Send must be at least 100."}
	if len(resp.Errors) != len(want) {
		t.Fatalf("expected %d problems, got %v", len(want), resp.Errors)
	}
	for i := range want {
		if resp.Errors[i] != want[i] {
			t.Fatalf("expected problem %q at %d, got %q", want[i], i, resp.Errors[i])
		}
	}

	count, _ := sess.Ledger.List(context.Background())
	if len(count) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(count))
	}
}

func TestPaymentServiceMissingRate(t *testing.T) {
	missing := referenceRepoStub{}

	t.Run("lenient converts at default rate", func(t *testing.T) {
		svc := services.NewPaymentService(services.NewRateService(missing), newChargesService(), 0, false)

		entry, err := svc.Prepare(context.Background(), validPaymentRequest())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !entry.AmountReceived.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("expected unconverted amount, got %s", entry.AmountReceived)
		}
	})

	t.Run("strict rejects the payment", func(t *testing.T) {
		svc := services.NewPaymentService(services.NewRateService(missing), newChargesService(), 0, true)

		_, err := svc.Prepare(context.Background(), validPaymentRequest())
		problems := domain.ValidationProblems(err)
		if len(problems) != 1 || problems[0] != "No FX rate available for USDC to EURC." {
			t.Fatalf("unexpected problems %v", problems)
		}
	})
}

func TestPaymentServiceRetriesDuplicateTransactionID(t *testing.T) {
	svc := newPaymentService(false)
	ids := []string{"AAAA0001", "AAAA0001", "AAAA0002"}
	svc.SetIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	})
	sess := newTestSession(t)

	for i := 0; i < 2; i++ {
		if _, err := svc.SubmitPayment(context.Background(), sess, validPaymentRequest()); err != nil {
			t.Fatalf("expected nil error on payment %d, got %v", i+1, err)
		}
	}

	entries, _ := sess.Ledger.List(context.Background())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].TransactionID != "AAAA0001" || entries[1].TransactionID != "AAAA0002" {
		t.Fatalf("unexpected ids %s, %s", entries[0].TransactionID, entries[1].TransactionID)
	}
}
