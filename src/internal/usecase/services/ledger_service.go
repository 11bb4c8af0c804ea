package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

var _ service_interfaces.LedgerService = (*LedgerService)(nil)

const emptyFeeSummary = "0.0000 USD"

type LedgerService struct{}

func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

func (s *LedgerService) GetLedger(ctx context.Context, sess *session.Session, req models.GetLedgerRequest) (commons.Response[models.GetLedgerResponse], error) {
	logger.Info("ledger service get ledger request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service get ledger validation failed", err, nil)
		return commons.ValidationFailedResponse[models.GetLedgerResponse](err), err
	}

	all, err := sess.Ledger.List(ctx)
	if err != nil {
		logger.Error("ledger service list entries failed", err, nil)
		return commons.ErrorResponse[models.GetLedgerResponse]("failed to fetch ledger", "Unable to fetch ledger right now"), err
	}
	filtered, err := sess.Ledger.Filter(ctx, req.Filter())
	if err != nil {
		logger.Error("ledger service filter entries failed", err, nil)
		return commons.ErrorResponse[models.GetLedgerResponse]("failed to fetch ledger", "Unable to fetch ledger right now"), err
	}
	head, err := sess.Ledger.Head(ctx)
	if err != nil {
		logger.Error("ledger service chain head failed", err, nil)
		return commons.ErrorResponse[models.GetLedgerResponse]("failed to fetch ledger", "Unable to fetch ledger right now"), err
	}

	totals := SummarizeFees(filtered)
	resp := models.GetLedgerResponse{
		Entries:           make([]models.LedgerEntryResponse, 0, len(filtered)),
		TotalTransactions: len(filtered),
		FeeTotals:         make([]models.FeeTotalResponse, 0, len(totals)),
		FeeSummary:        FeeSummaryText(totals),
		Institutions:      LedgerInstitutions(all),
		ChainHead:         head,
	}
	for _, entry := range filtered {
		resp.Entries = append(resp.Entries, models.NewLedgerEntryResponse(entry))
	}
	for _, total := range totals {
		resp.FeeTotals = append(resp.FeeTotals, models.FeeTotalResponse{
			Stablecoin: string(total.Stablecoin),
			Fee:        total.Fee.StringFixed(4),
		})
	}

	logger.Info("ledger service get ledger success", logger.Fields{
		"total":    len(all),
		"filtered": len(filtered),
	})

	if len(all) == 0 {
		return commons.SuccessResponse("No transactions recorded yet. Submit a payment to see it appear here.", resp), nil
	}
	return commons.SuccessResponse("ledger fetched successfully", resp), nil
}

// ExportCSV writes the filtered ledger as CSV with a header row and returns
// the number of entries written.
func (s *LedgerService) ExportCSV(ctx context.Context, sess *session.Session, req models.GetLedgerRequest, w io.Writer) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	entries, err := sess.Ledger.Filter(ctx, req.Filter())
	if err != nil {
		return 0, fmt.Errorf("filter ledger: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(domain.LedgerColumns); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write(entry.Record()); err != nil {
			return 0, fmt.Errorf("write csv row %s: %w", entry.TransactionID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	logger.Info("ledger service export csv success", logger.Fields{
		"rows": len(entries),
	})
	return len(entries), nil
}

// SummarizeFees sums fees per sending stablecoin, ordered by stablecoin.
func SummarizeFees(entries []domain.LedgerEntry) []domain.FeeTotal {
	sums := make(map[domain.Stablecoin]decimal.Decimal)
	for _, entry := range entries {
		sums[entry.SendingStablecoin] = sums[entry.SendingStablecoin].Add(entry.Fee)
	}

	totals := make([]domain.FeeTotal, 0, len(sums))
	for coin, fee := range sums {
		totals = append(totals, domain.FeeTotal{Stablecoin: coin, Fee: fee})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Stablecoin < totals[j].Stablecoin
	})
	return totals
}

func FeeSummaryText(totals []domain.FeeTotal) string {
	if len(totals) == 0 {
		return emptyFeeSummary
	}
	parts := make([]string, 0, len(totals))
	for _, total := range totals {
		parts = append(parts, total.Fee.StringFixed(4)+" "+string(total.Stablecoin))
	}
	return strings.Join(parts, ", ")
}

// LedgerInstitutions lists every sending or receiving institution, sorted.
func LedgerInstitutions(entries []domain.LedgerEntry) []string {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		seen[entry.SendingInstitution] = struct{}{}
		seen[entry.ReceivingInstitution] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for institution := range seen {
		out = append(out, institution)
	}
	sort.Strings(out)
	return out
}
