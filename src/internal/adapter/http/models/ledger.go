package models

import (
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
)

type LedgerEntryResponse struct {
	TransactionID        string `json:"transactionId"`
	Timestamp            string `json:"timestamp"`
	SendingInstitution   string `json:"sendingInstitution"`
	ReceivingInstitution string `json:"receivingInstitution"`
	Corridor             string `json:"corridor"`
	AmountSent           string `json:"amountSent"`
	SendingStablecoin    string `json:"sendingStablecoin"`
	AmountReceived       string `json:"amountReceived"`
	ReceivingStablecoin  string `json:"receivingStablecoin"`
	Fee                  string `json:"fee"`
	Priority             string `json:"priority"`
	Status               string `json:"status"`
}

func NewLedgerEntryResponse(entry domain.LedgerEntry) LedgerEntryResponse {
	record := entry.Record()
	return LedgerEntryResponse{
		TransactionID:        record[0],
		Timestamp:            record[1],
		SendingInstitution:   record[2],
		ReceivingInstitution: record[3],
		Corridor:             record[4],
		AmountSent:           record[5],
		SendingStablecoin:    record[6],
		AmountReceived:       record[7],
		ReceivingStablecoin:  record[8],
		Fee:                  record[9],
		Priority:             record[10],
		Status:               record[11],
	}
}

type GetLedgerRequest struct {
	Institutions []string `json:"institutions"`
	Corridors    []string `json:"corridors"`
}

func (r GetLedgerRequest) Validate() error {
	var errs []string

	for _, corridor := range r.Corridors {
		if !domain.Corridor(strings.ToUpper(strings.TrimSpace(corridor))).IsValid() {
			errs = append(errs, "corridor "+corridor+" is not supported")
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}
	return nil
}

func (r GetLedgerRequest) Filter() domain.LedgerFilter {
	filter := domain.LedgerFilter{}
	for _, institution := range r.Institutions {
		if trimmed := strings.TrimSpace(institution); trimmed != "" {
			filter.Institutions = append(filter.Institutions, trimmed)
		}
	}
	for _, corridor := range r.Corridors {
		if trimmed := strings.ToUpper(strings.TrimSpace(corridor)); trimmed != "" {
			filter.Corridors = append(filter.Corridors, domain.Corridor(trimmed))
		}
	}
	return filter
}

type FeeTotalResponse struct {
	Stablecoin string `json:"stablecoin"`
	Fee        string `json:"fee"`
}

type GetLedgerResponse struct {
	Entries           []LedgerEntryResponse `json:"entries"`
	TotalTransactions int                   `json:"totalTransactions"`
	FeeTotals         []FeeTotalResponse    `json:"feeTotals"`
	FeeSummary        string                `json:"feeSummary"`
	Institutions      []string              `json:"institutions"`
	ChainHead         string                `json:"chainHead"`
}
