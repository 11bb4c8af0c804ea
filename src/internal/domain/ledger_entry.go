package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LedgerEntryStatus string

const LedgerStatusSettled LedgerEntryStatus = "Settled Instantly"

const LedgerTimestampLayout = "2006-01-02 15:04:05"

var (
	MinPaymentAmount = decimal.NewFromInt(100)
	MinFee           = decimal.RequireFromString("0.01")
)

// LedgerColumns is the header of the ledger CSV export, in Record order.
var LedgerColumns = []string{
	"Transaction ID",
	"Timestamp",
	"Sending Institution",
	"Receiving Institution",
	"Corridor",
	"Amount Sent",
	"Sending Stablecoin",
	"Amount Received",
	"Receiving Stablecoin",
	"Fee",
	"Priority",
	"Status",
}

type LedgerEntry struct {
	TransactionID        string
	Timestamp            time.Time
	SendingInstitution   string
	ReceivingInstitution string
	Corridor             Corridor
	AmountSent           decimal.Decimal
	SendingStablecoin    Stablecoin
	AmountReceived       decimal.Decimal
	ReceivingStablecoin  Stablecoin
	Fee                  decimal.Decimal
	Priority             Priority
	Status               LedgerEntryStatus
}

func (e LedgerEntry) FormattedTimestamp() string {
	return e.Timestamp.Format(LedgerTimestampLayout)
}

func (e LedgerEntry) Record() []string {
	return []string{
		e.TransactionID,
		e.FormattedTimestamp(),
		e.SendingInstitution,
		e.ReceivingInstitution,
		string(e.Corridor),
		e.AmountSent.String(),
		string(e.SendingStablecoin),
		e.AmountReceived.StringFixed(2),
		string(e.ReceivingStablecoin),
		e.Fee.StringFixed(4),
		string(e.Priority),
		string(e.Status),
	}
}

// LedgerFilter selects entries by institution and corridor. Empty sets do
// not filter.
type LedgerFilter struct {
	Institutions []string
	Corridors    []Corridor
}

func (f LedgerFilter) Matches(entry LedgerEntry) bool {
	if len(f.Institutions) > 0 &&
		!containsString(f.Institutions, entry.SendingInstitution) &&
		!containsString(f.Institutions, entry.ReceivingInstitution) {
		return false
	}
	if len(f.Corridors) > 0 {
		found := false
		for _, corridor := range f.Corridors {
			if corridor == entry.Corridor {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (f LedgerFilter) Apply(entries []LedgerEntry) []LedgerEntry {
	out := make([]LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		if f.Matches(entry) {
			out = append(out, entry)
		}
	}
	return out
}

type FeeTotal struct {
	Stablecoin Stablecoin
	Fee        decimal.Decimal
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
