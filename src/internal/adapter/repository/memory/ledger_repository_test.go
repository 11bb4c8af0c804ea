package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

func ledgerEntry(id, sender, receiver string, corridor domain.Corridor, coin domain.Stablecoin, fee string) domain.LedgerEntry {
	return domain.LedgerEntry{
		TransactionID:        id,
		Timestamp:            time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		SendingInstitution:   sender,
		ReceivingInstitution: receiver,
		Corridor:             corridor,
		AmountSent:           decimal.NewFromInt(1000),
		SendingStablecoin:    coin,
		AmountReceived:       decimal.NewFromInt(1000),
		ReceivingStablecoin:  coin,
		Fee:                  decimal.RequireFromString(fee),
		Priority:             domain.PriorityStandard,
		Status:               domain.LedgerStatusSettled,
	}
}

func seededLedger(t *testing.T) *memory.LedgerRepository {
	t.Helper()
	repo := memory.NewLedgerRepository()
	entries := []domain.LedgerEntry{
		ledgerEntry("AAAA0001", "FinTech A", "Bank B Mexico", domain.CorridorUSDMXN, domain.StablecoinUSDC, "0.1"),
		ledgerEntry("AAAA0002", "PSP Alpha", "FinTech Omega Nigeria", domain.CorridorEURNGN, domain.StablecoinEURC, "0.2"),
		ledgerEntry("AAAA0003", "Bank B Mexico", "PSP Alpha", domain.CorridorUSDMXN, domain.StablecoinUSDC, "0.3"),
	}
	for _, entry := range entries {
		if err := repo.Insert(context.Background(), entry); err != nil {
			t.Fatalf("insert %s: %v", entry.TransactionID, err)
		}
	}
	return repo
}

func TestLedgerRepositoryInsertRejectsDuplicate(t *testing.T) {
	repo := seededLedger(t)

	err := repo.Insert(context.Background(), ledgerEntry("AAAA0001", "X", "Y", domain.CorridorUSDMXN, domain.StablecoinUSDC, "9"))
	if !errors.Is(err, domain.ErrDuplicateTransaction) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	entries, _ := repo.List(context.Background())
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].SendingInstitution != "FinTech A" {
		t.Fatal("expected original entry to be untouched")
	}
}

func TestLedgerRepositoryFilter(t *testing.T) {
	repo := seededLedger(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter domain.LedgerFilter
		want   []string
	}{
		{name: "unfiltered", filter: domain.LedgerFilter{}, want: []string{"AAAA0001", "AAAA0002", "AAAA0003"}},
		{name: "receiving institution matches", filter: domain.LedgerFilter{Institutions: []string{"PSP Alpha"}}, want: []string{"AAAA0002", "AAAA0003"}},
		{name: "corridor only", filter: domain.LedgerFilter{Corridors: []domain.Corridor{domain.CorridorEURNGN}}, want: []string{"AAAA0002"}},
		{
			name:   "institution and corridor",
			filter: domain.LedgerFilter{Institutions: []string{"Bank B Mexico"}, Corridors: []domain.Corridor{domain.CorridorUSDMXN}},
			want:   []string{"AAAA0001", "AAAA0003"},
		},
		{name: "no match", filter: domain.LedgerFilter{Institutions: []string{"Nobody"}}, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Filter(ctx, tc.filter)
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d entries, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].TransactionID != id {
					t.Fatalf("expected %s at %d, got %s", id, i, got[i].TransactionID)
				}
			}

			again := tc.filter.Apply(got)
			if len(again) != len(got) {
				t.Fatalf("expected filter to be idempotent, got %d then %d", len(got), len(again))
			}
		})
	}
}

func TestLedgerRepositoryChainHead(t *testing.T) {
	ctx := context.Background()
	empty := memory.NewLedgerRepository()
	emptyHead, _ := empty.Head(ctx)
	if emptyHead != "" {
		t.Fatalf("expected empty head, got %q", emptyHead)
	}

	repo := seededLedger(t)
	head, err := repo.Head(ctx)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(head) != 64 {
		t.Fatalf("expected 32-byte hex digest, got %q", head)
	}
	if err := repo.Verify(ctx); err != nil {
		t.Fatalf("expected chain to verify, got %v", err)
	}

	other := seededLedger(t)
	otherHead, _ := other.Head(ctx)
	if otherHead != head {
		t.Fatal("expected identical ledgers to share a head digest")
	}

	_ = other.Insert(ctx, ledgerEntry("AAAA0004", "FinTech A", "PSP Alpha", domain.CorridorUSDMXN, domain.StablecoinUSDC, "0.4"))
	newHead, _ := other.Head(ctx)
	if newHead == head {
		t.Fatal("expected head to move after insert")
	}
}

func TestLedgerRepositoryListReturnsCopy(t *testing.T) {
	repo := seededLedger(t)
	ctx := context.Background()

	entries, _ := repo.List(ctx)
	entries[0].SendingInstitution = "Mallory"

	again, _ := repo.List(ctx)
	if again[0].SendingInstitution != "FinTech A" {
		t.Fatal("expected stored entries to be immutable through List")
	}
	if err := repo.Verify(ctx); err != nil {
		t.Fatalf("expected chain to verify, got %v", err)
	}
}
