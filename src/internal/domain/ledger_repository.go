package domain

import "context"

// LedgerRepository is append-only: there is no update or delete.
type LedgerRepository interface {
	Insert(ctx context.Context, entry LedgerEntry) error
	List(ctx context.Context) ([]LedgerEntry, error)
	Filter(ctx context.Context, filter LedgerFilter) ([]LedgerEntry, error)
	Head(ctx context.Context) (string, error)
	Verify(ctx context.Context) error
}
