package memory

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"golang.org/x/crypto/blake2b"
)

var _ domain.LedgerRepository = (*LedgerRepository)(nil)

// LedgerRepository keeps entries in insertion order and chains a blake2b
// digest over them so any in-place change is detectable by Verify.
type LedgerRepository struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
	index   map[string]int
	digests [][]byte
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{index: make(map[string]int)}
}

func (r *LedgerRepository) Insert(_ context.Context, entry domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[entry.TransactionID]; exists {
		return fmt.Errorf("insert %s: %w", entry.TransactionID, domain.ErrDuplicateTransaction)
	}

	r.index[entry.TransactionID] = len(r.entries)
	r.entries = append(r.entries, entry)
	r.digests = append(r.digests, chainDigest(r.lastDigest(len(r.digests)), entry))

	logger.Debug("ledger repository insert", logger.Fields{
		"transactionId": entry.TransactionID,
		"corridor":      entry.Corridor,
		"entries":       len(r.entries),
	})
	return nil
}

func (r *LedgerRepository) List(_ context.Context) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.LedgerEntry(nil), r.entries...), nil
}

func (r *LedgerRepository) Filter(_ context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return filter.Apply(r.entries), nil
}

func (r *LedgerRepository) Head(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return hex.EncodeToString(r.lastDigest(len(r.digests))), nil
}

func (r *LedgerRepository) Verify(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var prev []byte
	for i, entry := range r.entries {
		digest := chainDigest(prev, entry)
		if !bytes.Equal(digest, r.digests[i]) {
			return fmt.Errorf("entry %d (%s): %w", i, entry.TransactionID, domain.ErrLedgerTampered)
		}
		prev = digest
	}
	return nil
}

func (r *LedgerRepository) lastDigest(n int) []byte {
	if n == 0 {
		return nil
	}
	return r.digests[n-1]
}

func chainDigest(prev []byte, entry domain.LedgerEntry) []byte {
	h, _ := blake2b.New256(nil)
	h.Write(prev)
	h.Write([]byte(strings.Join(entry.Record(), "\x1f")))
	return h.Sum(nil)
}
