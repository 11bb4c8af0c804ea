// Package session holds per-session simulation state: the ledger, the
// liquidity series and the random source that drives them. Nothing is shared
// between sessions.
package session

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
)

type Session struct {
	ID        string
	Ledger    domain.LedgerRepository
	Liquidity domain.LiquidityRepository
	Rand      *rand.Rand
	CreatedAt time.Time

	// mu serialises user actions so each one completes before the next.
	mu       sync.Mutex
	lastSeen time.Time
}

func New(id string, ledger domain.LedgerRepository, liquidity domain.LiquidityRepository, rng *rand.Rand) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Ledger:    ledger,
		Liquidity: liquidity,
		Rand:      rng,
		CreatedAt: now,
		lastSeen:  now,
	}
}

func (s *Session) Lock() {
	s.mu.Lock()
}

// TryLock reports whether the session was free and is now held.
func (s *Session) TryLock() bool {
	return s.mu.TryLock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

type contextKey struct{}

func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(*Session)
	return sess, ok && sess != nil
}
