package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/google/uuid"
)

// Seeder fills a fresh session with its initial liquidity history.
type Seeder interface {
	SeedSession(ctx context.Context, sess *Session) error
}

type Options struct {
	MaxLiquidityPoints int
	IdleTTL            time.Duration
	// RandomSeed makes every session's random source deterministic when
	// non-zero; sessions still get distinct streams.
	RandomSeed int64
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	seeder   Seeder
	opts     Options
	created  uint64
	now      func() time.Time
}

func NewStore(seeder Seeder, opts Options) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		seeder:   seeder,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Create(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	s.expireLocked()
	s.created++
	stream := s.created
	s.mu.Unlock()

	sess := New(
		uuid.NewString(),
		memory.NewLedgerRepository(),
		memory.NewLiquidityRepository(s.opts.MaxLiquidityPoints),
		rand.New(rand.NewPCG(s.seed(), stream)),
	)

	if s.seeder != nil {
		if err := s.seeder.SeedSession(ctx, sess); err != nil {
			logger.Error("session store seed failed", err, nil)
			return nil, fmt.Errorf("seed session: %w", err)
		}
	}

	s.mu.Lock()
	sess.lastSeen = s.now()
	s.sessions[sess.ID] = sess
	count := len(s.sessions)
	s.mu.Unlock()

	logger.Info("session store created session", logger.Fields{
		"sessionId": sess.ID,
		"sessions":  count,
	})
	return sess, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, commons.ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess, nil
}

// Touch marks the session active now. Call it when an action finishes so the
// idle clock starts after the action rather than before it.
func (s *Store) Touch(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.lastSeen = s.now()
}

// Delete ends a session and discards its state.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	logger.Info("session store deleted session", logger.Fields{"sessionId": id})
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Store) expireLocked() {
	if s.opts.IdleTTL <= 0 {
		return
	}
	cutoff := s.now().Add(-s.opts.IdleTTL)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			logger.Info("session store expired session", logger.Fields{"sessionId": id})
		}
	}
}

func (s *Store) seed() uint64 {
	if s.opts.RandomSeed != 0 {
		return uint64(s.opts.RandomSeed)
	}
	return uint64(time.Now().UnixNano())
}
