package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/save"
)

// ErrManagerClosed is returned by Get after Shutdown
var ErrManagerClosed = errors.New(ErrMsgManagerClosed)

// retirement tracks an evicted session until its final save has landed
type retirement struct {
	done chan struct{}
}

// Manager keeps live sessions in an expirable LRU. A session leaves the cache
// when it sits idle past IdleTTL or when capacity pushes it out; either way its
// loop is stopped and a final save is written. A player is never reopened
// until the previous session's final save is in the store.
type Manager struct {
	store     save.Store
	publisher event.Publisher
	cfg       Config

	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	closing  atomic.Bool
	retiring sync.WaitGroup

	// opens runs at most one Open per player at a time
	opens singleflight.Group

	// retireMu is only taken on its own, never while waiting on anything
	retireMu sync.Mutex
	retired  map[string]*retirement
}

// NewManager creates a session manager
func NewManager(store save.Store, publisher event.Publisher, cfg Config) *Manager {
	cfg = cfg.withDefaults()
	m := &Manager{
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		retired:   make(map[string]*retirement),
	}
	m.sessions = expirable.NewLRU[string, *Session](cfg.MaxSessions, m.onEvict, cfg.IdleTTL)
	return m
}

// onEvict runs under the LRU's lock, so the stop happens on its own goroutine
func (m *Manager) onEvict(playerID string, s *Session) {
	reason := event.SaveReasonEvicted
	if m.closing.Load() {
		reason = event.SaveReasonShutdown
	}

	r := &retirement{done: make(chan struct{})}
	m.retireMu.Lock()
	m.retired[playerID] = r
	m.retireMu.Unlock()

	m.retiring.Add(1)
	go func() {
		defer m.retiring.Done()
		defer m.finishRetirement(playerID, r)

		ctx := logger.WithPlayerID(context.Background(), playerID)
		if reason == event.SaveReasonEvicted {
			logger.FromContext(ctx).Info(LogMsgSessionEvicted)
		}
		if err := s.Stop(ctx, reason); err != nil {
			logger.FromContext(ctx).Error(LogMsgSaveFailed, "reason", reason, "error", err)
		}
	}()
}

func (m *Manager) finishRetirement(playerID string, r *retirement) {
	m.retireMu.Lock()
	if m.retired[playerID] == r {
		delete(m.retired, playerID)
	}
	m.retireMu.Unlock()
	close(r.done)
}

// waitRetired blocks until an evicted session for playerID has finished its final save
func (m *Manager) waitRetired(ctx context.Context, playerID string) error {
	m.retireMu.Lock()
	r, ok := m.retired[playerID]
	m.retireMu.Unlock()
	if !ok {
		return nil
	}

	logger.FromContext(ctx).Debug(LogMsgWaitingForRetire)
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns the live session for playerID, opening it from the store if needed.
// Every call counts as activity and pushes back the idle deadline.
func (m *Manager) Get(ctx context.Context, playerID string) (*Session, error) {
	if s, ok, err := m.lookup(playerID); err != nil || ok {
		return s, err
	}

	v, err, _ := m.opens.Do(playerID, func() (interface{}, error) {
		return m.open(ctx, playerID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// lookup returns a cached session and refreshes its expiry. On a miss it
// removes any expired entry still sitting in the cache so that it goes
// through onEvict like every other departure.
func (m *Manager) lookup(playerID string) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closing.Load() {
		return nil, false, ErrManagerClosed
	}
	if s, ok := m.sessions.Get(playerID); ok {
		// re-adding refreshes the expiry without firing the evict callback
		m.sessions.Add(playerID, s)
		return s, true, nil
	}
	m.sessions.Remove(playerID)
	return nil, false, nil
}

// open loads a session once any previous one for the player has retired.
// Store I/O happens outside m.mu so other players are not held up.
func (m *Manager) open(ctx context.Context, playerID string) (*Session, error) {
	m.mu.Lock()
	if m.closing.Load() {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	m.retiring.Add(1)
	m.mu.Unlock()
	defer m.retiring.Done()

	if err := m.waitRetired(logger.WithPlayerID(ctx, playerID), playerID); err != nil {
		return nil, err
	}

	// a caller that lost the race to singleflight may find it already open
	if s, ok, err := m.lookup(playerID); err != nil || ok {
		return s, err
	}

	s, err := Open(ctx, playerID, m.store, m.publisher, m.cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.closing.Load() {
		m.mu.Unlock()
		if stopErr := s.Stop(ctx, event.SaveReasonShutdown); stopErr != nil {
			logger.FromContext(ctx).Error(LogMsgSaveFailed, "reason", event.SaveReasonShutdown, "error", stopErr)
		}
		return nil, ErrManagerClosed
	}
	m.sessions.Add(playerID, s)
	m.mu.Unlock()
	return s, nil
}

// Peek returns a live session without opening one or counting as activity
func (m *Manager) Peek(playerID string) (*Session, bool) {
	return m.sessions.Peek(playerID)
}

// Len reports how many sessions are live
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// Sessions returns the live sessions
func (m *Manager) Sessions() []*Session {
	return m.sessions.Values()
}

// SaveAll writes every live session to the store and returns the first error
func (m *Manager) SaveAll(ctx context.Context, reason string) error {
	var firstErr error
	for _, s := range m.Sessions() {
		err := s.Save(ctx, reason)
		if err == nil || errors.Is(err, domain.ErrSessionClosed) {
			// evicted sessions write their own final save
			continue
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Shutdown stops every session, writing final saves, and waits for them up to ctx's deadline
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.closing.Store(true)
	m.sessions.Purge()
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.retiring.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownIncomplete, "error", ctx.Err())
		return ctx.Err()
	}
}
