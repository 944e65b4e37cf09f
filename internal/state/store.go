package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/andresuchdata/inventree-web/internal/cache"
	"github.com/andresuchdata/inventree-web/internal/domain"
	"github.com/andresuchdata/inventree-web/internal/endpoints"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves and decodes a single API endpoint.
type Fetcher interface {
	Get(ctx context.Context, e endpoints.Endpoint, pk string, out any) error
}

// Store caches server metadata and status code lookups for one session and
// mirrors every change into the session cache.
//
// persistMu orders cache writes: it is held from taking a snapshot until that
// snapshot is stored, so the cache never receives an older state after a newer one.
type Store struct {
	mu        sync.RWMutex
	persistMu sync.Mutex
	state     domain.ServerAPIState
	api       Fetcher
	cache     cache.ServerStateCache
	logger    zerolog.Logger
}

// NewStore builds a store and hydrates it from sessionCache when a snapshot
// is present. A nil cache disables persistence.
func NewStore(ctx context.Context, api Fetcher, sessionCache cache.ServerStateCache) *Store {
	if sessionCache == nil {
		sessionCache = cache.NewNoopServerStateCache()
	}

	s := &Store{
		api:    api,
		cache:  sessionCache,
		logger: log.With().Str("component", "server_state").Logger(),
	}

	snapshot, ok, err := sessionCache.GetState(ctx)
	switch {
	case err != nil:
		s.logger.Warn().Err(err).Msg("failed to hydrate server state")
	case ok && snapshot != nil:
		s.state = *snapshot
		s.logger.Debug().Msg("server state hydrated from session cache")
	}

	return s
}

// Fetch requests server info and status codes concurrently. Each response
// replaces its part of the state independently. A failed server info request
// is ignored; a failed status request is returned.
func (s *Store) Fetch(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		var info domain.ServerInfo
		if err := s.api.Get(ctx, endpoints.APIServerInfo, "", &info); err != nil {
			s.logger.Debug().Err(err).Msg("server info request failed")
			return nil
		}
		s.update(ctx, func(st *domain.ServerAPIState) { st.Server = info })
		return nil
	})

	g.Go(func() error {
		var classes map[string]domain.StatusClass
		if err := s.api.Get(ctx, endpoints.GlobalStatus, "", &classes); err != nil {
			return fmt.Errorf("fetch status codes: %w", err)
		}
		lookup := domain.NewStatusLookup(classes)
		s.update(ctx, func(st *domain.ServerAPIState) { st.Status = lookup })
		return nil
	})

	return g.Wait()
}

func (s *Store) update(ctx context.Context, apply func(*domain.ServerAPIState)) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	apply(&s.state)
	snapshot := s.state
	s.mu.Unlock()

	if err := s.cache.SetState(ctx, &snapshot); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist server state")
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() domain.ServerAPIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ServerInfo returns the latest server metadata, if fetched.
func (s *Store) ServerInfo() (domain.ServerInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Server, s.state.Server != nil
}

// StatusLookup returns the latest status code lookup, if fetched.
func (s *Store) StatusLookup() (domain.StatusLookup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Status, s.state.Status != nil
}

// StatusLabel resolves the display label for a status value of model.
func (s *Store) StatusLabel(model domain.ModelType, value int) string {
	lookup, _ := s.StatusLookup()
	return lookup.Label(model, value)
}

// Clear drops the in-memory state and its persisted copy.
func (s *Store) Clear(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.state = domain.ServerAPIState{}
	s.mu.Unlock()

	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("clear server state: %w", err)
	}
	return nil
}

// ClearSessions drops the in-memory state and the persisted snapshot of every
// session sharing the cache, returning how many snapshots were removed.
func (s *Store) ClearSessions(ctx context.Context) (int64, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.state = domain.ServerAPIState{}
	s.mu.Unlock()

	removed, err := s.cache.InvalidateSessions(ctx)
	if err != nil {
		return removed, fmt.Errorf("clear session states: %w", err)
	}
	return removed, nil
}
