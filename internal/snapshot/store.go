package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/kilincfaruk/FuatAtolye/pkg/config"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
	"github.com/kilincfaruk/FuatAtolye/pkg/metrics"
)

const refreshTask = "snapshot"

// Loader performs one full read of every table the snapshot carries.
type Loader interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Store holds the current snapshot and refreshes it in the background: on a
// fixed interval, and on demand through Poke. A failed refresh keeps the last
// good snapshot in place.
type Store struct {
	loader  Loader
	cfg     config.RefreshConfig
	logg    *logger.Logger
	metrics *metrics.RefreshMetrics
	now     func() time.Time

	mu          sync.RWMutex
	current     Snapshot
	lastRefresh time.Time

	pokes       chan struct{}
	subscribers []chan struct{}
}

// StoreParams groups dependencies for the snapshot store.
type StoreParams struct {
	Loader  Loader
	Config  config.RefreshConfig
	Logger  *logger.Logger
	Metrics *metrics.RefreshMetrics
}

// NewStore builds a snapshot store. Metrics may be nil.
func NewStore(params StoreParams) (*Store, error) {
	if params.Loader == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot loader is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Store{
		loader:  params.Loader,
		cfg:     params.Config,
		logg:    params.Logger,
		metrics: params.Metrics,
		now:     time.Now,
		pokes:   make(chan struct{}, 1),
	}, nil
}

// Current returns the last successfully loaded snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh loads a fresh snapshot and swaps it in.
func (s *Store) Refresh(ctx context.Context) error {
	start := s.now()
	snap, err := s.loader.Load(ctx)
	s.metrics.ObserveDuration(refreshTask, s.now().Sub(start))
	if err != nil {
		s.metrics.IncFailure(refreshTask)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load snapshot")
	}
	s.metrics.IncSuccess(refreshTask)

	s.mu.Lock()
	s.current = snap
	s.lastRefresh = s.now()
	subscribers := make([]chan struct{}, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

// Poke requests an out-of-band refresh, the way regaining focus used to force
// a reload. Requests inside the min-gap window since the last refresh are
// dropped; accepted requests coalesce over the debounce period so a burst
// triggers one load.
func (s *Store) Poke() {
	s.mu.RLock()
	last := s.lastRefresh
	s.mu.RUnlock()

	if !last.IsZero() && s.now().Sub(last) < s.cfg.MinGap {
		return
	}
	select {
	case s.pokes <- struct{}{}:
	default:
	}
}

// Subscribe returns a channel that receives a tick after every successful
// refresh. Slow subscribers miss ticks rather than block the store.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}

// Run performs the initial load and then serves the refresh loop until the
// context is cancelled. The initial load is fatal when it fails; interval and
// poked refreshes only log.
func (s *Store) Run(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	s.logg.Info(ctx, "snapshot store loaded")

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refreshLogged(ctx)
		case <-s.pokes:
			if s.waitDebounce(ctx) {
				s.refreshLogged(ctx)
			}
		}
	}
}

func (s *Store) refreshLogged(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logg.Error(ctx, "snapshot refresh failed", err)
	}
}

// waitDebounce sleeps out the debounce window, absorbing any further pokes
// that arrive during it. Returns false when the context ends first.
func (s *Store) waitDebounce(ctx context.Context) bool {
	if s.cfg.Debounce <= 0 {
		return true
	}
	timer := time.NewTimer(s.cfg.Debounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-s.pokes:
			// coalesced
		case <-timer.C:
			return true
		}
	}
}
