package goldprice

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/kilincfaruk/FuatAtolye/pkg/config"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
	"github.com/kilincfaruk/FuatAtolye/pkg/metrics"
	"github.com/kilincfaruk/FuatAtolye/pkg/redis"
)

const (
	pollTask     = "gold_price"
	pollLockName = "gold-price-poll"
)

// Cache persists the latest successful quote across restarts.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GoldPriceKey() string
}

// locker is the cache's optional cross-instance guard. When the cache
// supports it, only the lock holder calls upstream; the others pick up the
// holder's result from the shared cache.
type locker interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	LockKey(name string) string
}

// Service polls the upstream quote and serves the latest known state. Only a
// successful fetch replaces the cached quote; failures update the serving
// status but keep the last good price available in the cache until its TTL.
type Service struct {
	fetcher *Fetcher
	cache   Cache
	cfg     config.GoldPriceConfig
	logg    *logger.Logger
	metrics *metrics.RefreshMetrics

	mu     sync.RWMutex
	latest Quote
}

// ServiceParams groups dependencies for the gold price service.
type ServiceParams struct {
	Fetcher *Fetcher
	Cache   Cache
	Config  config.GoldPriceConfig
	Logger  *logger.Logger
	Metrics *metrics.RefreshMetrics
}

// NewService builds the poller. Cache and Metrics may be nil.
func NewService(params ServiceParams) (*Service, error) {
	if params.Fetcher == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gold price fetcher is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{
		fetcher: params.Fetcher,
		cache:   params.Cache,
		cfg:     params.Config,
		logg:    params.Logger,
		metrics: params.Metrics,
		latest:  Quote{Status: enums.GoldPriceStatusPending},
	}, nil
}

// Latest returns the most recent quote state. Before the first successful
// fetch this is the pending status, or the cached quote from a previous run.
func (s *Service) Latest() Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Run restores the cached quote, then polls until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	s.restore(ctx)
	s.poll(ctx)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Service) poll(ctx context.Context) {
	if l, ok := s.cache.(locker); ok {
		key := l.LockKey(pollLockName)
		acquired, err := l.SetNX(ctx, key, "1", s.cfg.PollInterval)
		if err == nil && !acquired {
			s.restore(ctx)
			return
		}
		if err == nil {
			defer func() {
				if err := l.Del(ctx, key); err != nil {
					s.logg.Debug(ctx, "gold price poll lock release failed")
				}
			}()
		}
	}

	start := time.Now()
	quote := s.fetcher.Fetch(ctx)
	s.metrics.ObserveDuration(pollTask, time.Since(start))

	if quote.Status != enums.GoldPriceStatusSuccess {
		s.metrics.IncFailure(pollTask)
		s.logg.Debug(ctx, "gold price fetch did not succeed: "+string(quote.Status))
		s.mu.Lock()
		// keep the last good price visible; only the status moves
		if s.latest.Status != enums.GoldPriceStatusSuccess {
			s.latest = quote
		}
		s.mu.Unlock()
		return
	}

	s.metrics.IncSuccess(pollTask)
	s.mu.Lock()
	s.latest = quote
	s.mu.Unlock()
	s.persist(ctx, quote)
}

func (s *Service) restore(ctx context.Context) {
	if s.cache == nil {
		return
	}
	raw, err := s.cache.Get(ctx, s.cache.GoldPriceKey())
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logg.Debug(ctx, "gold price cache read failed")
		}
		return
	}
	var quote Quote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		return
	}
	if quote.Status == enums.GoldPriceStatusSuccess {
		s.mu.Lock()
		s.latest = quote
		s.mu.Unlock()
	}
}

func (s *Service) persist(ctx context.Context, quote Quote) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(quote)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.GoldPriceKey(), raw, s.cfg.CacheTTL); err != nil {
		s.logg.Debug(ctx, "gold price cache write failed")
	}
}
