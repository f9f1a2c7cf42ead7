// Package sweeper reclaims customers abandoned at the quotation stage. Once a
// day it deletes every quotation-status customer older than the retention
// window. A failed run is logged and skipped; the next tick retries.
package sweeper

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhekani17/Eargleevents2/internal/metrics"
)

type Store interface {
	DeleteStaleQuotationCustomers(ctx context.Context, cutoff time.Time) (int64, error)
}

type Config struct {
	InitialDelay time.Duration
	Interval     time.Duration
	Retention    time.Duration
}

type Sweeper struct {
	store  Store
	log    *zerolog.Logger
	cfg    Config
	now    func() time.Time
	done   chan struct{}
	cancel context.CancelFunc
}

func New(store Store, log *zerolog.Logger, cfg Config) *Sweeper {
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Minute
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * 24 * time.Hour
	}
	return &Sweeper{
		store: store,
		log:   log,
		cfg:   cfg,
		now:   time.Now,
		done:  make(chan struct{}),
	}
}

// Start launches the sweep loop: one run after the initial delay (the store
// connection may still be settling at process start), then on every tick.
func (s *Sweeper) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.log.Info().
		Dur("initial_delay", s.cfg.InitialDelay).
		Dur("interval", s.cfg.Interval).
		Dur("retention", s.cfg.Retention).
		Msg("customer sweep started")

	go func() {
		defer close(s.done)

		delay := time.NewTimer(s.cfg.InitialDelay)
		defer delay.Stop()

		select {
		case <-cctx.Done():
			return
		case <-delay.C:
		}
		s.runOnce(cctx)

		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-cctx.Done():
				s.log.Info().Msg("customer sweep stopped")
				return
			case <-ticker.C:
				s.runOnce(cctx)
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	cutoff := s.now().Add(-s.cfg.Retention)

	deleted, err := s.store.DeleteStaleQuotationCustomers(ctx, cutoff)
	if err != nil {
		s.log.Error().Err(err).Time("cutoff", cutoff).Msg("sweep failed, will retry next tick")
		return
	}

	metrics.AddSweptCustomers(deleted)
	if deleted > 0 {
		s.log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("stale quotation customers deleted")
	}
}
