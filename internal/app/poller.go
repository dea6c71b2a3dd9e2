package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/flip/internal/feed"
	"github.com/five82/flip/internal/logging"
	"github.com/five82/flip/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// Poller refreshes the store from the feed on a fixed cadence, backing off
// while the feed keeps failing.
type Poller struct {
	store    *state.Store
	fetcher  feed.Fetcher
	interval time.Duration
	log      *slog.Logger
	kick     chan struct{}
}

// NewPoller returns a Poller. It does nothing until Start.
func NewPoller(store *state.Store, fetcher feed.Fetcher, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Poller{
		store:    store,
		fetcher:  fetcher,
		interval: interval,
		log:      logger,
		kick:     make(chan struct{}, 1),
	}
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, fetcher feed.Fetcher, interval time.Duration, logger *slog.Logger) *Poller {
	p := NewPoller(store, fetcher, interval, logger)
	p.Start(ctx)
	return p
}

// Start runs the poll loop until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			case <-p.kick:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			p.refresh(ctx)
			timer.Reset(calculateBackoff(p.store.Snapshot().ConsecutiveFailures, p.interval))
		}
	}()
}

// Refresh asks the loop for an immediate fetch. Requests made while one is
// already queued are merged.
func (p *Poller) Refresh() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *Poller) refresh(ctx context.Context) {
	p.store.BeginFetch()
	items, err := p.fetcher.FetchItems(ctx)
	if err != nil {
		p.store.Update(nil, err)
		p.log.Warn("item poll failed", "error", err)
		return
	}
	p.store.Update(items, nil)
	p.log.Debug("item poll", "items", len(items))
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
