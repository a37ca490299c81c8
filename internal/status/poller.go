// Package status polls the service's processing status on a fixed interval.
// Poll failures are logged and otherwise ignored; the last good value stays
// visible until replaced. There is no backoff and no retry acceleration.
package status

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/logging"
)

// Fetcher retrieves the current system status.
type Fetcher interface {
	GetStatus(ctx context.Context) (*api.SystemStatus, error)
}

// Poller periodically refreshes the system status. Safe for concurrent use;
// readers call Current while Start runs in its own goroutine.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration
	log      *slog.Logger

	mu      sync.RWMutex
	current *api.SystemStatus
}

// NewPoller creates a poller with the given fetch interval.
func NewPoller(fetcher Fetcher, interval time.Duration) *Poller {
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		log:      logging.ForService("status"),
	}
}

// Start fetches the status immediately, then on every tick until ctx is
// canceled. It blocks; run it in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	p.log.Debug("Starting status polling", "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-ctx.Done():
			p.log.Debug("Stopping status polling")
			return
		}
	}
}

// Current returns the most recent successfully fetched status, or nil when
// no poll has succeeded yet.
func (p *Poller) Current() *api.SystemStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Poller) poll(ctx context.Context) {
	status, err := p.fetcher.GetStatus(ctx)
	if err != nil {
		// Last good value stays visible until a poll succeeds.
		p.log.Warn("Failed to fetch status", "error", err)
		return
	}

	p.mu.Lock()
	p.current = status
	p.mu.Unlock()
}
