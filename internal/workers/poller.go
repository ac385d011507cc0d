// Package workers provides the background polling job the console shell
// uses to refresh data that must stay current regardless of which screen is
// open, such as the unread notification counter.
package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used when Start is given a non-positive interval.
const DefaultInterval = 30 * time.Second

// PollFunc is one poll round. The function must respect ctx and return
// promptly on cancellation; its error is the poller's to swallow, a failed
// round never stops the job.
type PollFunc func(ctx context.Context) error

// Poller runs a PollFunc on a ticker. The job is idle until Start is called.
type Poller struct {
	fn PollFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller creates a Poller around fn.
func NewPoller(fn PollFunc) *Poller {
	return &Poller{fn: fn}
}

// Start stops any previously running job, then launches a background
// goroutine that runs the poll function once immediately and then every
// interval. If interval is zero or negative it defaults to
// [DefaultInterval]. The goroutine exits when ctx is cancelled or Stop is
// called.
func (p *Poller) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		_ = p.fn(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = p.fn(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running
// (no-op in that case).
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
