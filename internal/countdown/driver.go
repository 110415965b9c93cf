package countdown

import (
	"context"
	"strings"
	"sync"
)

// Driver owns a single repeating timer that re-evaluates the target on each
// tick and hands the result to publish. At most one timer runs at a time.
type Driver struct {
	options Options
	publish func(Snapshot)

	// runMu serializes Start/Stop/SetTarget so a prior loop has exited
	// before the next one begins.
	runMu  sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.RWMutex
	target   string
	snapshot Snapshot
}

// NewDriver returns a stopped driver. publish may be nil; it runs on the
// driver goroutine and must not call back into Start, Stop or SetTarget.
func NewDriver(target string, publish func(Snapshot), opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if publish == nil {
		publish = func(Snapshot) {}
	}
	return &Driver{
		options:  o,
		publish:  publish,
		target:   target,
		snapshot: Snapshot{Target: target, Mode: ResolveMode(target, nil)},
	}
}

// Start arms the timer under ctx, replacing any running one. An empty
// target leaves the driver stopped.
func (d *Driver) Start(ctx context.Context) {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	d.ctx = ctx
	d.stopLocked()
	d.startLocked()
}

// SetTarget replaces the target. If the driver was started, the prior timer
// is cancelled and a new one armed; the display catches up on the next tick.
func (d *Driver) SetTarget(target string) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	d.target = target
	if strings.TrimSpace(target) == "" {
		d.snapshot = Snapshot{Target: target, Mode: ResolveMode(target, nil)}
	}
	d.mu.Unlock()

	if d.ctx == nil {
		return
	}
	d.stopLocked()
	d.startLocked()
}

// Stop tears down the timer. It is safe to call more than once.
func (d *Driver) Stop() {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	d.stopLocked()
	d.ctx = nil
}

// Running reports whether a timer is armed.
func (d *Driver) Running() bool {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	return d.done != nil
}

// Target returns the live target moment.
func (d *Driver) Target() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.target
}

// Snapshot returns the most recently published result.
func (d *Driver) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshot
}

func (d *Driver) startLocked() {
	if strings.TrimSpace(d.Target()) == "" {
		return
	}
	if d.ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithCancel(d.ctx)
	ticker := d.options.Clock.NewTicker(d.options.Interval)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	go d.run(ctx, ticker, done)
}

func (d *Driver) stopLocked() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	d.cancel = nil
	d.done = nil
}

func (d *Driver) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			d.tick()
		}
	}
}

func (d *Driver) tick() {
	now := d.options.Clock.Now()
	d.mu.Lock()
	s := Evaluate(d.target, now)
	d.snapshot = s
	d.mu.Unlock()
	d.publish(s)
}
