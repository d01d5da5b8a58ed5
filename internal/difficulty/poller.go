package difficulty

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller asks the advisor on a fixed wall-clock period and hands results to
// the simulation through a one-slot channel. The simulation never waits on it:
// it publishes snapshots and drains Updates between steps.
type Poller struct {
	advisor  Advisor
	interval time.Duration
	timeout  time.Duration

	snapshot atomic.Pointer[Snapshot]
	updates  chan Params

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

func NewPoller(advisor Advisor, interval, timeout time.Duration) *Poller {
	if advisor == nil {
		panic("advisor cannot be nil")
	}
	return &Poller{
		advisor:  advisor,
		interval: interval,
		timeout:  timeout,
		updates:  make(chan Params, 1),
	}
}

// Publish stores the latest run statistics. Safe to call every frame.
func (p *Poller) Publish(s Snapshot) {
	p.snapshot.Store(&s)
}

// Updates delivers the newest parameters; older undelivered ones are dropped.
func (p *Poller) Updates() <-chan Params {
	return p.updates
}

// Start launches the polling goroutine. Call Stop to tear it down.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx)
}

// Stop cancels the timer and any in-flight request and waits for the goroutine.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel == nil {
			return
		}
		p.cancel()
		<-p.done
	})
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	snap := p.snapshot.Load()
	if snap == nil || !snap.Playing {
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params, err := p.advisor.Advise(reqCtx, snap.Request)
	if err == nil {
		err = params.Validate()
	}
	if err != nil {
		if ctx.Err() != nil {
			return // остановлены во время запроса
		}
		log.Warn().Err(err).Str("run", snap.RunID).Msg("difficulty advisor failed, using defaults")
		params = Defaults()
	} else {
		log.Debug().
			Str("run", snap.RunID).
			Float64("spawnRate", params.SpawnRate).
			Float64("speed", params.Speed).
			Msg("difficulty updated")
	}
	p.post(params)
}

// post replaces a pending undelivered value so the newest always wins.
func (p *Poller) post(params Params) {
	for {
		select {
		case p.updates <- params:
			return
		default:
		}
		select {
		case <-p.updates:
		default:
		}
	}
}
