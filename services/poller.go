package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// orderBoard and callBoard are the slices of the services the poller needs;
// narrow interfaces keep the loop testable without a live backend.
type orderBoard interface {
	Load(ctx context.Context) error
	Count() int
	MutationPending() bool
}

type callBoard interface {
	Load(ctx context.Context) error
	OpenCount() int
}

// Poller drives the two fixed-interval refresh timers: one for the order
// board, one for waiter calls. Each successful tick diffs the count against
// the previous one and raises a notification when it grew. The orders tick
// is skipped outright while a board mutation is in flight so a stale fetch
// cannot overwrite an optimistic update.
type Poller struct {
	orders   orderBoard
	calls    callBoard
	notifier Notifier
	log      zerolog.Logger

	orderInterval time.Duration
	callInterval  time.Duration

	prevOrders int
	prevCalls  int
}

func NewPoller(orders orderBoard, calls callBoard, notifier Notifier, orderInterval, callInterval time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		orders:        orders,
		calls:         calls,
		notifier:      notifier,
		orderInterval: orderInterval,
		callInterval:  callInterval,
		log:           log,
	}
}

// Run polls until the context is cancelled. An immediate refresh happens on
// entry; that first pass primes the counters and never notifies.
func (p *Poller) Run(ctx context.Context) {
	p.tickOrders(ctx)
	p.tickCalls(ctx)

	orderTicker := time.NewTicker(p.orderInterval)
	defer orderTicker.Stop()
	callTicker := time.NewTicker(p.callInterval)
	defer callTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Msg("poller stopped")
			return
		case <-orderTicker.C:
			p.tickOrders(ctx)
		case <-callTicker.C:
			p.tickCalls(ctx)
		}
	}
}

func (p *Poller) tickOrders(ctx context.Context) {
	if p.orders.MutationPending() {
		p.log.Debug().Msg("mutation in flight, skipping order refresh")
		return
	}
	if err := p.orders.Load(ctx); err != nil {
		// keep whatever we had; the next tick tries again
		p.log.Warn().Err(err).Msg("order refresh failed")
		return
	}
	n := p.orders.Count()
	if p.prevOrders > 0 && n > p.prevOrders {
		p.notifier.NewOrders(n - p.prevOrders)
	}
	p.prevOrders = n
}

func (p *Poller) tickCalls(ctx context.Context) {
	if err := p.calls.Load(ctx); err != nil {
		p.log.Warn().Err(err).Msg("waiter call refresh failed")
		return
	}
	n := p.calls.OpenCount()
	if p.prevCalls > 0 && n > p.prevCalls {
		p.notifier.NewCalls(n - p.prevCalls)
	}
	p.prevCalls = n
}
