package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/entity"
)

// OrderService is the live order board. Mutations apply optimistically to
// the local snapshot first; when the backend call fails, the canonical list
// is reloaded wholesale rather than rolled back piecemeal, so the board is
// consistent with the server again within one refresh cycle.
type OrderService struct {
	api *api.Client
	log zerolog.Logger

	mu     sync.RWMutex
	orders []entity.Order

	// raised for the duration of every mutating call; the poller skips
	// order refreshes while nonzero so a stale fetch cannot clobber an
	// optimistic update
	pending atomic.Int32
}

func NewOrderService(client *api.Client, log zerolog.Logger) *OrderService {
	return &OrderService{api: client, log: log}
}

func (s *OrderService) Load(ctx context.Context) error {
	orders, err := s.api.Orders(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// Orders returns a snapshot of the board. Item slices are copied too, so a
// held snapshot never observes a later in-place mutation.
func (s *OrderService) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, len(s.orders))
	for i, o := range s.orders {
		o.Items = append([]entity.OrderItem(nil), o.Items...)
		out[i] = o
	}
	return out
}

func (s *OrderService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func (s *OrderService) MutationPending() bool {
	return s.pending.Load() > 0
}

// ToggleReady flips a line's ready flag.
func (s *OrderService) ToggleReady(ctx context.Context, item entity.OrderItem) error {
	s.pending.Add(1)
	defer s.pending.Add(-1)

	s.mu.Lock()
	for oi := range s.orders {
		for ii := range s.orders[oi].Items {
			if s.orders[oi].Items[ii].UUID == item.UUID {
				if s.orders[oi].Items[ii].IsReady == 1 {
					s.orders[oi].Items[ii].IsReady = 0
				} else {
					s.orders[oi].Items[ii].IsReady = 1
				}
			}
		}
	}
	s.mu.Unlock()

	if err := s.api.ToggleItemReady(ctx, item.UUID); err != nil {
		s.log.Warn().Err(err).Str("item", item.UUID).Msg("toggle ready failed, resyncing")
		s.resync(ctx)
		return err
	}
	return nil
}

// CancelItem removes a line; orders left without lines drop off the board.
func (s *OrderService) CancelItem(ctx context.Context, item entity.OrderItem) error {
	s.pending.Add(1)
	defer s.pending.Add(-1)

	s.mu.Lock()
	kept := s.orders[:0]
	for _, order := range s.orders {
		items := order.Items[:0]
		for _, it := range order.Items {
			if it.UUID != item.UUID {
				items = append(items, it)
			}
		}
		order.Items = items
		if len(order.Items) > 0 {
			kept = append(kept, order)
		}
	}
	s.orders = kept
	s.mu.Unlock()

	if err := s.api.CancelOrderItem(ctx, item.ID); err != nil {
		s.log.Warn().Err(err).Int("item", item.ID).Msg("cancel failed, resyncing")
		s.resync(ctx)
		return err
	}
	return nil
}

// Complete closes an order and removes it from the board.
func (s *OrderService) Complete(ctx context.Context, order entity.Order) error {
	s.pending.Add(1)
	defer s.pending.Add(-1)

	s.mu.Lock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != order.ID {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	s.mu.Unlock()

	if err := s.api.CompleteOrder(ctx, order.ID); err != nil {
		s.log.Warn().Err(err).Int("order", order.ID).Msg("complete failed, resyncing")
		s.resync(ctx)
		return err
	}
	return nil
}

func (s *OrderService) resync(ctx context.Context) {
	if err := s.Load(ctx); err != nil {
		s.log.Error().Err(err).Msg("resync failed, board stale until next poll")
	}
}
