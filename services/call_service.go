package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/entity"
)

// CallService tracks the waiter-call queue. Confirming removes the call
// optimistically and resyncs on failure, same pattern as the order board.
type CallService struct {
	api *api.Client
	log zerolog.Logger

	mu    sync.RWMutex
	calls []entity.WaiterCall
}

func NewCallService(client *api.Client, log zerolog.Logger) *CallService {
	return &CallService{api: client, log: log}
}

func (s *CallService) Load(ctx context.Context) error {
	calls, err := s.api.WaiterCalls(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.calls = calls
	s.mu.Unlock()
	return nil
}

func (s *CallService) Calls() []entity.WaiterCall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.WaiterCall(nil), s.calls...)
}

// OpenCount is the number of unresolved calls; the poller diffs it.
func (s *CallService) OpenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.calls {
		if !c.IsResolved {
			n++
		}
	}
	return n
}

func (s *CallService) Confirm(ctx context.Context, callID int) error {
	s.mu.Lock()
	kept := s.calls[:0]
	for _, c := range s.calls {
		if c.ID != callID {
			kept = append(kept, c)
		}
	}
	s.calls = kept
	s.mu.Unlock()

	if err := s.api.ConfirmWaiterCall(ctx, callID); err != nil {
		s.log.Warn().Err(err).Int("call", callID).Msg("confirm failed, resyncing")
		if lerr := s.Load(ctx); lerr != nil {
			s.log.Error().Err(lerr).Msg("call resync failed")
		}
		return err
	}
	return nil
}
