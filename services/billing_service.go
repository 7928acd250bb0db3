package services

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/entity"
)

var (
	ErrPermissionDenied = errors.New("missing permission for this action")
	ErrNothingSelected  = errors.New("no items selected")
	ErrNoTable          = errors.New("no table selected")
)

// PermissionChecker gates payment-affecting actions. Satisfied by
// *AuthService.
type PermissionChecker interface {
	HasPermission(permission string) bool
}

const PermPayItems = "pay_items"

// BillingService drives the itemized billing view for one table at a time.
// Every action reloads the view from the backend afterwards instead of
// patching the local copy; the server owns payment state.
type BillingService struct {
	api   *api.Client
	perms PermissionChecker
	log   zerolog.Logger

	mu    sync.RWMutex
	table string
	data  *entity.BillingData
}

func NewBillingService(client *api.Client, perms PermissionChecker, log zerolog.Logger) *BillingService {
	return &BillingService{api: client, perms: perms, log: log}
}

func (s *BillingService) Load(ctx context.Context, tableCode string) error {
	data, err := s.api.TableBilling(ctx, tableCode)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.table = tableCode
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *BillingService) Data() *entity.BillingData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *BillingService) tableCode() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == "" {
		return "", ErrNoTable
	}
	return s.table, nil
}

func (s *BillingService) reload(ctx context.Context) {
	code, err := s.tableCode()
	if err != nil {
		return
	}
	if err := s.Load(ctx, code); err != nil {
		s.log.Warn().Err(err).Str("table", code).Msg("billing reload failed")
	}
}

func (s *BillingService) TogglePaid(ctx context.Context, itemUUID string) error {
	if !s.perms.HasPermission(PermPayItems) {
		return ErrPermissionDenied
	}
	if err := s.api.ToggleItemPaid(ctx, itemUUID); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

func (s *BillingService) CancelItem(ctx context.Context, itemUUID string) error {
	if err := s.api.CancelItem(ctx, itemUUID); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

func (s *BillingService) BulkPay(ctx context.Context, itemUUIDs []string) error {
	if !s.perms.HasPermission(PermPayItems) {
		return ErrPermissionDenied
	}
	if len(itemUUIDs) == 0 {
		return ErrNothingSelected
	}
	if err := s.api.BulkPayItems(ctx, itemUUIDs); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

// PaySession marks every open item of the table's session paid.
func (s *BillingService) PaySession(ctx context.Context) error {
	if !s.perms.HasPermission(PermPayItems) {
		return ErrPermissionDenied
	}
	code, err := s.tableCode()
	if err != nil {
		return err
	}
	if err := s.api.PaySession(ctx, code); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}

// EndSession closes the session and frees the table; the local view is
// dropped since there is nothing left to bill.
func (s *BillingService) EndSession(ctx context.Context) error {
	code, err := s.tableCode()
	if err != nil {
		return err
	}
	if err := s.api.EndSession(ctx, code); err != nil {
		return err
	}
	s.mu.Lock()
	s.table = ""
	s.data = nil
	s.mu.Unlock()
	return nil
}

func (s *BillingService) StartSession(ctx context.Context, tableCode string) error {
	return s.api.StartTableSession(ctx, tableCode)
}

// MoveOrder moves the table's open items (or just the given ones) to the
// target table, then reloads.
func (s *BillingService) MoveOrder(ctx context.Context, targetCode string, itemUUIDs []string) error {
	code, err := s.tableCode()
	if err != nil {
		return err
	}
	if err := s.api.MoveOrder(ctx, code, targetCode, itemUUIDs); err != nil {
		return err
	}
	s.reload(ctx)
	return nil
}
