package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/serdvr66/orderQPro/entity"
)

func TestOrderBoardLoad(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")
	backend.PlaceGuestOrder("T2", "Cola", "3.00")

	svc := NewOrderService(client, testLogger())
	require.NoError(t, svc.Load(context.Background()))
	require.Equal(t, 2, svc.Count())
	require.False(t, svc.MutationPending())
}

func TestToggleReadyOptimisticAndPersisted(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")

	ctx := context.Background()
	svc := NewOrderService(client, testLogger())
	require.NoError(t, svc.Load(ctx))

	item := svc.Orders()[0].Items[0]
	require.False(t, item.Ready())

	require.NoError(t, svc.ToggleReady(ctx, item))
	require.True(t, svc.Orders()[0].Items[0].Ready())
	require.True(t, svc.Orders()[0].AllReady())

	// the flip survives a fresh fetch
	require.NoError(t, svc.Load(ctx))
	require.True(t, svc.Orders()[0].Items[0].Ready())
}

func TestOrdersSnapshotIsIsolated(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")

	ctx := context.Background()
	svc := NewOrderService(client, testLogger())
	require.NoError(t, svc.Load(ctx))

	snapshot := svc.Orders()
	require.NoError(t, svc.ToggleReady(ctx, snapshot[0].Items[0]))

	require.False(t, snapshot[0].Items[0].Ready(), "held snapshot stays as taken")
	require.True(t, svc.Orders()[0].Items[0].Ready())
}

func TestToggleReadyFailureResyncs(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")

	ctx := context.Background()
	svc := NewOrderService(client, testLogger())
	require.NoError(t, svc.Load(ctx))

	ghost := entity.OrderItem{ID: 9999, UUID: "no-such-item"}
	require.Error(t, svc.ToggleReady(ctx, ghost))

	// resynced board still matches the server
	require.Equal(t, 1, svc.Count())
	require.False(t, svc.Orders()[0].Items[0].Ready())
}

func TestCancelItemDropsEmptiedOrder(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")

	ctx := context.Background()
	svc := NewOrderService(client, testLogger())
	require.NoError(t, svc.Load(ctx))

	item := svc.Orders()[0].Items[0]
	require.NoError(t, svc.CancelItem(ctx, item))
	require.Zero(t, svc.Count())

	require.NoError(t, svc.Load(ctx))
	require.Zero(t, svc.Count(), "gone on the server too")
}

func TestCancelItemFailureResyncs(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")

	ctx := context.Background()
	svc := NewOrderService(client, testLogger())
	require.NoError(t, svc.Load(ctx))

	require.Error(t, svc.CancelItem(ctx, entity.OrderItem{ID: 9999, UUID: "no-such-item"}))
	require.Equal(t, 1, svc.Count())
}

func TestCompleteRemovesOrder(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")
	backend.PlaceGuestOrder("T2", "Cola", "3.00")

	ctx := context.Background()
	svc := NewOrderService(client, testLogger())
	require.NoError(t, svc.Load(ctx))

	require.NoError(t, svc.Complete(ctx, svc.Orders()[0]))
	require.Equal(t, 1, svc.Count())

	require.NoError(t, svc.Load(ctx))
	require.Equal(t, 1, svc.Count())
}

func TestCallBoard(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.CallWaiter("T1", "Bitte zahlen")
	backend.CallWaiter("T2", "")

	ctx := context.Background()
	svc := NewCallService(client, testLogger())
	require.NoError(t, svc.Load(ctx))
	require.Equal(t, 2, svc.OpenCount())

	calls := svc.Calls()
	require.Equal(t, "Tisch 1", calls[0].TableName)

	require.NoError(t, svc.Confirm(ctx, calls[0].ID))
	require.Equal(t, 1, svc.OpenCount())

	// confirmed calls stay resolved on the server
	require.NoError(t, svc.Load(ctx))
	require.Equal(t, 1, svc.OpenCount())
}

func TestCallConfirmFailureResyncs(t *testing.T) {
	backend, client := newTestBackend(t)
	backend.CallWaiter("T1", "Bitte zahlen")

	ctx := context.Background()
	svc := NewCallService(client, testLogger())
	require.NoError(t, svc.Load(ctx))

	require.Error(t, svc.Confirm(ctx, 9999))
	require.Equal(t, 1, svc.OpenCount())
}
