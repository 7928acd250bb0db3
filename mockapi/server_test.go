package mockapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/entity"
	"github.com/serdvr66/orderQPro/pkg/session"
)

func newFixture(t *testing.T) (*Server, *api.Client, *session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := New("test-secret", time.Hour)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	sess := session.New()
	client := api.NewClient(ts.URL, 5*time.Second, sess, zerolog.Nop())
	return srv, client, sess
}

func login(t *testing.T, client *api.Client, sess *session.Session) entity.User {
	t.Helper()
	user, token, err := client.Login(context.Background(), StaffEmail, StaffPassword)
	require.NoError(t, err)
	sess.Begin(user, token)
	return user
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, client, _ := newFixture(t)

	_, _, err := client.Login(context.Background(), StaffEmail, "falsch")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.Status)
}

func TestEndpointsRequireToken(t *testing.T) {
	_, client, _ := newFixture(t)

	_, err := client.Orders(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.Status)
}

func TestMenuAndTables(t *testing.T) {
	_, client, sess := newFixture(t)
	login(t, client, sess)
	ctx := context.Background()

	menu, err := client.Menu(ctx)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	require.Equal(t, "Pizza", menu[0].Title)
	require.Len(t, menu[0].Items[0].Configurations, 2)

	tables, err := client.Tables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 3)
	require.Equal(t, entity.TableFree, tables[0].Status)
}

// The whole shift in one pass: a guest order arrives, staff adds to it,
// marks the kitchen lines ready, settles the bill and frees the table.
func TestFullServiceFlow(t *testing.T) {
	srv, client, sess := newFixture(t)
	user := login(t, client, sess)
	require.True(t, user.Can("pay_items"))
	ctx := context.Background()

	srv.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")
	srv.CallWaiter("T1", "Bitte Besteck")

	// the call shows up and gets confirmed
	calls, err := client.WaiterCalls(ctx)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	require.NoError(t, client.ConfirmWaiterCall(ctx, calls[0].ID))

	// staff adds a drink to the same table
	lines := []entity.OrderLine{{
		ItemID:    "item-cola",
		Qty:       2,
		Price:     entity.PriceFromString("3.00"),
		Comments:  []string{},
		BasePrice: entity.PriceFromString("3.00"),
	}}
	require.NoError(t, client.PlaceOrder(ctx, "T1", lines, ""))

	orders, err := client.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	staffOrder := orders[1]
	require.Equal(t, entity.OrderSourceStaff, staffOrder.Source)
	require.Equal(t, "Cola", staffOrder.Items[0].Item.Title)
	require.True(t, staffOrder.Subtotal.Equal(entity.PriceFromString("6.00")))

	// kitchen marks the guest line ready, then the order completes
	require.NoError(t, client.ToggleItemReady(ctx, orders[0].Items[0].UUID))
	orders, err = client.Orders(ctx)
	require.NoError(t, err)
	require.True(t, orders[0].AllReady())
	require.NoError(t, client.CompleteOrder(ctx, orders[0].ID))

	// the table is occupied and carries both items on its bill
	details, err := client.TableDetails(ctx, "T1")
	require.NoError(t, err)
	require.True(t, details.Table.Occupied())
	require.NotNil(t, details.CurrentSession)

	billing, err := client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	require.Len(t, billing.Items(), 2)
	// 9.50 + 2 × 3.00
	require.True(t, billing.Totals.PendingAmount.Equal(entity.PriceFromString("15.50")))

	// pay item by item, then close out
	require.NoError(t, client.ToggleItemPaid(ctx, billing.Items()[0].UUID))
	billing, err = client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	require.True(t, billing.Totals.PaidAmount.Equal(entity.PriceFromString("9.50")))

	require.NoError(t, client.PaySession(ctx, "T1"))
	require.NoError(t, client.EndSession(ctx, "T1"))

	// the table is free again and the board is clear
	tables, err := client.Tables(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.TableFree, tables[0].Status)
	orders, err = client.Orders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestStats(t *testing.T) {
	srv, client, sess := newFixture(t)
	login(t, client, sess)
	ctx := context.Background()

	srv.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")
	srv.CallWaiter("T2", "Bitte zahlen")

	stats, err := client.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.ActiveOrders)
	require.Equal(t, 1, stats.OccupiedTables)
	require.Equal(t, 1, stats.OpenCalls)
	require.True(t, stats.PendingRevenue.Equal(entity.PriceFromString("9.50")))
}

func TestStartSessionOccupiesTable(t *testing.T) {
	_, client, sess := newFixture(t)
	login(t, client, sess)
	ctx := context.Background()

	require.NoError(t, client.StartTableSession(ctx, "T2"))
	details, err := client.TableDetails(ctx, "T2")
	require.NoError(t, err)
	require.True(t, details.Table.Occupied())
	require.NotNil(t, details.CurrentSession)
}

func TestMoveOrderRetargetsBilling(t *testing.T) {
	srv, client, sess := newFixture(t)
	login(t, client, sess)
	ctx := context.Background()

	srv.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")
	require.NoError(t, client.MoveOrder(ctx, "T1", "T3", nil))

	src, err := client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	require.Empty(t, src.Items())

	dst, err := client.TableBilling(ctx, "T3")
	require.NoError(t, err)
	require.Len(t, dst.Items(), 1)

	tables, err := client.Tables(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.TableFree, tables[0].Status)
	require.Equal(t, entity.TableOccupied, tables[2].Status)
}

func TestCancelRemovesItemFromBoardAndBill(t *testing.T) {
	srv, client, sess := newFixture(t)
	login(t, client, sess)
	ctx := context.Background()

	// board-side cancel (by numeric id) takes the item off the bill too
	srv.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")
	orders, err := client.Orders(ctx)
	require.NoError(t, err)
	require.NoError(t, client.CancelOrderItem(ctx, orders[0].Items[0].ID))

	billing, err := client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	require.Empty(t, billing.Items())
	orders, err = client.Orders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)

	// billing-side cancel (by uuid) clears the board line as well
	srv.PlaceGuestOrder("T1", "Cola", "3.00")
	billing, err = client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	require.NoError(t, client.CancelItem(ctx, billing.Items()[0].UUID))

	billing, err = client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	require.Empty(t, billing.Items())
	orders, err = client.Orders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestBulkPay(t *testing.T) {
	srv, client, sess := newFixture(t)
	login(t, client, sess)
	ctx := context.Background()

	srv.PlaceGuestOrder("T1", "Pizza Funghi", "9.50")
	srv.PlaceGuestOrder("T1", "Cola", "3.00")

	billing, err := client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	var uuids []string
	for _, it := range billing.Items() {
		uuids = append(uuids, it.UUID)
	}

	require.NoError(t, client.BulkPayItems(ctx, uuids))
	billing, err = client.TableBilling(ctx, "T1")
	require.NoError(t, err)
	require.True(t, billing.Totals.PendingAmount.IsZero())

	// paying the same items again is a client error
	err = client.BulkPayItems(ctx, uuids)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)
}

func TestPushTokenLifecycle(t *testing.T) {
	_, client, sess := newFixture(t)
	login(t, client, sess)
	ctx := context.Background()

	require.NoError(t, client.RegisterPushToken(ctx, "expo-1", "device-1", "test", 1))
	require.NoError(t, client.UnregisterPushToken(ctx, "expo-1"))
}
