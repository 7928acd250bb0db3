package api

import (
	"context"
	"fmt"

	"github.com/serdvr66/orderQPro/entity"
)

func (c *Client) Orders(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := c.get(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type placeOrderRequest struct {
	TableCode     string             `json:"table_code"`
	Cart          []entity.OrderLine `json:"cart"`
	Note          string             `json:"note,omitempty"`
	PlacedByStaff bool               `json:"placed_by_staff"`
}

// PlaceOrder submits a translated cart for the table. No idempotency key is
// sent; a retry after an ambiguous failure may duplicate the order.
func (c *Client) PlaceOrder(ctx context.Context, tableCode string, lines []entity.OrderLine, note string) error {
	body := placeOrderRequest{TableCode: tableCode, Cart: lines, Note: note, PlacedByStaff: true}
	return c.post(ctx, "/order/place", body, nil)
}

func (c *Client) ToggleItemReady(ctx context.Context, itemUUID string) error {
	return c.post(ctx, fmt.Sprintf("/item/%s/toggle-ready", itemUUID), nil, nil)
}

// CancelOrderItem cancels a line on the live order board; it addresses the
// item by numeric id, unlike the billing-side CancelItem.
func (c *Client) CancelOrderItem(ctx context.Context, itemID int) error {
	return c.post(ctx, fmt.Sprintf("/order-item/%d/cancel", itemID), nil, nil)
}

func (c *Client) CompleteOrder(ctx context.Context, orderID int) error {
	return c.post(ctx, fmt.Sprintf("/order/%d/complete", orderID), nil, nil)
}

func (c *Client) CompleteAllOrders(ctx context.Context, tableCode string) error {
	return c.get(ctx, fmt.Sprintf("/completeAllOrder/%s", tableCode), nil)
}
