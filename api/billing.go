package api

import (
	"context"
	"fmt"

	"github.com/serdvr66/orderQPro/entity"
)

func (c *Client) TableBilling(ctx context.Context, tableCode string) (*entity.BillingData, error) {
	var out entity.BillingData
	if err := c.get(ctx, fmt.Sprintf("/table/%s/billing", tableCode), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleItemPaid(ctx context.Context, itemUUID string) error {
	return c.post(ctx, fmt.Sprintf("/item/%s/toggle-paid", itemUUID), nil, nil)
}

// CancelItem cancels a billed item by uuid (billing screen); the order board
// uses CancelOrderItem instead.
func (c *Client) CancelItem(ctx context.Context, itemUUID string) error {
	return c.post(ctx, fmt.Sprintf("/item/%s/cancel", itemUUID), nil, nil)
}

type bulkPayRequest struct {
	ItemIDs []string `json:"item_ids"`
}

func (c *Client) BulkPayItems(ctx context.Context, itemUUIDs []string) error {
	return c.post(ctx, "/items/bulk-pay", bulkPayRequest{ItemIDs: itemUUIDs}, nil)
}

func (c *Client) PaySession(ctx context.Context, tableCode string) error {
	return c.post(ctx, fmt.Sprintf("/session/%s/pay", tableCode), nil, nil)
}

func (c *Client) EndSession(ctx context.Context, tableCode string) error {
	return c.post(ctx, fmt.Sprintf("/session/%s/end", tableCode), nil, nil)
}

type moveOrderRequest struct {
	TableCode string   `json:"table_code"`
	ItemIDs   []string `json:"item_ids,omitempty"`
}

// MoveOrder moves a table's open items to another table; with itemUUIDs nil
// the whole order moves.
func (c *Client) MoveOrder(ctx context.Context, sourceCode, targetCode string, itemUUIDs []string) error {
	body := moveOrderRequest{TableCode: targetCode, ItemIDs: itemUUIDs}
	return c.post(ctx, fmt.Sprintf("/orders/%s/move", sourceCode), body, nil)
}
