package api

import (
	"context"
	"fmt"

	"github.com/serdvr66/orderQPro/entity"
)

func (c *Client) WaiterCalls(ctx context.Context) ([]entity.WaiterCall, error) {
	var out []entity.WaiterCall
	if err := c.get(ctx, "/waiter-calls", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ConfirmWaiterCall(ctx context.Context, callID int) error {
	return c.post(ctx, fmt.Sprintf("/waiter-call/%d/confirm", callID), nil, nil)
}
