package api

import (
	"context"

	"github.com/serdvr66/orderQPro/entity"
)

// Menu fetches the nested category/item/configuration tree.
func (c *Client) Menu(ctx context.Context) ([]entity.MenuCategory, error) {
	var out []entity.MenuCategory
	if err := c.get(ctx, "/menu", &out); err != nil {
		return nil, err
	}
	return out, nil
}
