package api

import (
	"context"
	"fmt"

	"github.com/serdvr66/orderQPro/entity"
)

func (c *Client) Tables(ctx context.Context) ([]entity.Table, error) {
	var out []entity.Table
	if err := c.get(ctx, "/tables", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TableDetails(ctx context.Context, tableCode string) (*entity.TableDetails, error) {
	var out entity.TableDetails
	if err := c.get(ctx, fmt.Sprintf("/table/%s/details", tableCode), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type startSessionRequest struct {
	TableCode string `json:"table_code"`
}

func (c *Client) StartTableSession(ctx context.Context, tableCode string) error {
	return c.post(ctx, "/table/start-session", startSessionRequest{TableCode: tableCode}, nil)
}

func (c *Client) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var out entity.DashboardStats
	if err := c.get(ctx, "/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
