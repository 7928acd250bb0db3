package api

import "context"

type registerPushTokenRequest struct {
	Token     string `json:"token"`
	DeviceID  string `json:"device_id,omitempty"`
	Platform  string `json:"platform"`
	CompanyID int    `json:"company_id"`
}

func (c *Client) RegisterPushToken(ctx context.Context, token, deviceID, platform string, companyID int) error {
	body := registerPushTokenRequest{Token: token, DeviceID: deviceID, Platform: platform, CompanyID: companyID}
	return c.post(ctx, "/push-tokens", body, nil)
}

type unregisterPushTokenRequest struct {
	Token string `json:"token"`
}

func (c *Client) UnregisterPushToken(ctx context.Context, token string) error {
	return c.delete(ctx, "/push-tokens", unregisterPushTokenRequest{Token: token})
}
