package api

import (
	"context"

	"github.com/serdvr66/orderQPro/entity"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  entity.User `json:"user"`
	Token string      `json:"token"`
}

// Login exchanges credentials for the user record and a bearer token. The
// client does not install the token itself; session handling belongs to the
// caller.
func (c *Client) Login(ctx context.Context, email, password string) (entity.User, string, error) {
	var out loginResponse
	if err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return entity.User{}, "", err
	}
	return out.User, out.Token, nil
}
