package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signinResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Expired int64  `json:"expired"` // epoch milliseconds
}

// Signin exchanges credentials for a bearer token and its expiry.
func (c *Client) Signin(ctx context.Context, username, password string) (string, time.Time, error) {
	var out signinResponse
	url := fmt.Sprintf("%s/admin/signin", c.baseURL)
	err := c.do(ctx, http.MethodPost, url, "", signinRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signin: %w", err)
	}
	if out.Token == "" {
		return "", time.Time{}, fmt.Errorf("signin: no token in response")
	}
	return out.Token, time.UnixMilli(out.Expired), nil
}

// Check asks the remote service whether the token is still valid.
func (c *Client) Check(ctx context.Context, token string) error {
	url := fmt.Sprintf("%s/api/user/check", c.baseURL)
	if err := c.do(ctx, http.MethodPost, url, token, nil, nil); err != nil {
		return fmt.Errorf("check token: %w", err)
	}
	return nil
}
