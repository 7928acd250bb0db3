// Package api is the gateway to the OrderQ backend: plain HTTPS + JSON
// against a fixed base URL, bearer-token authenticated, every response
// wrapped in the {success, data, message} envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/pkg/resp"
)

// TokenSource supplies the bearer token for outgoing requests. Satisfied by
// *session.Session.
type TokenSource interface {
	Token() string
}

// Error is a failed backend call: transport-level, non-2xx, or an envelope
// with success=false. Message carries the backend's free text verbatim where
// available.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
		log:    log,
	}
}

func (c *Client) call(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	var env resp.Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		if res.StatusCode >= 300 {
			return &Error{Status: res.StatusCode}
		}
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}

	if res.StatusCode >= 300 || !env.Success {
		apiErr := &Error{Status: res.StatusCode, Message: env.Text()}
		c.log.Warn().Int("status", res.StatusCode).Str("method", method).Str("path", path).
			Str("message", env.Text()).Msg("backend rejected request")
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("api: decode data of %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.call(ctx, http.MethodDelete, path, body, nil)
}
