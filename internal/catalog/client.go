// Package catalog is the typed client for the remote catalog API. The
// bearer token is an explicit argument on every call; the client never
// keeps ambient credential state.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"shopadmin/internal/models"
)

// ErrUnauthorized is returned when the remote service rejects the token.
var ErrUnauthorized = errors.New("unauthorized")

// Client talks to the remote catalog API.
type Client struct {
	baseURL string
	apiPath string
	http    *http.Client
}

// New creates a client for the API rooted at baseURL with the given
// tenant path segment.
func New(baseURL, apiPath string) *Client {
	return &Client{
		baseURL: baseURL,
		apiPath: apiPath,
		http:    &http.Client{},
	}
}

type productPayload struct {
	Data models.Product `json:"data"`
}

type listResponse struct {
	Success  bool             `json:"success"`
	Products []models.Product `json:"products"`
}

// List fetches all products. The returned order is the service's.
func (c *Client) List(ctx context.Context, token string) ([]models.Product, error) {
	var out listResponse
	url := fmt.Sprintf("%s/api/%s/admin/products", c.baseURL, c.apiPath)
	if err := c.do(ctx, http.MethodGet, url, token, nil, &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out.Products, nil
}

// Create submits a new product record.
func (c *Client) Create(ctx context.Context, token string, p models.Product) error {
	url := fmt.Sprintf("%s/api/%s/admin/product", c.baseURL, c.apiPath)
	if err := c.do(ctx, http.MethodPost, url, token, productPayload{Data: p}, nil); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Update overwrites the record identified by p.ID, which must already
// be assigned.
func (c *Client) Update(ctx context.Context, token string, p models.Product) error {
	if p.ID == "" {
		return errors.New("update product: missing id")
	}
	url := fmt.Sprintf("%s/api/%s/admin/product/%s", c.baseURL, c.apiPath, p.ID)
	if err := c.do(ctx, http.MethodPut, url, token, productPayload{Data: p}, nil); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return errors.New("delete product: missing id")
	}
	url := fmt.Sprintf("%s/api/%s/admin/product/%s", c.baseURL, c.apiPath, id)
	if err := c.do(ctx, http.MethodDelete, url, token, nil, nil); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// do runs one request/response pair. No retries: a failed call is the
// caller's to surface or swallow.
func (c *Client) do(ctx context.Context, method, url, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
