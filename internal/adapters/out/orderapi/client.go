// Package orderapi posts completed wizard forms to the order-creation
// endpoint.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"orderwizard/internal/core/domain/model/form"
)

// CreateOrderPath is appended to the configured base URL.
const CreateOrderPath = "/api/create-order"

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("order api responded %d", e.StatusCode)
	}
	return fmt.Sprintf("order api responded %d: %s", e.StatusCode, e.Body)
}

// Client implements ports.OrderSubmitter over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient targets baseURL + CreateOrderPath. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	endpoint, err := url.JoinPath(baseURL, CreateOrderPath)
	if err != nil {
		return nil, fmt.Errorf("order api url: %w", err)
	}

	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Endpoint returns the full URL orders are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts state as a JSON object keyed by field name.
func (c *Client) Submit(ctx context.Context, state form.State) error {
	body, err := json.Marshal(state)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
