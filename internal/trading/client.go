// Package trading is a thin request/response client for the trading venue's
// order API. It carries no caching or reconciliation; every call is a direct
// pass-through.
package trading

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured reports a missing venue API key.
var ErrNotConfigured = errors.New("trading API key not configured")

// Client handles HTTP communication with the trading venue.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// OrderRequest describes an order to place.
type OrderRequest struct {
	TokenID string  `json:"token_id"`
	Price   float64 `json:"price"`
	Size    float64 `json:"size"`
	Side    string  `json:"side"` // "BUY" or "SELL"

	// ClientOrderID is generated when empty so retries stay idempotent.
	ClientOrderID string `json:"client_order_id,omitempty"`
}

// OrderResponse is the venue's acknowledgement of a placed order.
type OrderResponse struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	ClientOrderID string `json:"client_order_id,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Order is one resting order on the venue.
type Order struct {
	OrderID string  `json:"order_id"`
	TokenID string  `json:"token_id"`
	Price   float64 `json:"price"`
	Size    float64 `json:"size"`
	Side    string  `json:"side"`
	Status  string  `json:"status"`
}

// Balance is the account's balance and allowance snapshot.
type Balance struct {
	Available  float64           `json:"available"`
	Locked     float64           `json:"locked"`
	Currency   string            `json:"currency"`
	Allowances map[string]string `json:"allowances,omitempty"`
}

// NewClient creates a venue client. A nil httpClient gets a default with a
// generous timeout, since order placement can take a while.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 60 * time.Second,
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// PlaceOrder submits an order to the venue.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	if req.ClientOrderID == "" {
		req.ClientOrderID = uuid.NewString()
	}
	req.Side = strings.ToUpper(req.Side)

	var resp OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelOrder cancels a resting order by id.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	body := map[string]string{"order_id": orderID}

	var resp OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/cancel", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OpenOrders lists the account's resting orders.
func (c *Client) OpenOrders(ctx context.Context) ([]Order, error) {
	var result struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &result); err != nil {
		return nil, err
	}
	return result.Orders, nil
}

// AccountBalance fetches the account balance and allowances.
func (c *Client) AccountBalance(ctx context.Context) (*Balance, error) {
	var balance Balance
	if err := c.do(ctx, http.MethodGet, "/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("venue error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("unmarshaling response: %w", err)
		}
	}
	return nil
}
