// Package client is the API client used by the presentation layer. A failed
// submission is surfaced as an error; it is never converted into a fabricated
// success.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"restaurant-ordering/internal/models"
)

// Client talks to the restaurant ordering API
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3000")
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError is the structured error body returned by the API
type apiError struct {
	Err     string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Menu fetches the catalog
func (c *Client) Menu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.get(ctx, "/api/menu", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SubmitOrder places an order. A transport failure is retried exactly once;
// after that the error is returned to the caller.
func (c *Client) SubmitOrder(ctx context.Context, sub *models.OrderSubmission) (*models.SubmitOrderResponse, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	var resp *http.Response
	for attempt := 0; attempt < 2; attempt++ {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
		if reqErr != nil {
			return nil, reqErr
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = c.httpc.Do(req)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("order submission failed: %w", err)
	}
	defer resp.Body.Close()

	var result models.SubmitOrderResponse
	if err := decodeResponse(resp, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Order fetches an order by identifier
func (c *Client) Order(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.get(ctx, "/api/orders/"+url.PathEscape(orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus transitions an order to a new status
func (c *Client) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	body, err := json.Marshal(models.UpdateStatusRequest{Status: status})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/api/orders/"+url.PathEscape(orderID)+"/status", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status update failed: %w", err)
	}
	defer resp.Body.Close()

	var result models.UpdateStatusResponse
	if err := decodeResponse(resp, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Order, nil
}

// Orders fetches a page of orders, optionally filtered by status
func (c *Client) Orders(ctx context.Context, status string, page, limit int) (*models.OrderListResponse, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/orders"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result models.OrderListResponse
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, http.StatusOK, v)
}

func decodeResponse(resp *http.Response, wantStatus int, v interface{}) error {
	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Err != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Err)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
