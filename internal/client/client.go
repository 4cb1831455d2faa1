// Package client talks to the inventory REST API and keeps a canonical
// in-process copy of the item list, the role the browser frontend's App
// container plays. Mutations are confirm-then-commit: local state changes only
// after the backend has acknowledged the write.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/stocktrack/inventory-api/internal/models"
)

// Client is a thin wrapper over the five item endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// itemResult mirrors the {message, item} envelope of mutating endpoints.
type itemResult struct {
	Message string      `json:"message"`
	Item    models.Item `json:"item"`
}

type errorResult struct {
	Error string `json:"error"`
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResult
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			message = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ListItems fetches the full item list.
func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// GetItem fetches one item by id.
func (c *Client) GetItem(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodGet, "/api/items/"+url.PathEscape(id), nil, &item)
	return item, err
}

// CreateItem persists a new item; the id must already be set.
func (c *Client) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var result itemResult
	if err := c.do(ctx, http.MethodPost, "/api/items", item, &result); err != nil {
		return models.Item{}, err
	}
	return result.Item, nil
}

// UpdateItem sends a full-record update for the item's id.
func (c *Client) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var result itemResult
	if err := c.do(ctx, http.MethodPut, "/api/items/"+url.PathEscape(item.ID), item, &result); err != nil {
		return models.Item{}, err
	}
	return result.Item, nil
}

// DeleteItem removes the item with the given id.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/items/"+url.PathEscape(id), nil, nil)
}
