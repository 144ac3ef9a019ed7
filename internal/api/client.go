// Package api is the REST client for the remote user/expense gateway.
//
// The gateway is a plain JSON CRUD backend: no auth tokens, no server-side
// validation beyond existence checks. The client's one normalization rule is
// that "not found" on a list endpoint means an empty collection, never an
// error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/frahmantamala/fintrack/internal"
	"github.com/frahmantamala/fintrack/internal/expense"
	"github.com/frahmantamala/fintrack/internal/user"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Compile-time wiring: the client is the Gateway both domains consume.
var (
	_ expense.Gateway = (*Client)(nil)
	_ user.Gateway    = (*Client)(nil)
)

func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// APIError is a non-2xx gateway response.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned status %d for %s %s", e.StatusCode, e.Method, e.Path)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ----------------- users -----------------

func (c *Client) CreateUser(ctx context.Context, rec *user.Record) (*user.Record, error) {
	var created user.Record
	if err := c.do(ctx, http.MethodPost, "/users", nil, rec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindUsersByUsername lists the users matching a username. A 404 is an empty
// result, not a failure.
func (c *Client) FindUsersByUsername(ctx context.Context, username string) ([]user.Record, error) {
	query := url.Values{"username": {username}}

	var records []user.Record
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &records); err != nil {
		if isNotFound(err) {
			return []user.Record{}, nil
		}
		return nil, err
	}
	if records == nil {
		records = []user.Record{}
	}
	return records, nil
}

// ----------------- expenses -----------------

func (c *Client) CreateExpense(ctx context.Context, e *expense.Expense) (*expense.Expense, error) {
	var created expense.Expense
	if err := c.do(ctx, http.MethodPost, "/expenses", nil, e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListExpenses fetches the records owned by userID. A 404 is an empty
// collection.
func (c *Client) ListExpenses(ctx context.Context, userID string) ([]expense.Expense, error) {
	query := url.Values{"userId": {userID}}

	var expenses []expense.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", query, nil, &expenses); err != nil {
		if isNotFound(err) {
			return []expense.Expense{}, nil
		}
		return nil, err
	}
	if expenses == nil {
		expenses = []expense.Expense{}
	}
	return expenses, nil
}

func (c *Client) GetExpense(ctx context.Context, id string) (*expense.Expense, error) {
	var e expense.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses/"+url.PathEscape(id), nil, nil, &e); err != nil {
		if isNotFound(err) {
			return nil, internal.ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, nil, nil)
	if isNotFound(err) {
		return internal.ErrExpenseNotFound
	}
	return err
}

// ----------------- transport -----------------

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gateway request failed", "method", method, "path", path, "error", err)
		return internal.NewGatewayError("gateway unreachable", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("gateway request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Method: method, Path: path}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return internal.NewGatewayError("failed to decode gateway response", err)
	}
	return nil
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.NotFound()
}
