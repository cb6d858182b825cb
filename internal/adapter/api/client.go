package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/polkiloo/expense-tracker/internal/server/http/dto"
)

// ErrUnauthorized is returned when the server rejects the access token.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a non-success reply carrying the server message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("expense api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("expense api: %d %s", e.StatusCode, e.Message)
}

// Unwrap maps 401 replies onto ErrUnauthorized.
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// TooManyRequestsError represents rate limiting signal from the server.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// HTTPClient talks to the expense tracker REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	token      string
}

// NewHTTPClient creates an API client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("api url must be absolute")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SetToken sets the bearer token sent with authenticated requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// Register creates an account.
func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (string, error) {
	var out dto.MessageResponse
	err := c.do(ctx, http.MethodPost, "/user/register", dto.RegisterRequest{Username: username, Email: email, Password: password}, &out)
	return out.Message, err
}

// Login exchanges credentials for an access token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var out dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/user/login", dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// CreateExpense adds an expense for the token owner.
func (c *HTTPClient) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseMutationResponse, error) {
	var out dto.ExpenseMutationResponse
	if err := c.do(ctx, http.MethodPost, "/expenses/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListExpenses returns every expense of the token owner.
func (c *HTTPClient) ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error) {
	var out []dto.ExpenseResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetExpense fetches one expense.
func (c *HTTPClient) GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	var out dto.ExpenseResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExpense applies a partial update.
func (c *HTTPClient) UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseMutationResponse, error) {
	var out dto.ExpenseMutationResponse
	if err := c.do(ctx, http.MethodPut, "/expenses/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExpense removes an expense.
func (c *HTTPClient) DeleteExpense(ctx context.Context, id string) (string, error) {
	var out dto.MessageResponse
	err := c.do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, &out)
	return out.Message, err
}

// Stats returns the spending summary of the token owner.
func (c *HTTPClient) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) do(ctx context.Context, method, route string, in, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, route)
	if len(route) > 1 && route[len(route)-1] == '/' {
		endpoint.Path += "/"
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		var msg dto.MessageResponse
		_ = json.Unmarshal(data, &msg)
		c.logger.Debug("api request failed", slog.String("method", method), slog.String("path", endpoint.Path), slog.Int("status", resp.StatusCode))
		return &Error{StatusCode: resp.StatusCode, Message: msg.Message}
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return time.Minute
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return time.Minute
}
