// Package api is the HTTP client for the finledger server. It mirrors the
// server's JSON surface and translates response statuses back into the
// shared sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

type Statement struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	OperationType string          `json:"operation_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Balance struct {
	Statements []Statement     `json:"statements"`
	Balance    decimal.Decimal `json:"balance"`
}

type apiError struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

func (c *Client) ClearAccessToken() {
	c.accessToken = ""
}

// errorForStatus maps a response back into the sentinel taxonomy. A 400 is
// disambiguated by the server's error message; anything unrecognized is
// reported as invalid input.
func errorForStatus(status int, body []byte) error {
	var e apiError
	_ = json.Unmarshal(body, &e)

	switch status {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusBadRequest:
		if e.Error == common.ErrorInsufficientFunds.Error() {
			return common.ErrorInsufficientFunds
		}
		return common.ErrorInvalidInput
	default:
		return common.ErrorInternal
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error performing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return errorForStatus(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/v1/ping", nil, nil)
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	user := &User{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/users", body, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates and stores the returned bearer credential for
// subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	session := &Session{}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/sessions", body, session); err != nil {
		return nil, err
	}
	c.accessToken = session.AccessToken
	return session, nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/profile", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) createStatement(ctx context.Context, path string, amount decimal.Decimal, description string) (*Statement, error) {
	body := map[string]any{"amount": amount, "description": description}
	st := &Statement{}
	if err := c.doJSON(ctx, http.MethodPost, path, body, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (c *Client) Deposit(ctx context.Context, amount decimal.Decimal, description string) (*Statement, error) {
	return c.createStatement(ctx, "/api/v1/statements/deposit", amount, description)
}

func (c *Client) Withdraw(ctx context.Context, amount decimal.Decimal, description string) (*Statement, error) {
	return c.createStatement(ctx, "/api/v1/statements/withdraw", amount, description)
}

func (c *Client) Balance(ctx context.Context) (*Balance, error) {
	balance := &Balance{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/statements/balance", nil, balance); err != nil {
		return nil, err
	}
	return balance, nil
}

func (c *Client) Statement(ctx context.Context, id string) (*Statement, error) {
	st := &Statement{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/statements/"+id, nil, st); err != nil {
		return nil, err
	}
	return st, nil
}
