// Package plaid is a minimal client for the provider endpoints this service
// uses: link-token creation, public-token exchange and transaction sync.
package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Config struct {
	ClientID string
	Secret   string
	// BaseURL selects the environment, e.g. https://sandbox.plaid.com.
	BaseURL string

	ClientName     string
	WebhookURL     string
	AndroidPackage string
	DaysRequested  int
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from the provider. Its contents are logged
// server-side only and never forwarded to mobile clients.
type APIError struct {
	StatusCode   int
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider error %d: %s (%s)", e.StatusCode, e.ErrorCode, e.ErrorMessage)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if readErr == nil {
			_ = json.Unmarshal(data, apiErr)
		}

		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// CreateLinkToken creates a short-lived token the client uses to open the
// provider's account linking flow for the given user.
func (c *Client) CreateLinkToken(ctx context.Context, userID string) (*LinkToken, error) {
	req := linkTokenCreateRequest{
		ClientID:       c.cfg.ClientID,
		Secret:         c.cfg.Secret,
		ClientName:     c.cfg.ClientName,
		User:           linkTokenUser{ClientUserID: userID},
		Products:       []string{"transactions"},
		Transactions:   linkTransactions{DaysRequested: c.cfg.DaysRequested},
		CountryCodes:   []string{"US"},
		Language:       "en",
		AndroidPackage: c.cfg.AndroidPackage,
		Webhook:        c.cfg.WebhookURL,
	}

	var resp LinkToken
	if err := c.post(ctx, "/link/token/create", req, &resp); err != nil {
		return nil, fmt.Errorf("creating link token: %w", err)
	}

	return &resp, nil
}

// ExchangePublicToken trades the temporary public token from a completed
// linking flow for the durable access credential and item id.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*Item, error) {
	req := exchangeRequest{
		ClientID:    c.cfg.ClientID,
		Secret:      c.cfg.Secret,
		PublicToken: publicToken,
	}

	var resp Item
	if err := c.post(ctx, "/item/public_token/exchange", req, &resp); err != nil {
		return nil, fmt.Errorf("exchanging public token: %w", err)
	}

	return &resp, nil
}

// SyncTransactions fetches one page of the change feed at the given cursor.
// Category enrichment is requested on every call.
func (c *Client) SyncTransactions(ctx context.Context, accessToken string, cursor *string) (*SyncPage, error) {
	req := syncRequest{
		ClientID:    c.cfg.ClientID,
		Secret:      c.cfg.Secret,
		AccessToken: accessToken,
		Cursor:      cursor,
		Options:     syncOptions{IncludePersonalFinanceCategory: true},
	}

	var resp SyncPage
	if err := c.post(ctx, "/transactions/sync", req, &resp); err != nil {
		return nil, fmt.Errorf("syncing transactions: %w", err)
	}

	return &resp, nil
}
