// Package api is a thin JSON-over-HTTP client for the account
// aggregation service: provider passthrough endpoints under /accounts,
// the cached mirror under /db, and LLC ledger persistence under /llc.
package api

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

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// TokenSource supplies the bearer token for authenticated requests.
// An empty token means requests go out unauthenticated; rejecting them
// is the server's job, not this client's.
type TokenSource interface {
	Token() string
}

// RequestError is returned for any non-2xx response.
type RequestError struct {
	Status   int
	Endpoint string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s returned %d", e.Endpoint, e.Status)
}

// Client talks to the aggregation API. It performs no retries; retry
// policy belongs to callers.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// NewClient creates a Client for the given base URL, e.g.
// "https://example.com/api".
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
}

// ListAccounts lists the remote accounts visible to the credential.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.get(ctx, "/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetLiveBalances fetches balances straight from the upstream provider.
// As a side effect the server refreshes its local mirror.
func (c *Client) GetLiveBalances(ctx context.Context, accountID string) (model.Balance, error) {
	var b model.Balance
	err := c.get(ctx, "/accounts/"+accountID+"/balances", nil, &b)
	return b, err
}

// GetAccountDetails returns the provider's account detail payload
// untouched.
func (c *Client) GetAccountDetails(ctx context.Context, accountID string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.get(ctx, "/accounts/"+accountID+"/details", nil, &raw)
	return raw, err
}

// ListLiveTransactions fetches recent transactions from the upstream
// provider, refreshing the mirror as a side effect.
func (c *Client) ListLiveTransactions(ctx context.Context, accountID string, count int) (json.RawMessage, error) {
	q := url.Values{"count": {strconv.Itoa(count)}}
	var raw json.RawMessage
	err := c.get(ctx, "/accounts/"+accountID+"/transactions", q, &raw)
	return raw, err
}

// GetCachedBalances reads balances from the local mirror.
func (c *Client) GetCachedBalances(ctx context.Context, accountID string) (model.Balance, error) {
	var b model.Balance
	err := c.get(ctx, "/db/accounts/"+accountID+"/balances", nil, &b)
	return b, err
}

// ListCachedTransactions reads up to limit transactions from the local
// mirror.
func (c *Client) ListCachedTransactions(ctx context.Context, accountID string, limit int) ([]CachedTransaction, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var txs []CachedTransaction
	if err := c.get(ctx, "/db/accounts/"+accountID+"/transactions", q, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ListPayees lists Zelle payees for an account.
func (c *Client) ListPayees(ctx context.Context, accountID string) ([]Payee, error) {
	var payees []Payee
	if err := c.get(ctx, "/accounts/"+accountID+"/payments/zelle/payees", nil, &payees); err != nil {
		return nil, err
	}
	return payees, nil
}

// CreatePayee registers a new Zelle payee.
func (c *Client) CreatePayee(ctx context.Context, accountID string, payee Payee) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.post(ctx, "/accounts/"+accountID+"/payments/zelle/payees", payee, &raw)
	return raw, err
}

// CreatePayment sends a Zelle payment from an account.
func (c *Client) CreatePayment(ctx context.Context, accountID string, payment Payment) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.post(ctx, "/accounts/"+accountID+"/payments/zelle", payment, &raw)
	return raw, err
}

// LoadLedgerAccounts fetches the server-side state of every stored LLC
// ledger account.
func (c *Client) LoadLedgerAccounts(ctx context.Context) ([]LedgerAccountRecord, error) {
	var records []LedgerAccountRecord
	if err := c.get(ctx, "/llc/accounts", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveLedgerAccount replaces one ledger account's server-side state
// wholesale.
func (c *Client) SaveLedgerAccount(ctx context.Context, req SaveLedgerAccountRequest) error {
	return c.post(ctx, "/llc/accounts", req, nil)
}

// LoadRent fetches the rent record for a "YYYY-MM" month key.
func (c *Client) LoadRent(ctx context.Context, monthKey string) (RentRecord, error) {
	var rec RentRecord
	err := c.get(ctx, "/llc/rent/"+monthKey, nil, &rec)
	return rec, err
}

// SaveRent replaces the rent record for a month.
func (c *Client) SaveRent(ctx context.Context, monthKey string, req SaveRentRequest) error {
	return c.post(ctx, "/llc/rent/"+monthKey, req, nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	addr := c.baseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling %s body: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &RequestError{Status: resp.StatusCode, Endpoint: path}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
