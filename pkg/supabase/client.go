// Package supabase is a thin PostgREST client for the Supabase tables
// backing SkanOS. Repositories build filter maps (PostgREST operator
// syntax, e.g. "eq.<id>", "in.(a,b)") and decode the returned JSON.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client talks to a Supabase project's REST and auth endpoints using the
// service key. Row scoping is enforced by explicit user_id filters on
// every query.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) newRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Query executes a filtered select on a table
func (c *Client) Query(ctx context.Context, table string, filters map[string]any) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/rest/v1/%s", c.URL, table), nil)
	if err != nil {
		return nil, err
	}
	applyFilters(req, filters)

	return c.do(req)
}

// Insert inserts one record or a batch into a table
func (c *Client) Insert(ctx context.Context, table string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("%s/rest/v1/%s", c.URL, table), payload)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

// UpdateWhere patches all records matching the filters
func (c *Client) UpdateWhere(ctx context.Context, table string, filters map[string]any, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPatch, fmt.Sprintf("%s/rest/v1/%s", c.URL, table), payload)
	if err != nil {
		return nil, err
	}
	applyFilters(req, filters)

	return c.do(req)
}

// DeleteWhere removes all records matching the filters. Event rows are
// soft-deleted via UpdateWhere instead; this exists for inbox-style
// tables like quick notes.
func (c *Client) DeleteWhere(ctx context.Context, table string, filters map[string]any) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/rest/v1/%s", c.URL, table), nil)
	if err != nil {
		return err
	}
	applyFilters(req, filters)

	_, err = c.do(req)
	return err
}

func applyFilters(req *http.Request, filters map[string]any) {
	q := req.URL.Query()
	for key, value := range filters {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	req.URL.RawQuery = q.Encode()
}

// User represents an authenticated Supabase user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// VerifyToken resolves a user JWT against the Supabase auth endpoint
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/auth/v1/user", c.URL), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}
