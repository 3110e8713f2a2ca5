// Package api implements the HTTP client for the linkkeeper backend.
// The session token arrives as a cookie on register/login; a cookie jar
// attached to the underlying http.Client carries it on later requests.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Favorite is a saved link as returned by the backend.
type Favorite struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	URL         string    `json:"url"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Tab is a custom navigation tab as returned by the backend.
type Tab struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIError carries the backend's error message and HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the linkkeeper HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL. The cookie jar keeps the
// session cookie between calls, so a successful Register or Login
// authenticates every later request.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar error: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			msg = payload.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode error: %w", err)
		}
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and stores the session cookie on success.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", credentials{email, password}, nil)
}

// Login authenticates and stores the session cookie on success.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/login", credentials{email, password}, nil)
}

// Logout asks the backend to clear the session cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// CreateFavorite saves a link for the logged-in user.
func (c *Client) CreateFavorite(ctx context.Context, platform, url, title, description string) (*Favorite, error) {
	req := struct {
		Platform    string `json:"platform"`
		URL         string `json:"url"`
		Title       string `json:"title,omitempty"`
		Description string `json:"description,omitempty"`
	}{platform, url, title, description}

	var f Favorite
	if err := c.do(ctx, http.MethodPost, "/favorites", req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFavorites returns the logged-in user's saved links, newest first.
func (c *Client) ListFavorites(ctx context.Context) ([]Favorite, error) {
	var list []Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateTab adds a custom tab for the logged-in user.
func (c *Client) CreateTab(ctx context.Context, key, label string) (*Tab, error) {
	req := struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}{key, label}

	var t Tab
	if err := c.do(ctx, http.MethodPost, "/user-tabs", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTabs returns the logged-in user's custom tabs in creation order.
func (c *Client) ListTabs(ctx context.Context) ([]Tab, error) {
	var list []Tab
	if err := c.do(ctx, http.MethodGet, "/user-tabs", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Ping checks server reachability via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: resp.Status}
	}
	return nil
}
