// Package client provides an HTTP DataSource that reads the directory API of
// a running admin console.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"admin_console/internal/console/service"
	"admin_console/internal/profile"
	"admin_console/platform/logger"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("GET %s: status %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GET %s: status %d", e.Path, e.StatusCode)
}

// Client is the HTTP client for the directory API. BaseURL includes the
// API prefix, for example http://localhost:8080/api.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a directory API client. A non-positive timeout uses the default.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) LookupIdentity(ctx context.Context, identityID string) (profile.IdentityLink, error) {
	var out profile.IdentityLink
	err := c.get(ctx, "/users/identities/"+url.PathEscape(identityID), &out)
	return out, err
}

func (c *Client) LookupEmail(ctx context.Context, email string) (profile.EmailLink, error) {
	var out profile.EmailLink
	err := c.get(ctx, "/users/email/"+url.PathEscape(email), &out)
	return out, err
}

func (c *Client) GetUserDetails(ctx context.Context, userID string) (profile.UserDetails, error) {
	var out profile.UserDetails
	err := c.get(ctx, userPath(userID, ""), &out)
	return out, err
}

func (c *Client) GetUserIdentity(ctx context.Context, identityID string) (profile.UserIdentity, error) {
	var out profile.UserIdentity
	err := c.get(ctx, "/users/identity/"+url.PathEscape(identityID), &out)
	return out, err
}

func (c *Client) ListUserProperties(ctx context.Context, userID string) ([]profile.UserProperty, error) {
	var out []profile.UserProperty
	err := c.get(ctx, userPath(userID, "/properties"), &out)
	return out, err
}

func (c *Client) GetPaymentInfo(ctx context.Context, userID string) (profile.PaymentInfo, error) {
	var out profile.PaymentInfo
	err := c.get(ctx, userPath(userID, "/payment-info"), &out)
	return out, err
}

func (c *Client) GetNewsletter(ctx context.Context, userID string) (profile.Newsletter, error) {
	var out profile.Newsletter
	err := c.get(ctx, userPath(userID, "/newsletter"), &out)
	return out, err
}

func (c *Client) ListAddresses(ctx context.Context, userID string) ([]profile.Address, error) {
	var out []profile.Address
	err := c.get(ctx, userPath(userID, "/addresses"), &out)
	return out, err
}

func (c *Client) ListUserAttributes(ctx context.Context, userID string) ([]profile.UserAttribute, error) {
	var out []profile.UserAttribute
	err := c.get(ctx, userPath(userID, "/attributes"), &out)
	return out, err
}

func (c *Client) ListProperties(ctx context.Context) ([]profile.Property, error) {
	var out []profile.Property
	err := c.get(ctx, "/properties", &out)
	return out, err
}

func (c *Client) ListPropertyGroups(ctx context.Context) ([]profile.PropertyGroup, error) {
	var out []profile.PropertyGroup
	err := c.get(ctx, "/properties/groups", &out)
	return out, err
}

func (c *Client) ListPropertyUsers(ctx context.Context, key string) (profile.PropertyUsers, error) {
	var out profile.PropertyUsers
	err := c.get(ctx, "/properties/"+url.PathEscape(key), &out)
	return out, err
}

// Ping checks that the API answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("health status %q", out.Status)
	}
	return nil
}

func userPath(userID, suffix string) string {
	return "/users/" + url.PathEscape(userID) + suffix
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Debug("directory request failed", "error", err, "url", reqURL)
		}
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{Path: path, StatusCode: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err == nil {
			statusErr.Message = body.Error
		}
		if c.log != nil {
			c.log.Debug("directory upstream error", "status", resp.StatusCode, "url", reqURL)
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

var _ service.DataSource = (*Client)(nil)
