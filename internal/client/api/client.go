// Package api implements the HTTP client for the PostMe backend. All
// requests carry the access key header; transport-level failures and
// HTTP status codes are mapped onto shared sentinel errors so callers
// can react without knowing about HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/postmeapp/postme/internal/client/models"
	"github.com/postmeapp/postme/internal/common"
)

// Client talks to the PostMe backend over HTTP.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL and access key.
func NewClient(baseURL, accessKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// serverProfile is the backend's profile representation.
type serverProfile struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// mapError converts a transport or HTTP level failure into one of the
// shared sentinel errors.
func mapError(statusCode int) error {
	switch statusCode {
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	default:
		return common.ErrInternal
	}
}

// do performs a single request and, when out is non-nil, decodes the
// response body's "data" envelope into it.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.AccessKeyHeaderName, c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Ping checks backend reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/v1/ping", nil, nil)
}

// Letters fetches all letters addressed to userID, newest first.
func (c *Client) Letters(ctx context.Context, userID string) ([]models.Letter, error) {
	var letters []models.Letter
	path := "/api/v1/letters?to=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &letters); err != nil {
		return nil, err
	}
	return letters, nil
}

// SaveLetter stores a letter on the backend.
func (c *Client) SaveLetter(ctx context.Context, letter *models.Letter) error {
	return c.do(ctx, http.MethodPost, "/api/v1/letters", letter, nil)
}

// MarkRead flags a letter as read.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/api/v1/letters/"+url.PathEscape(id)+"/read", nil, nil)
}

// DeleteLetter removes a letter.
func (c *Client) DeleteLetter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/letters/"+url.PathEscape(id), nil, nil)
}

// GetProfile fetches the profile for a username. Returns common.ErrNotFound
// when no such profile exists.
func (c *Client) GetProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	var sp serverProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/profiles/"+url.PathEscape(username), nil, &sp); err != nil {
		return nil, err
	}
	return &models.UserProfile{UserID: sp.Username, Name: sp.Username, Avatar: sp.Avatar}, nil
}

// CreateProfile registers a profile on the backend.
func (c *Client) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	sp := serverProfile{Username: profile.UserID, Avatar: profile.Avatar}
	return c.do(ctx, http.MethodPost, "/api/v1/profiles", sp, nil)
}
