package client

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vitalwatch/backend/internal/vitals"
	"github.com/vitalwatch/backend/pkg/logger"
)

// TokenSource supplies a fresh bearer token for each outbound request, the
// way the mobile app asks the identity provider for the signed-in user's
// current ID token before every call. A nil source sends no credential.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken adapts a fixed token string into a TokenSource.
type StaticToken string

func (s StaticToken) Token(ctx context.Context) (string, error) { return string(s), nil }

const defaultTimeout = 10 * time.Second

// Client is the app-side data fetcher for the vitals gateway. Calls take a
// context so a superseded fetch is cancelled instead of racing its
// replacement. Failures are logged and returned to the caller; there is no
// automatic retry.
type Client struct {
	http   *resty.Client
	tokens TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	c := &Client{tokens: tokens}
	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if c.tokens == nil {
			return nil
		}
		tok, err := c.tokens.Token(req.Context())
		if err != nil {
			return fmt.Errorf("obtain token: %w", err)
		}
		if tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})
	return c
}

// LatestVitals fetches the most recent readings across all users, newest last.
func (c *Client) LatestVitals(ctx context.Context) ([]vitals.VitalReading, error) {
	var out []vitals.VitalReading
	if err := c.get(ctx, "/vitals", &out); err != nil {
		logger.Errorf("error fetching vitals: %v", err)
		return nil, err
	}
	return out, nil
}

// UserVitals fetches every reading for the given user, sorted newest first
// for presentation.
func (c *Client) UserVitals(ctx context.Context, userID string) ([]vitals.VitalReading, error) {
	var out []vitals.VitalReading
	if err := c.get(ctx, "/vitals/"+url.PathEscape(userID), &out); err != nil {
		logger.Errorf("error fetching user vitals: %v", err)
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp.Time)
	})
	return out, nil
}

// Health probes the gateway liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", &out); err != nil {
		logger.Errorf("error checking API health: %v", err)
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", out.Status)
	}
	return nil
}

type apiError struct {
	Message string `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("%s: %s (status %d)", path, apiErr.Message, resp.StatusCode())
		}
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode())
	}
	return nil
}
