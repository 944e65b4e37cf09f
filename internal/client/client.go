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

	"github.com/andresuchdata/inventree-web/internal/config"
	"github.com/andresuchdata/inventree-web/internal/endpoints"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// tokenType is the authorization scheme the backend expects for API tokens.
const tokenType = "Token"

// Client performs JSON requests against the InvenTree REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New validates cfg and builds a client. When a token is configured every
// request carries an "Authorization: Token <value>" header.
func New(cfg config.ClientConfig) (*Client, error) {
	rawBase := strings.TrimSpace(cfg.BaseURL)
	if rawBase == "" {
		return nil, errors.New("inventree base url is required")
	}

	parsed, err := url.Parse(rawBase)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", rawBase, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must include scheme and host", rawBase)
	}

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: cfg.Token,
				TokenType:   tokenType,
			}),
			Base: http.DefaultTransport,
		}
	}

	return &Client{
		baseURL: strings.TrimRight(parsed.String(), "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout(),
		},
		logger: log.With().Str("component", "client").Logger(),
	}, nil
}

// BaseURL returns the normalized server root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches endpoint e (optionally a single pk) and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, e endpoints.Endpoint, pk string, out any) error {
	path := endpoints.URL(e, pk)
	if path == "" {
		return fmt.Errorf("unknown endpoint %q", e)
	}
	return c.GetPath(ctx, path, out)
}

// GetPath fetches a server-rooted path and decodes the JSON body into out.
func (c *Client) GetPath(ctx context.Context, path string, out any) error {
	target := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{
			Method:     req.Method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", target, err)
	}
	return nil
}
