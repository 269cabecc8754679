// Package client is a small Go client for the property API, with per-call
// retries on transport failures and 5xx responses and an optional Redis
// cache for the listing endpoints.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nesymno/property-api/types"
)

const (
	DefaultRetries  = 3
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 5 * time.Minute

	cacheKeyPrefix = "property_api:"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Code)
}

func (e *StatusError) retryable() bool {
	return e.Code >= http.StatusInternalServerError
}

type Client struct {
	baseURL string
	http    *http.Client
	retries int
	timeout time.Duration

	cache    *redis.Client
	cacheTTL time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCache serves Properties and Users from rdb when possible and stores
// fresh responses there for ttl (DefaultCacheTTL when ttl <= 0). Health is
// never cached. Cache errors are logged and treated as misses.
func WithCache(rdb *redis.Client, ttl time.Duration) Option {
	return func(c *Client) {
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		c.cache = rdb
		c.cacheTTL = ttl
	}
}

// WithRetries sets the total number of attempts per call. Values below 1
// are treated as 1.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n < 1 {
			n = 1
		}
		c.retries = n
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		retries: DefaultRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

func (c *Client) Health(ctx context.Context) (*types.HealthResponse, error) {
	var health types.HealthResponse
	if err := c.get(ctx, "health", false, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) Properties(ctx context.Context) ([]types.Property, error) {
	var properties []types.Property
	if err := c.get(ctx, "properties", true, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (c *Client) Users(ctx context.Context) ([]types.User, error) {
	var users []types.User
	if err := c.get(ctx, "users", true, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Ping reports whether the health endpoint answers successfully.
func (c *Client) Ping(ctx context.Context) bool {
	_, err := c.Health(ctx)
	return err == nil
}

func (c *Client) get(ctx context.Context, endpoint string, cacheable bool, out any) error {
	endpoint = strings.Trim(endpoint, "/")
	url := c.baseURL + "/" + endpoint
	useCache := cacheable && c.cache != nil
	key := cacheKeyPrefix + endpoint

	if useCache {
		cached, err := c.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			if jsonErr := json.Unmarshal(cached, out); jsonErr == nil {
				return nil
			}
			log.Printf("client: discarding undecodable cache entry %s", key)
		case !errors.Is(err, redis.Nil):
			log.Printf("client: cache get %s: %v", key, err)
		}
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	if useCache {
		if err := c.cache.Set(ctx, key, body, c.cacheTTL).Err(); err != nil {
			log.Printf("client: cache set %s: %v", key, err)
		}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := c.do(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		log.Printf("client: attempt %d/%d GET %s failed: %v", attempt, c.retries, url, err)

		var se *StatusError
		if errors.As(err, &se) && !se.retryable() {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("GET %s failed after %d attempts: %w", url, c.retries, lastErr)
}

func (c *Client) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Method: http.MethodGet, URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
