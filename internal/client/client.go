// Package client is the Go data-access client for the siteproof API. Reads
// are cached per key and re-validated against the shared schema; successful
// mutations invalidate the affected keys. Nothing is retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL  string
	http     *http.Client
	cache    Cache
	limiter  *rate.Limiter
	notifier Notifier
	log      logrus.FieldLogger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache replaces the default in-memory cache.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithRateLimit paces outgoing requests. Each request waits for a token,
// giving up when its context ends.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		cache:    NewMemoryCache(),
		notifier: nopNotifier{},
		log:      discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// send performs one request and returns the raw body of a 2xx response.
// Failures become *APIError with fallback as the generic message.
func (c *Client) send(ctx context.Context, method, path string, body any, fallback string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data, fallback)
	}
	return data, nil
}

// get serves a read from the cache when possible. check runs on the decoded
// value and must pass before anything is cached.
func (c *Client) get(ctx context.Context, key, path, fallback string, out any, check func() error) error {
	if data, ok := c.cacheGet(ctx, key); ok {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	data, err := c.send(ctx, http.MethodGet, path, nil, fallback)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if err := check(); err != nil {
		return fmt.Errorf("invalid response from %s: %w", path, err)
	}

	if err := c.cache.Set(ctx, key, data); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
	return nil
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache read failed")
		return nil, false
	}
	return data, ok
}

// invalidate drops every cached key under the given prefixes.
func (c *Client) invalidate(ctx context.Context, prefixes ...string) {
	for _, p := range prefixes {
		if err := c.cache.DeletePrefix(ctx, p); err != nil {
			c.log.WithError(err).WithField("prefix", p).Warn("cache invalidation failed")
		}
	}
}

// fail reports err to the notifier and returns it unchanged.
func (c *Client) fail(err error) error {
	c.notifier.Error("Error", err.Error())
	return err
}
