// Package webclient is the outbound HTTP client shared by every external
// source: client-side rate limiting, retries on 429/5xx and context-aware
// backoff.
package webclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trip_planner/internal/adapters/observability"
)

const (
	maxAttempts = 4
	maxBody     = 8 << 20
	userAgent   = "Mozilla/5.0 (X11; Linux x86_64) trip-planner/1.0"
)

var (
	ErrNotFound     = errors.New("webclient: not found")
	ErrUnauthorized = errors.New("webclient: unauthorized")
	ErrForbidden    = errors.New("webclient: forbidden")
)

// StatusError is a non-retryable response outside the handled set.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string { return fmt.Sprintf("bad status %d: %s", e.Code, e.Body) }

type Options struct {
	Timeout time.Duration
	RPS     int
	Headers map[string]string
}

type Client struct {
	service string
	hc      *http.Client
	rl      *rate.Limiter
	headers map[string]string
	backoff func(i int) time.Duration
}

// New builds a client labelled service in metrics. RPS <= 0 means 5.
func New(service string, o Options) *Client {
	if o.RPS <= 0 {
		o.RPS = 5
	}
	if o.Timeout <= 0 {
		o.Timeout = 20 * time.Second
	}
	return &Client{
		service: service,
		hc:      &http.Client{Timeout: o.Timeout},
		rl:      rate.NewLimiter(rate.Limit(o.RPS), o.RPS),
		headers: o.Headers,
		backoff: backoff,
	}
}

// WithBackoff replaces the retry delay schedule. Tests use it to avoid
// real sleeps.
func (c *Client) WithBackoff(f func(i int) time.Duration) *Client {
	c.backoff = f
	return c
}

func (c *Client) GetJSON(ctx context.Context, u string, out any) error {
	b, err := c.Do(ctx, http.MethodGet, u, nil, "application/json")
	if err != nil {
		return err
	}
	return decode(b, out)
}

func (c *Client) PostJSON(ctx context.Context, u string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	b, err := c.Do(ctx, http.MethodPost, u, body, "application/json")
	if err != nil {
		return err
	}
	return decode(b, out)
}

// FetchPage returns a raw HTML body.
func (c *Client) FetchPage(ctx context.Context, u string) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, u, nil, "text/html,application/xhtml+xml")
}

func decode(b []byte, out any) error {
	if out == nil || len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, out)
}

// Do performs one request with rate limiting and up to four attempts.
// Retries on network errors, 429 and transient 5xx, honoring Retry-After.
func (c *Client) Do(ctx context.Context, method, u string, body []byte, accept string) ([]byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	endpoint := endpointOf(u)

	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, rd)
		if err != nil {
			return nil, err
		}
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", accept)
		req.Header.Set("User-Agent", userAgent)

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(c.service, endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if i < maxAttempts-1 && sleepCtx(ctx, c.backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr
		}
		observability.ObserveExternal(c.service, endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
			resp.Body.Close()
			return b, err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, nil

		case http.StatusNotFound:
			resp.Body.Close()
			return nil, ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return nil, ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return nil, ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = c.backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < maxAttempts-1 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
		}
	}
	return nil, lastErr
}

// endpointOf keeps metric label cardinality bounded: host and path only.
func endpointOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "unknown"
	}
	return u.Host + u.Path
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
