package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrUnavailable marks a target that stayed unreachable after all retry
// attempts. Callers skip the zone for this cycle; it is never fatal for the
// whole run.
var ErrUnavailable = errors.New("target unavailable")

const defaultUserAgent = "PortStatusMonitor/1.0"

// Options tune retry and politeness behavior. Zero values fall back to the
// defaults used against NAVCEN: 1s between requests, 3 attempts, 2^attempt
// seconds of backoff, retry on 429/5xx.
type Options struct {
	RateLimit      time.Duration
	Timeout        time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
	RetryableCodes []int
	UserAgent      string
}

func (o Options) withDefaults() Options {
	if o.RateLimit <= 0 {
		o.RateLimit = time.Second
	}
	if o.Timeout <= 0 {
		o.Timeout = 20 * time.Second
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 3
	}
	if o.BackoffBase <= 0 {
		o.BackoffBase = 2 * time.Second
	}
	if len(o.RetryableCodes) == 0 {
		o.RetryableCodes = []int{http.StatusTooManyRequests, 500, 502, 503, 504}
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	return o
}

// Client is a politeness-limited, retrying HTTP fetcher. The inter-request
// delay applies globally across all calls, not per target; Get is not meant
// to be called concurrently.
type Client struct {
	http      *http.Client
	clock     clockwork.Clock
	opts      Options
	retryable map[int]struct{}
	logger    *slog.Logger

	lastRequest time.Time
}

// NewClient wires an HTTP client and a clock; both may be nil for defaults.
func NewClient(httpClient *http.Client, clock clockwork.Clock, opts Options, logger *slog.Logger) *Client {
	opts = opts.withDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	retryable := make(map[int]struct{}, len(opts.RetryableCodes))
	for _, code := range opts.RetryableCodes {
		retryable[code] = struct{}{}
	}

	return &Client{
		http:      httpClient,
		clock:     clock,
		opts:      opts,
		retryable: retryable,
		logger:    logger,
	}
}

// Get fetches the URL with retry and backoff. Retryable responses and
// timeouts wait backoffBase^attempt before the next try; other client errors
// fail immediately. Exhausting retries returns an ErrUnavailable-wrapped
// error rather than panicking up the stack.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	c.throttle(ctx)

	for attempt := 1; attempt <= c.opts.MaxRetries; attempt++ {
		body, retry, err := c.tryOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retry {
			return nil, err
		}

		c.warn("transient fetch failure", "url", url, "attempt", attempt, "max", c.opts.MaxRetries, "error", err)

		if attempt == c.opts.MaxRetries {
			return nil, fmt.Errorf("%w: %s after %d attempts: %v", ErrUnavailable, url, attempt, err)
		}
		if sleepErr := c.sleep(ctx, c.backoff(attempt)); sleepErr != nil {
			return nil, sleepErr
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnavailable, url)
}

// tryOnce issues one request; the second return value reports whether the
// failure is retryable.
func (c *Client) tryOnce(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		// Timeouts and connection resets are transient.
		return nil, true, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	c.lastRequest = c.clock.Now()

	if _, ok := c.retryable[resp.StatusCode]; ok {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("retryable status %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}
	return body, false, nil
}

// throttle enforces the global minimum delay since the previous request.
func (c *Client) throttle(ctx context.Context) {
	if c.lastRequest.IsZero() {
		return
	}
	elapsed := c.clock.Since(c.lastRequest)
	if elapsed < c.opts.RateLimit {
		_ = c.sleep(ctx, c.opts.RateLimit-elapsed)
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	secs := math.Pow(c.opts.BackoffBase.Seconds(), float64(attempt))
	return time.Duration(secs * float64(time.Second))
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	timer := c.clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
