package nasa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
	"github.com/sony/gobreaker"
)

// FetchError reports a failed feed request: either the endpoint was
// unreachable (Err set) or it answered with a non-2xx status.
type FetchError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("neo feed request: %v", e.Err)
	}
	return fmt.Sprintf("neo feed API error: status %d: %s", e.StatusCode, e.Body)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// retryableStatusError marks responses worth retrying (rate limits and
// server-side failures).
type retryableStatusError struct {
	status int
}

func (e *retryableStatusError) Error() string {
	return fmt.Sprintf("retryable status %d", e.status)
}

// Client fetches close-approach feeds from the NASA NeoWs API. It
// implements pipeline.FeedFetcher.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	logger     *slog.Logger

	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewClient creates a NeoWs feed client with retries and a circuit breaker
// around the upstream API.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "neo-feed",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:         apiKey,
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: timeout},
		circuit:        cb,
		logger:         logger,
		maxRetries:     3,
		initialBackoff: 500 * time.Millisecond,
		maxBackoff:     5 * time.Second,
	}
}

// FetchFeed retrieves the raw feed for the given close-approach window.
// The pipeline aborts a cycle on error; no partial feed is returned.
func (c *Client) FetchFeed(ctx context.Context, window domain.FeedWindow) (domain.RawFeed, error) {
	params := url.Values{
		"start_date": {window.Start.Format("2006-01-02")},
		"end_date":   {window.End.Format("2006-01-02")},
		"api_key":    {c.apiKey},
	}

	resp, err := c.doRequest(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return domain.RawFeed{}, err
	}
	defer resp.Body.Close()

	var feed domain.RawFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return domain.RawFeed{}, fmt.Errorf("decode feed: %w", err)
	}
	return feed, nil
}

// doRequest executes the GET with exponential backoff around transient
// failures; the circuit breaker sheds load during sustained outages.
// Non-retryable statuses surface immediately as a *FetchError.
func (c *Client) doRequest(ctx context.Context, fullURL string) (*http.Response, error) {
	backoff := c.initialBackoff

	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return nil, &FetchError{Err: ctx.Err()}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		result, err := c.circuit.Execute(func() (any, error) {
			resp, execErr := c.httpClient.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				drain(resp)
				return nil, &retryableStatusError{status: resp.StatusCode}
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				resp.Body.Close()
				return nil, &FetchError{StatusCode: resp.StatusCode, Body: string(body)}
			}
			return resp, nil
		})
		if err == nil {
			return result.(*http.Response), nil
		}

		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return nil, fetchErr
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &FetchError{Err: err}
		}
		if attempt >= c.maxRetries {
			return nil, &FetchError{Err: err}
		}

		c.logger.Warn("feed request failed, retrying",
			"attempt", attempt+1,
			"backoff", backoff,
			"error", err,
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &FetchError{Err: ctx.Err()}
		case <-timer.C:
		}

		backoff *= 2
		if backoff > c.maxBackoff {
			backoff = c.maxBackoff
		}
	}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
