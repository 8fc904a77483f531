package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.scryfall.com"

	// Scryfall asks clients to stay under 10 requests per second.
	rateLimitDelay = 100 * time.Millisecond

	defaultTimeout  = 8 * time.Second
	defaultMaxTries = 2
	retryBackoff    = 250 * time.Millisecond

	defaultUserAgent = "rf-companion/1.0 (+https://github.com/romanticformat/companion)"
)

// Client is a Scryfall API client with process-wide rate limiting.
// All endpoints funnel through one rate.Limiter, so concurrent workers
// share the same request budget.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
	maxTries    int
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	MaxTries  int
	UserAgent string
}

// NewClient creates a new Scryfall API client.
func NewClient(options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = defaultBaseURL
	}
	if options.Timeout == 0 {
		options.Timeout = defaultTimeout
	}
	if options.MaxTries == 0 {
		options.MaxTries = defaultMaxTries
	}
	if options.UserAgent == "" {
		options.UserAgent = defaultUserAgent
	}

	return &Client{
		baseURL: options.BaseURL,
		httpClient: &http.Client{
			Timeout: options.Timeout,
		},
		// 1 request per 100ms = 10 req/sec
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		userAgent:   options.UserAgent,
		maxTries:    options.MaxTries,
	}
}

// NamedCard resolves a free-text name to the best-match card via the
// fuzzy named lookup.
func (c *Client) NamedCard(ctx context.Context, name string) (*Card, error) {
	u := fmt.Sprintf("%s/cards/named?fuzzy=%s", c.baseURL, url.QueryEscape(name))

	var card Card
	if err := c.doRequest(ctx, u, &card); err != nil {
		return nil, fmt.Errorf("named lookup for %q: %w", name, err)
	}

	return &card, nil
}

// Autocomplete returns candidate full names for a partial name.
// Queries shorter than two characters are answered locally with an
// empty catalog; Scryfall would reject them anyway.
func (c *Client) Autocomplete(ctx context.Context, partial string) (*Catalog, error) {
	if len(strings.TrimSpace(partial)) < 2 {
		return &Catalog{Object: "catalog", Data: []string{}}, nil
	}

	u := fmt.Sprintf("%s/cards/autocomplete?q=%s", c.baseURL, url.QueryEscape(partial))

	var catalog Catalog
	if err := c.doRequest(ctx, u, &catalog); err != nil {
		return nil, fmt.Errorf("autocomplete for %q: %w", partial, err)
	}

	return &catalog, nil
}

// SearchCards runs a full-text card search with a raw Scryfall query.
func (c *Client) SearchCards(ctx context.Context, query string) (*SearchResult, error) {
	u := fmt.Sprintf("%s/cards/search?q=%s", c.baseURL, url.QueryEscape(query))

	var result SearchResult
	if err := c.doRequest(ctx, u, &result); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	return &result, nil
}

// Page fetches one result page by its absolute URL, as handed out in
// prints_search_uri and next_page fields.
func (c *Client) Page(ctx context.Context, pageURL string) (*SearchResult, error) {
	var result SearchResult
	if err := c.doRequest(ctx, pageURL, &result); err != nil {
		return nil, fmt.Errorf("page %s: %w", pageURL, err)
	}

	return &result, nil
}

// doRequest performs a GET with rate limiting and bounded retries.
// Each attempt consumes one rate-limiter slot.
func (c *Client) doRequest(ctx context.Context, u string, result interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxTries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json;q=0.9,*/*;q=0.8")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			if attempt < c.maxTries {
				time.Sleep(retryBackoff * time.Duration(attempt))
				continue
			}
			return lastErr
		}

		done, err := c.handleResponse(resp, u, result)
		if done {
			return err
		}

		// Retryable status.
		lastErr = err
		if attempt < c.maxTries {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
	}

	return fmt.Errorf("max tries exceeded: %w", lastErr)
}

// handleResponse consumes one HTTP response. done=false means the
// status is retryable and the caller should try again.
func (c *Client) handleResponse(resp *http.Response, u string, result interface{}) (done bool, err error) {
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return true, fmt.Errorf("read response body: %w", err)
		}
		if err := json.Unmarshal(body, result); err != nil {
			return true, fmt.Errorf("parse JSON response: %w", err)
		}
		return true, nil

	case resp.StatusCode == http.StatusNotFound:
		return true, &NotFoundError{URL: u}

	case resp.StatusCode == http.StatusTooManyRequests:
		// Honor Retry-After if the server sends one, then let the
		// retry loop take over.
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if d, err := time.ParseDuration(retryAfter + "s"); err == nil {
				time.Sleep(d)
			}
		}
		return false, fmt.Errorf("rate limited (HTTP 429)")

	case resp.StatusCode >= 500:
		return false, fmt.Errorf("server error (HTTP %d)", resp.StatusCode)

	default:
		body, _ := io.ReadAll(resp.Body)

		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Details != "" {
			return true, &apiErr
		}

		return true, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}
}
