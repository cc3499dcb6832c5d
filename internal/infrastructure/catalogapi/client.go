package catalogapi

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

	"golang.org/x/time/rate"

	"github.com/shoproute/backend/internal/domain"
	"github.com/shoproute/backend/internal/infrastructure/storage"
)

const (
	maxAttempts      = 3
	baseBackoff      = 500 * time.Millisecond
	maxErrorBodySize = 4 << 10
	maxCatalogSize   = 8 << 20
)

// Client fetches the store catalog from a remote catalog service
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a catalog API client. perMinute caps outgoing requests;
// zero or less leaves the client unlimited.
func NewClient(apiKey, baseURL string, perMinute int) *Client {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: rate.NewLimiter(limit, 10), // burst of 10 requests
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[CATALOG] "+format, args...)
	}
}

// exponentialBackoff returns the wait before retrying after the given attempt (1-based)
func exponentialBackoff(attempt int) time.Duration {
	return baseBackoff * time.Duration(1<<(attempt-1))
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ShopRoute/1.0")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	return resp, nil
}

// LoadCatalog downloads the full catalog. It retries transport errors, 429 and 5xx
// responses up to three times; a 404 means the store has no catalog.
func (c *Client) LoadCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	reqURL := c.baseURL + "/v1/catalog"

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, exponentialBackoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		c.debugLog("GET %s (attempt %d)", reqURL, attempt)
		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if ctx.Err() != nil || !errors.Is(err, domain.ErrCatalogAPIFailure) {
				return nil, err
			}
			log.Printf("[CATALOG] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := readLimitedBody(resp.Body, maxErrorBodySize)
			resp.Body.Close()

			log.Printf("[CATALOG] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)

			switch {
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, reqURL)
			case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
				continue
			default:
				return nil, lastErr
			}
		}

		body, err := readLimitedBody(resp.Body, maxCatalogSize)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
			continue
		}

		var records []storage.CatalogRecord
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		c.debugLog("Fetched %d catalog records", len(records))
		return storage.MapToCatalog(records)
	}

	log.Printf("[CATALOG] All retries failed for %s", reqURL)
	return nil, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
