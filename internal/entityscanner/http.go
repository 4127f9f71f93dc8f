package entityscanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/job-normalizer/internal/enrich"
)

const defaultTimeout = 10 * time.Second

// Client is an HTTP client for the NER sidecar. Scan calls are rate limited
// so a large batch cannot overwhelm the sidecar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// scanRequest is the request body for POST /entities.
type scanRequest struct {
	Text string `json:"text"`
}

// scanResponse is the response body from /entities.
type scanResponse struct {
	Entities []enrich.Entity `json:"entities"`
}

// NewClient creates a sidecar client. A zero timeout falls back to the
// default; maxRPS at or below zero disables rate limiting.
func NewClient(baseURL string, timeout time.Duration, maxRPS int) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	burst := 0
	if maxRPS > 0 {
		limit = rate.Limit(maxRPS)
		burst = maxRPS
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// Scan sends text to the sidecar and returns the recognized entity spans.
func (c *Client) Scan(ctx context.Context, text string) ([]enrich.Entity, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	body, err := json.Marshal(&scanRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/entities", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scanner service returned %d", resp.StatusCode)
	}

	var result scanResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	return result.Entities, nil
}

// Health checks whether the sidecar is up. Unreachability wraps
// ErrUnavailable so callers can select the Nop scanner.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unhealthy status %d", ErrUnavailable, resp.StatusCode)
	}

	return nil
}
