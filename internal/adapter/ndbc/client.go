package ndbc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/couchcryptid/ferry-risk-service/internal/observability"
)

const (
	userAgent = "ferry-risk-service/1.0 (+https://github.com/couchcryptid/ferry-risk-service)"

	// maxDocumentBytes caps a forecast page. Real CWF pages are tens of KB.
	maxDocumentBytes = 4 << 20
)

// ErrDocumentTooLarge is returned when the forecast page exceeds maxDocumentBytes.
var ErrDocumentTooLarge = errors.New("forecast document too large")

// Client implements domain.DocumentFetcher over HTTP. Outbound requests are
// rate limited so a burst of API calls cannot hammer the NDBC mirror.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a forecast document client. perSecond <= 0 disables
// rate limiting.
func NewClient(timeout time.Duration, perSecond float64, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    newLimiter(perSecond),
		metrics:    metrics,
		logger:     logger,
	}
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), int(math.Max(1, math.Ceil(perSecond))))
}

// Fetch retrieves the raw forecast page at url.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		c.metrics.ForecastFetches.WithLabelValues("error").Inc()
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := c.doRequest(ctx, url)
	if err != nil {
		c.metrics.ForecastFetches.WithLabelValues("error").Inc()
		c.logger.Warn("forecast fetch failed", "url", url, "error", err)
		return "", err
	}

	c.metrics.ForecastFetches.WithLabelValues("success").Inc()
	c.logger.Debug("forecast fetched", "url", url, "bytes", len(body))
	return body, nil
}

func (c *Client) doRequest(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html, text/plain")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ForecastFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("forecast server error: status %d: %s", resp.StatusCode, snippet)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return "", fmt.Errorf("read forecast body: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return "", ErrDocumentTooLarge
	}
	return string(data), nil
}
