package ndbc

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/couchcryptid/ferry-risk-service/internal/observability"
)

const samplePage = "<html><body><pre>Nantucket Sound\nTODAY\nE winds 10 kt.</pre></body></html>"

func testClient() *Client {
	return NewClient(5*time.Second, 0, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/Forecasts/FZUS51.KBOX.html", r.URL.Path)
		assert.Contains(t, r.Header.Get("User-Agent"), "ferry-risk-service")
		_, _ = io.WriteString(w, samplePage)
	}))
	defer srv.Close()

	doc, err := testClient().Fetch(context.Background(), srv.URL+"/data/Forecasts/FZUS51.KBOX.html")
	require.NoError(t, err)
	assert.Equal(t, samplePage, doc)
}

func TestClient_Fetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestClient_Fetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, strings.Repeat("x", maxDocumentBytes+10))
	}))
	defer srv.Close()

	_, err := testClient().Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrDocumentTooLarge)
}

func TestClient_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(50*time.Millisecond, 0, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := c.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestClient_Fetch_CanceledWhileRateLimited(t *testing.T) {
	c := testClient()
	c.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, c.limiter.Allow(), "drain the single token")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, "http://127.0.0.1:1/never-called")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestNewLimiter(t *testing.T) {
	assert.Equal(t, rate.Inf, newLimiter(0).Limit())
	assert.Equal(t, rate.Inf, newLimiter(-1).Limit())

	l := newLimiter(0.5)
	assert.Equal(t, rate.Limit(0.5), l.Limit())
	assert.Equal(t, 1, l.Burst())

	assert.Equal(t, 3, newLimiter(2.5).Burst())
}
