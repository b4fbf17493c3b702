package ndbc

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
	"github.com/couchcryptid/ferry-risk-service/internal/observability"
)

// CachedFetcher wraps a DocumentFetcher with an in-memory LRU cache whose
// entries expire after a TTL. Bulletins are reissued a few times a day, so
// repeated assessments within the TTL reuse the same page.
type CachedFetcher struct {
	inner   domain.DocumentFetcher
	ttl     time.Duration
	cache   *lruCache
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewCachedFetcher creates a cache decorator around a fetcher. A zero ttl
// disables caching.
func NewCachedFetcher(inner domain.DocumentFetcher, ttl time.Duration, maxEntries int, metrics *observability.Metrics) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		ttl:     ttl,
		cache:   newLRUCache(maxEntries),
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
	}
}

func (c *CachedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if c.ttl <= 0 {
		return c.inner.Fetch(ctx, url)
	}

	now := c.clock.Now()
	if doc, ok := c.cache.get(url, now); ok {
		c.metrics.ForecastCache.WithLabelValues("hit").Inc()
		return doc, nil
	}
	c.metrics.ForecastCache.WithLabelValues("miss").Inc()

	doc, err := c.inner.Fetch(ctx, url)
	if err != nil {
		// Failures are not cached so the next request retries upstream.
		return "", err
	}
	c.cache.put(url, doc, now.Add(c.ttl))
	return doc, nil
}

// lruCache is a thread-safe LRU of documents keyed by URL, each with its own
// expiry.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	order      *list.List // front is most recently used
	entries    map[string]*list.Element
}

type entry struct {
	key       string
	doc       string
	expiresAt time.Time
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: max(1, maxEntries),
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

func (c *lruCache) get(key string, now time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return "", false
	}
	e := el.Value.(*entry)
	if !now.Before(e.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return "", false
	}
	c.order.MoveToFront(el)
	return e.doc, true
}

func (c *lruCache) put(key, doc string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.doc, e.expiresAt = doc, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&entry{key: key, doc: doc, expiresAt: expiresAt})
	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}
}

func (c *lruCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
