package middleware

import (
	"sync"
	"time"
)

// cachedResponse is a replayable 2xx response.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// idempotencyCache holds completed responses and the keys currently being processed.
type idempotencyCache struct {
	mu       sync.Mutex
	items    map[string]*cachedResponse
	inFlight map[string]struct{}
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items:    make(map[string]*cachedResponse),
		inFlight: make(map[string]struct{}),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Begin returns the stored response for key, or claims key for processing.
// claimed is false when another request holds the key.
func (c *idempotencyCache) Begin(key string) (resp *cachedResponse, claimed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if resp, ok := c.items[key]; ok {
		if time.Since(resp.StoredAt) <= c.ttl {
			return resp, false
		}
		delete(c.items, key)
	}
	if _, busy := c.inFlight[key]; busy {
		return nil, false
	}
	c.inFlight[key] = struct{}{}
	return nil, true
}

// Finish releases key and stores resp when non-nil.
func (c *idempotencyCache) Finish(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.inFlight, key)
	if resp != nil {
		resp.StoredAt = time.Now()
		c.items[key] = resp
	}
}

// Len returns the number of stored responses.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *idempotencyCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *idempotencyCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.StoredAt) > c.ttl {
			delete(c.items, key)
		}
	}
}

// Stop ends the background sweep.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}
