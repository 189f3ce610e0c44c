//go:build !integration

package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingSink collects entries passed to Log.
type recordingSink struct {
	mu      sync.Mutex
	entries []*model.ActivityEntry
}

func (s *recordingSink) Log(entry *model.ActivityEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) Entries() []*model.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.ActivityEntry(nil), s.entries...)
}

// recordingRecorder collects batches passed to RecordMany.
type recordingRecorder struct {
	mu      sync.Mutex
	batches [][]*model.ActivityEntry
	err     error
	delay   time.Duration
}

func (r *recordingRecorder) RecordMany(ctx context.Context, entries []*model.ActivityEntry) error {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, entries)
	return r.err
}

func (r *recordingRecorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, b := range r.batches {
		n += len(b)
	}
	return n
}

func (r *recordingRecorder) Batches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func perform(router http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
