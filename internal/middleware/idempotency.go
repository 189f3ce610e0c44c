package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/dto"
	"github.com/guttosm/trip-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the request header naming an idempotent operation.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// DefaultIdempotencyTTL is how long a completed response is replayed.
	DefaultIdempotencyTTL = 5 * time.Minute
)

// Idempotency replays the stored 2xx response of a POST that carried the same
// Idempotency-Key, method, path and body within the TTL. A duplicate arriving while
// the first is still running gets 409.
type Idempotency struct {
	cache *idempotencyCache
}

// NewIdempotency creates the middleware state. Call Stop on shutdown.
func NewIdempotency(ttl time.Duration) *Idempotency {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &Idempotency{cache: newIdempotencyCache(ttl)}
}

// Stop releases background resources.
func (i *Idempotency) Stop() {
	i.cache.Stop()
}

// Middleware returns the gin handler.
func (i *Idempotency) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey, err := idempotencyCacheKey(key, c.Request)
		if err != nil {
			c.Next()
			return
		}

		stored, claimed := i.cache.Begin(cacheKey)
		if stored != nil {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(stored.StatusCode, stored.ContentType, stored.Body)
			c.Abort()
			return
		}
		if !claimed {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyConflict, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewError(dto.ErrCodeConflict, message).WithRequestID(GetRequestID(c)))
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		var resp *cachedResponse
		defer func() {
			i.cache.Finish(cacheKey, resp)
		}()

		c.Next()

		if status := writer.Status(); status >= 200 && status < 300 {
			resp = &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}
		}
	}
}

// idempotencyCacheKey hashes the key with method, path and body. The body is restored for the handler.
func idempotencyCacheKey(key string, req *http.Request) (string, error) {
	h := sha256.New()
	for _, part := range []string{key, req.Method, req.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// capturingWriter tees the response body.
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
