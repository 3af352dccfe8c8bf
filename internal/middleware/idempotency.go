package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/service/cache"
)

const (
	// IdempotencyKeyHeader is the header clients use to make a POST safe to retry.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a response can be replayed.
	IdempotencyKeyTTL = 5 * time.Minute
)

// CachedResponse is a replayable HTTP response.
type CachedResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        []byte
}

// NewIdempotencyCache returns a cache sized for idempotent responses.
func NewIdempotencyCache(capacity int, ttl time.Duration) *cache.Sharded[*CachedResponse] {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return cache.NewSharded[*CachedResponse](capacity, ttl, defaultNumShards)
}

// Idempotency replays the stored 2xx response of an earlier POST or PUT carrying the same
// Idempotency-Key, caller, path and body. A nil store disables it.
func Idempotency(store cache.Cache[*CachedResponse]) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if store == nil || key == "" ||
			(c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut) {
			c.Next()
			return
		}

		cacheKey, err := idempotencyKey(key, c)
		if err != nil {
			c.Next()
			return
		}

		if resp, ok := store.Get(cacheKey); ok {
			for k, v := range resp.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(resp.StatusCode, resp.ContentType, resp.Body)
			c.Abort()
			return
		}

		w := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < 200 || status >= 300 {
			return
		}
		headers := make(map[string]string)
		for _, h := range []string{"Content-Disposition", "X-Run-ID", "X-Cache"} {
			if v := w.Header().Get(h); v != "" {
				headers[h] = v
			}
		}
		store.Set(cacheKey, &CachedResponse{
			StatusCode:  status,
			ContentType: w.Header().Get("Content-Type"),
			Headers:     headers,
			Body:        w.body.Bytes(),
		})
	}
}

// idempotencyKey hashes the client key with the caller, route and body. The body is
// restored for the handler.
func idempotencyKey(key string, c *gin.Context) (string, error) {
	h := sha256.New()
	for _, part := range []string{key, GetUserID(c), c.Request.Method, c.Request.URL.RequestURI()} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	if c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return "", err
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

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
