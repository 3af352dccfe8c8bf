package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/i18n"
)

const defaultNumShards = 16

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter gives every caller a token bucket of size limit refilled over window.
// Callers are spread over shards to keep lock contention low.
type RateLimiter struct {
	shards []*rateLimiterShard
	limit  int
	window time.Duration
	every  rate.Limit
	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a limiter allowing limit requests per window and starts its
// idle-visitor sweeper.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(limit, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(limit int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		limit:  limit,
		window: window,
		every:  rate.Every(window / time.Duration(limit)),
		stopCh: make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

func (rl *RateLimiter) shard(id string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow takes one token for id and returns the tokens left.
func (rl *RateLimiter) allow(id string, now time.Time) (bool, int) {
	s := rl.shard(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[id]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.limit)}
		s.visitors[id] = v
	}
	v.lastSeen = now

	allowed := v.limiter.AllowN(now, 1)
	remaining := int(math.Max(0, math.Floor(v.limiter.TokensAt(now))))
	return allowed, remaining
}

func (rl *RateLimiter) middleware(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.allow(identify(c), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			retry := time.Duration(float64(time.Second) / float64(rl.every))
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			abort(c, http.StatusTooManyRequests, dto.ErrCodeRateLimit, i18n.ErrKeyRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// UserRateLimit limits requests per authenticated user, falling back to the client IP.
func (rl *RateLimiter) UserRateLimit() gin.HandlerFunc {
	return rl.middleware(func(c *gin.Context) string {
		if id := GetUserID(c); id != "" {
			return "user:" + id
		}
		return "ip:" + c.ClientIP()
	})
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.evictIdle(now)
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle forgets visitors idle for two windows; their bucket would be full anyway.
func (rl *RateLimiter) evictIdle(now time.Time) {
	threshold := 2 * rl.window
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, v := range s.visitors {
			if now.Sub(v.lastSeen) > threshold {
				delete(s.visitors, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the sweeper.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Visitors returns the number of tracked callers.
func (rl *RateLimiter) Visitors() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.visitors)
		s.mu.Unlock()
	}
	return total
}
