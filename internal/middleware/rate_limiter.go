package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds one limiter per client key.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (s *rateLimiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = limiter
	}
	return limiter
}

// RateLimit allows perMinute requests per client, with bursts of the same
// size. Authenticated callers are keyed by user id, others by IP.
func RateLimit(perMinute int, log *zap.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID, ok := c.Get(ContextUserID); ok {
			key = fmt.Sprintf("user:%v", userID)
		}

		if !store.get(key).Allow() {
			log.Warn("rate limit exceeded", zap.String("client", key))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "rate_limited",
				"message":    "Too many requests. Try again later.",
			})
			return
		}
		c.Next()
	}
}
