package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// maxTrackedClients bounds the limiter's memory; expired windows are pruned
// once the map grows past it.
const maxTrackedClients = 4096

// RateLimiter counts requests per client IP over a fixed window. Every client
// gets its own window, so one uploader hitting its limit does not reset the
// count for anyone else.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

type clientWindow struct {
	count   int
	started time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
	}
}

// Allow records a request from the client and reports whether it is within
// the limit. A client whose window has elapsed starts a fresh one.
func (rl *RateLimiter) Allow(clientIP string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if len(rl.clients) > maxTrackedClients {
		for ip, cw := range rl.clients {
			if now.Sub(cw.started) > rl.window {
				delete(rl.clients, ip)
			}
		}
	}

	cw := rl.clients[clientIP]
	if cw == nil || now.Sub(cw.started) > rl.window {
		rl.clients[clientIP] = &clientWindow{count: 1, started: now}
		return true
	}
	if cw.count >= rl.limit {
		return false
	}
	cw.count++
	return true
}

// RateLimit limits requests per client IP. The limit comes from
// server.rate_limit_per_minute in the config.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(limit, window)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !limiter.Allow(clientIP, time.Now()) {
			slog.Warn("rate limit exceeded",
				"client_ip", clientIP,
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
			)
			c.Header("Retry-After", strconv.Itoa(int(window/time.Second)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
