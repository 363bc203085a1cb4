package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nunes1886/prisma/internal/apierror"
)

// limiter is a per-IP sliding-window counter. Each middleware instance owns
// its own map, so the login limiter and any general limiter never interfere.
type limiter struct {
	mu      sync.Mutex
	seen    map[string]*window
	limit   int
	period  time.Duration
	message string
}

type window struct {
	count int
	until time.Time
}

func newLimiter(limit int, period time.Duration, message string) *limiter {
	l := &limiter{
		seen:    make(map[string]*window),
		limit:   limit,
		period:  period,
		message: message,
	}
	go l.purge()
	return l
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.seen[ip]
	if !ok || now.After(w.until) {
		w = &window{until: now.Add(l.period)}
		l.seen[ip] = w
	}
	w.count++
	return w.count <= l.limit
}

// purge drops expired windows so IPs that never come back do not pile up.
func (l *limiter) purge() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		removed := 0
		for ip, w := range l.seen {
			if now.After(w.until) {
				delete(l.seen, ip)
				removed++
			}
		}
		l.mu.Unlock()
		if removed > 0 {
			log.Debug().Int("removed", removed).Msg("rate limiter windows purged")
		}
	}
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Muitas tentativas de login. Tente novamente em 1 minuto.").handler()
}

// RateLimiter is a general sliding-window limiter for the API surface.
func RateLimiter(limit int, period time.Duration) gin.HandlerFunc {
	return newLimiter(limit, period, "Muitas solicitações. Tente novamente em instantes.").handler()
}
