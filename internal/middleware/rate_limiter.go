package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*rateEntry)
	loginMapMu sync.Mutex

	apiRateMap   = make(map[string]*rateEntry)
	apiRateMapMu sync.Mutex
)

func take(m map[string]*rateEntry, mu *sync.Mutex, ip string, limit int, window time.Duration) bool {
	mu.Lock()
	entry, exists := m[ip]
	if !exists {
		entry = &rateEntry{}
		m[ip] = entry
	}
	mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(window)
	}
	entry.count++
	return entry.count <= limit
}

// LoginRateLimiter limits credential attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !take(loginMap, &loginMapMu, c.ClientIP(), 20, time.Minute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many login attempts, try again in a minute"))
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !take(apiRateMap, &apiRateMapMu, c.ClientIP(), limit, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically removes expired entries from both rate limiter maps to prevent
// memory growth from IPs that never return.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		purged := purgeMap(loginMap, &loginMapMu) + purgeMap(apiRateMap, &apiRateMapMu)
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}

func purgeMap(m map[string]*rateEntry, mu *sync.Mutex) int {
	now := time.Now()
	mu.Lock()
	defer mu.Unlock()

	purged := 0
	for ip, entry := range m {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(m, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}
