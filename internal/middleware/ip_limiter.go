package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ipLimiterEntry: tracks a rate limiter and its last use time
type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimit: limits connection attempts per IP address
type IPRateLimit struct {
	perMinute float64
	burst     int
	limiters  map[string]*ipLimiterEntry
	mu        sync.Mutex
}

// NewIPRateLimit: creates a connection limiter allowing perMinute
// attempts per IP, with the given burst for reconnect storms
func NewIPRateLimit(perMinute float64, burst int) *IPRateLimit {
	return &IPRateLimit{
		perMinute: perMinute,
		burst:     burst,
		limiters:  make(map[string]*ipLimiterEntry),
	}
}

// Allow: checks if an IP is allowed to connect
func (iprl *IPRateLimit) Allow(ip string) bool {
	iprl.mu.Lock()
	defer iprl.mu.Unlock()

	entry, exists := iprl.limiters[ip]
	if !exists {
		entry = &ipLimiterEntry{
			limiter: rate.NewLimiter(rate.Limit(iprl.perMinute/60), iprl.burst),
		}
		iprl.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// Cleanup: removes limiters for IPs not seen within the threshold
func (iprl *IPRateLimit) Cleanup(threshold time.Duration) {
	iprl.mu.Lock()
	defer iprl.mu.Unlock()

	now := time.Now()
	for ip, entry := range iprl.limiters {
		if now.Sub(entry.lastSeen) > threshold {
			delete(iprl.limiters, ip)
		}
	}
}
