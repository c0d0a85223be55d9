package middleware

import (
	"sync"
	"time"

	"github.com/gitalabs/GitaAPI/internal/config"
	"golang.org/x/time/rate"
)

// Limits are per process. Replicas behind a load balancer each grant the
// full budget, size RATE_LIMIT_PER_SECOND accordingly.
var limiterInstance = NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)

// sweepThreshold bounds the ip map. Answering a question costs an embedding
// call and possibly a model call, so the limiter sits in front of every
// endpoint and sees every scanner that probes the service.
const sweepThreshold = 4096

const idleEvictAfter = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips       map[string]*ipLimiter
	mu        sync.Mutex
	rateLimit rate.Limit
	burstRate int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{ips: make(map[string]*ipLimiter), rateLimit: r, burstRate: b}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	entry, exists := i.ips[ip]
	if !exists {
		if len(i.ips) >= sweepThreshold {
			i.sweep()
		}
		entry = &ipLimiter{limiter: rate.NewLimiter(i.rateLimit, i.burstRate)}
		i.ips[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// sweep drops addresses idle past the eviction window. Called with the lock
// held. An evicted address that returns starts with a fresh burst budget,
// which is acceptable at this window size.
func (i *IPRateLimiter) sweep() {
	cutoff := time.Now().Add(-idleEvictAfter)
	for ip, entry := range i.ips {
		if entry.lastSeen.Before(cutoff) {
			delete(i.ips, ip)
		}
	}
}
