package middleware

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestGetLimiterReusesPerIP(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(1), 2)

	first := rl.GetLimiter("10.0.0.1")
	second := rl.GetLimiter("10.0.0.1")
	if first != second {
		t.Error("GetLimiter returned a new limiter for a known address")
	}

	other := rl.GetLimiter("10.0.0.2")
	if other == first {
		t.Error("GetLimiter shared a limiter across addresses")
	}
}

func TestGetLimiterEnforcesBurst(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(1), 2)
	limiter := rl.GetLimiter("10.0.0.3")

	if !limiter.Allow() || !limiter.Allow() {
		t.Fatal("burst budget denied immediately")
	}
	if limiter.Allow() {
		t.Error("third immediate request allowed; want burst of 2 enforced")
	}
}

func TestSweepEvictsIdleAddresses(t *testing.T) {
	rl := NewIPRateLimiter(rate.Limit(1), 1)
	rl.GetLimiter("stale")
	rl.GetLimiter("fresh")

	rl.mu.Lock()
	rl.ips["stale"].lastSeen = time.Now().Add(-idleEvictAfter - time.Minute)
	rl.sweep()
	rl.mu.Unlock()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.ips["stale"]; ok {
		t.Error("idle address survived the sweep")
	}
	if _, ok := rl.ips["fresh"]; !ok {
		t.Error("active address was evicted")
	}
}
