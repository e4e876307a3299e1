package http

import (
	"sync"
	"time"
)

const (
	staleVisitorAge = 1 * time.Hour
	sweepInterval   = 30 * time.Minute
)

type visitorBucket struct {
	remaining  int
	lastRefill time.Time
}

// RateLimiter grants each client IP a fixed number of requests per window.
// Buckets refill whole windows at a time and idle visitors are swept
// periodically.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	window    time.Duration
	visitors  map[string]*visitorBucket
	stopSweep chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		window:    window,
		visitors:  make(map[string]*visitorBucket),
		stopSweep: make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopSweep:
			return
		}
	}
}

func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.visitors {
		if now.Sub(bucket.lastRefill) > staleVisitorAge {
			delete(r.visitors, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopSweep)
}

// Allow reports whether the client identified by ip may proceed.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.visitors[ip]

	if !exists {
		r.visitors[ip] = &visitorBucket{
			remaining:  r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.window {
		bucket.remaining = r.capacity
		bucket.lastRefill = now
	}

	if bucket.remaining <= 0 {
		return false
	}

	bucket.remaining--
	return true
}
