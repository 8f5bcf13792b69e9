package http

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupSchedule        = "@every 30m"
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client bucket that refills completely once every
// refillDur. Idle buckets are dropped by a background cron job.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	clients   map[string]*clientBucket
	cron      *cron.Cron
	now       func() time.Time
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		clients:   make(map[string]*clientBucket),
		cron:      cron.New(),
		now:       time.Now,
	}
	// The schedule is a constant, so AddFunc cannot fail.
	_, _ = rl.cron.AddFunc(cleanupSchedule, rl.cleanup)
	rl.cron.Start()
	return rl
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	threshold := max(bucketCleanupThreshold, r.refillDur)
	now := r.now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > threshold {
			delete(r.clients, ip)
		}
	}
}

// Stop halts the cleanup job and waits for a running cleanup to finish.
func (r *RateLimiter) Stop() {
	<-r.cron.Stop().Done()
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return r.capacity > 0
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

// RetryAfter is the longest a rejected client has to wait.
func (r *RateLimiter) RetryAfter() time.Duration {
	return r.refillDur
}
