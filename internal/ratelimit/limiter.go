package ratelimit

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// Limiter is a thread-safe token bucket. Bursts are allowed up to the
// bucket capacity, after which callers block until tokens refill at the
// configured average rate.
type Limiter struct {
	mu         sync.Mutex
	capacity   float64   // Burst size
	ratePerSec float64   // Refill rate, tokens per second
	tokens     float64   // Current tokens, starts at capacity
	lastRefill time.Time // Last refill timestamp

	totalRequests int64
	totalWaits    int64

	logger *slog.Logger

	// Injected for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// Stats is a point-in-time snapshot of limiter activity.
type Stats struct {
	TotalRequests  int64
	TotalWaits     int64
	CurrentTokens  float64
	WaitPercentage float64
}

// New creates a limiter allowing requestsPerMinute on average with bursts
// up to burst requests. The bucket starts full.
func New(requestsPerMinute float64, burst int, logger *slog.Logger) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}

	l := &Limiter{
		capacity:   float64(burst),
		ratePerSec: requestsPerMinute / 60.0,
		tokens:     float64(burst),
		logger:     logger,
		now:        time.Now,
		sleep:      time.Sleep,
	}
	l.lastRefill = l.now()

	logger.Info("rate limiter initialized",
		"requests_per_minute", requestsPerMinute,
		"burst", burst,
	)

	return l
}

// Acquire takes n tokens from the bucket, blocking until the deficit has
// refilled. It returns the time spent waiting (zero when tokens were
// available immediately).
//
// After a blocked acquire the bucket is drained to zero: whatever refilled
// during the sleep counts as consumed. The next burst therefore builds up
// from empty.
func (l *Limiter) Acquire(n int) time.Duration {
	need := float64(n)

	l.mu.Lock()
	l.refillLocked()

	if l.tokens >= need {
		l.tokens -= need
		l.totalRequests++
		l.mu.Unlock()
		return 0
	}

	wait := time.Duration((need - l.tokens) / l.ratePerSec * float64(time.Second))
	l.mu.Unlock()

	// Sleep without the lock so sibling acquires keep flowing.
	l.sleep(wait)

	l.mu.Lock()
	l.tokens = 0
	l.lastRefill = l.now()
	l.totalRequests++
	l.totalWaits++
	waits, requests := l.totalWaits, l.totalRequests
	l.mu.Unlock()

	if waits%10 == 0 {
		l.logger.Warn("rate limiter active",
			"waits", waits,
			"requests", requests,
		)
	}

	return wait
}

// Stats returns a snapshot of the limiter counters. Tokens are reported
// as of the last refill, without advancing the clock.
func (l *Limiter) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{
		TotalRequests: l.totalRequests,
		TotalWaits:    l.totalWaits,
		CurrentTokens: l.tokens,
	}
	if l.totalRequests > 0 {
		s.WaitPercentage = float64(l.totalWaits) / float64(l.totalRequests) * 100
	}
	return s
}

// refillLocked adds tokens for the time elapsed since the last refill,
// capped at capacity. Caller must hold l.mu.
func (l *Limiter) refillLocked() {
	now := l.now()
	elapsed := now.Sub(l.lastRefill).Seconds()
	l.tokens = math.Min(l.capacity, l.tokens+elapsed*l.ratePerSec)
	l.lastRefill = now
}
