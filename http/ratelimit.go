package http

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter spaces out requests per host with a token bucket each, so
// clipping several pages from one site stays polite while other sites are
// not held up.
type HostLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewHostLimiter allows rps requests per second to each host, with a burst
// of one.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host is allowed or ctx is done. Host names
// are case-insensitive; a port makes a separate host.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.bucket(strings.ToLower(host)).Wait(ctx)
}

// Hosts returns the number of hosts seen so far.
func (l *HostLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[host]
	if !ok {
		b = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.buckets[host] = b
	}
	return b
}
