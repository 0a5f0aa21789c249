package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP
type RateLimiter struct {
	mu             sync.Mutex
	clients        map[string]*client
	limit          rate.Limit
	burst          int
	lastSeen       time.Duration
	trustedProxies map[string]bool
}

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client
// IP with the given burst. X-Forwarded-For is only consulted for peers in
// trustedProxies. Idle clients are evicted in the background.
func NewRateLimiter(perMinute, burst int, trustedProxies []string) *RateLimiter {
	trusted := make(map[string]bool, len(trustedProxies))
	for _, proxy := range trustedProxies {
		trusted[proxy] = true
	}
	rl := &RateLimiter{
		clients:        make(map[string]*client),
		limit:          rate.Limit(float64(perMinute) / 60.0),
		burst:          burst,
		lastSeen:       10 * time.Minute,
		trustedProxies: trusted,
	}
	go rl.evictLoop()
	return rl
}

// Middleware returns an HTTP middleware that rejects clients exceeding the
// configured rate with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(rl.clientIP(r)) {
			writeError(w, r, http.StatusTooManyRequests, "Too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.seen = time.Now()
	return c.limiter.Allow()
}

func (rl *RateLimiter) evictLoop() {
	for range time.Tick(time.Minute) {
		rl.mu.Lock()
		for ip, c := range rl.clients {
			if time.Since(c.seen) > rl.lastSeen {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP resolves the address a request is attributed to. The peer
// address wins unless the peer is a trusted proxy, in which case the first
// X-Forwarded-For hop is used. Untrusted peers cannot rotate limiter
// buckets by forging the header.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if rl.trustedProxies[host] {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			return strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	return host
}
