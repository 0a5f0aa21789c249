package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2, nil)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	first.RemoteAddr = "10.0.0.1:52000"
	w1 := httptest.NewRecorder()
	handler.ServeHTTP(w1, first)

	second := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	second.RemoteAddr = "10.0.0.2:52000"
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, second)

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestClientIPIgnoresForwardedHeaderFromUntrustedPeer(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "203.0.113.50:52000"
	req.Header.Set("X-Forwarded-For", "198.51.100.7")

	assert.Equal(t, "203.0.113.50", rl.clientIP(req))
}

func TestClientIPHonorsForwardedHeaderFromTrustedProxy(t *testing.T) {
	rl := NewRateLimiter(1, 1, []string{"10.0.0.1"})

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:52000"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	assert.Equal(t, "203.0.113.9", rl.clientIP(req))
}

func TestRateLimiterNotBypassedByForgedForwardedHeader(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 2)
	for _, forged := range []string{"198.51.100.1", "198.51.100.2"} {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		req.RemoteAddr = "203.0.113.50:52000"
		req.Header.Set("X-Forwarded-For", forged)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, statuses)
}
