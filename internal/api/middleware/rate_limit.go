package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kaan-t/go-fin-ledger/internal/service"
)

// RateLimitMiddleware creates middleware that enforces per-IP rate limits
// using the Redis-backed cache service. A nil cache service disables
// limiting.
func RateLimitMiddleware(cacheService service.CacheService, maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cacheService == nil {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := getClientIP(r)

			allowed, err := cacheService.CheckRateLimit(r.Context(), clientIP, maxRequests, window)
			if err != nil {
				// Redis trouble should not take the API down
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", maxRequests))
				w.Header().Set("X-RateLimit-Window", window.String())
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Rate limit exceeded","code":429,"retry_after":"` + window.String() + `"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP extracts the real client IP from the request
func getClientIP(r *http.Request) string {
	// X-Forwarded-For wins when a proxy or load balancer is in front
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if strings.Contains(ip, ":") {
		ip, _, _ = strings.Cut(ip, ":")
	}
	return ip
}
