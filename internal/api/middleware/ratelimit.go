package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/revivatech/RT-AvailabilityService/internal/api/handlers"
	"github.com/revivatech/RT-AvailabilityService/pkg/metrics"
	"github.com/revivatech/RT-AvailabilityService/pkg/ratelimit"
)

const msgRateLimited = "слишком много запросов, повторите позже"

// unknownClient sentinel-идентификатор, когда адрес клиента определить не удалось
const unknownClient = "unknown"

// RateLimit ограничивает частоту запросов по IP клиента
// При отказе отвечает 429 с заголовком Retry-After (секунды до конца окна)
// m может быть nil, если метрики выключены
func RateLimit(limiter *ratelimit.Limiter, m *metrics.Metrics, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := clientIP(r)

			if !limiter.Allow(clientID) {
				retryAfter := int(math.Ceil(limiter.RetryAfter(clientID).Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}

				log.Warn("RateLimit: client %s rejected on %s", clientID, r.URL.Path)
				if m != nil {
					m.IncRateLimitRejected(r.URL.Path)
				}

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP извлекает идентификатор клиента: первый адрес из X-Forwarded-For,
// иначе адрес соединения, иначе sentinel "unknown"
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return unknownClient
	}
	return host
}
