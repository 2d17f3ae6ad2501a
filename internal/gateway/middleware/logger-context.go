package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

type LoggerContext struct{}

func NewLoggerContext() *LoggerContext {
	return &LoggerContext{}
}

// CreateHandler puts the request coordinates into the logging context. The
// caller identity fields matter on the webhook route, where deliveries come
// from the provider rather than the storefront.
func (lc *LoggerContext) CreateHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(
			logging.WithContextFields(
				r.Context(),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("remote-addr", r.RemoteAddr),
				zap.String("user-agent", r.UserAgent()),
				zap.Int64("content-length", r.ContentLength),
			),
		)
		next.ServeHTTP(w, r)
	})
}
