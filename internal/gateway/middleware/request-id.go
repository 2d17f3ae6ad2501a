package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

const requestIDHeader = "X-Request-Id"

type RequestID struct{}

func NewRequestID() *RequestID {
	return &RequestID{}
}

// CreateHandler tags every request with an id so provider webhook retries can
// be told apart in the logs. An inbound X-Request-Id is honored.
func (ri *RequestID) CreateHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		r = r.WithContext(
			logging.WithContextFields(r.Context(), zap.String("request-id", requestID)),
		)
		next.ServeHTTP(w, r)
	})
}
