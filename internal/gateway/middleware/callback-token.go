package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

const callbackTokenHeader = "X-Callback-Token"

// CallbackToken guards the webhook route with a shared secret. An empty
// configured token disables the check, since GovGH does not sign callbacks.
type CallbackToken struct {
	logger *logging.ZapLogger
	token  string
}

func NewCallbackToken(token string, logger *logging.ZapLogger) *CallbackToken {
	return &CallbackToken{
		token:  token,
		logger: logger,
	}
}

func (ct *CallbackToken) CreateHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct.token != "" {
			provided := r.Header.Get(callbackTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(ct.token)) != 1 {
				ct.logger.DebugCtx(r.Context(), "webhook with invalid callback token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
