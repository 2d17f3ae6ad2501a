package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

// GatewayInfo describes the payment method to the storefront. WebhookURL is
// derived from the public base URL and is read-only.
type GatewayInfo struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title"`
	Description string `json:"description"`
	WebhookURL  string `json:"webhook_url"`
}

type GatewayInfoHandler struct {
	logger *logging.ZapLogger
	info   GatewayInfo
}

func NewGatewayInfoHandler(enabled bool, title, description, baseURL string, logger *logging.ZapLogger) *GatewayInfoHandler {
	return &GatewayInfoHandler{
		info: GatewayInfo{
			Enabled:     enabled,
			Title:       title,
			Description: description,
			WebhookURL:  strings.TrimSuffix(baseURL, "/") + govgh.WebhookRoute,
		},
		logger: logger,
	}
}

func (h *GatewayInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	if err := tryWriteResponseJSON(w, http.StatusOK, h.info); err != nil {
		h.logger.ErrorCtx(r.Context(), "failed to write gateway info", zap.Error(err))
	}
}
