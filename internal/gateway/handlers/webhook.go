package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/common/clientprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
	"github.com/t-amuah/govgh-gateway/internal/gateway/service"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

const (
	webhookProcessedMessage = "Webhook processed successfully."
	invalidWebhookMessage   = "Invalid webhook data."
)

type WebhookHandler struct {
	service WebhookService
	logger  *logging.ZapLogger
}

type WebhookService interface {
	IngestWebhook(ctx context.Context, rawPayload []byte) error
}

func NewWebhookHandler(service WebhookService, logger *logging.ZapLogger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		logger:  logger,
	}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	rawPayload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.ErrorCtx(r.Context(), "failed to read webhook body", zap.Error(err))
		h.reject(w, r)
		return
	}

	err = h.service.IngestWebhook(r.Context(), rawPayload)
	if err != nil {
		switch {
		case errors.Is(err, govgh.ErrInvalidWebhook),
			errors.Is(err, service.ErrOrderNotFound),
			errors.Is(err, service.ErrOrderStateConflict):
			h.logger.DebugCtx(r.Context(), "webhook rejected", zap.Error(err))
			h.reject(w, r)
		default:
			h.logger.ErrorCtx(r.Context(), "webhook handler error", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	ack := clientprotocol.WebhookAck{Message: webhookProcessedMessage}
	if err := tryWriteResponseJSON(w, http.StatusOK, ack); err != nil {
		h.logger.ErrorCtx(r.Context(), "failed to write webhook ack", zap.Error(err))
	}
}

func (h *WebhookHandler) reject(w http.ResponseWriter, r *http.Request) {
	rejection := clientprotocol.ErrorResponse{Error: invalidWebhookMessage}
	if err := tryWriteResponseJSON(w, http.StatusBadRequest, rejection); err != nil {
		h.logger.ErrorCtx(r.Context(), "failed to write webhook rejection", zap.Error(err))
	}
}
