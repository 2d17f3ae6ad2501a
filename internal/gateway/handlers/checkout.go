package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/common/clientprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
	"github.com/t-amuah/govgh-gateway/internal/gateway/service"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

type CheckoutHandler struct {
	service CheckoutService
	logger  *logging.ZapLogger
}

type CheckoutService interface {
	InitiateCheckout(ctx context.Context, orderID string) (string, error)
}

func NewCheckoutHandler(service CheckoutService, logger *logging.ZapLogger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	redirectURL, err := h.service.InitiateCheckout(r.Context(), orderID)
	if err != nil {
		h.writeError(w, r, orderID, err)
		return
	}

	if err := tryWriteResponseJSON(w, http.StatusOK, clientprotocol.CheckoutResponse{RedirectURL: redirectURL}); err != nil {
		h.logger.ErrorCtx(r.Context(), "failed to write checkout response", zap.Error(err))
	}
}

func (h *CheckoutHandler) writeError(w http.ResponseWriter, r *http.Request, orderID string, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		h.logger.DebugCtx(r.Context(), "checkout for unknown order", zap.String("orderID", orderID))
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, service.ErrOrderStateConflict):
		h.logger.DebugCtx(r.Context(), "checkout state conflict", zap.Error(err))
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, govgh.ErrInvalidOrder):
		h.logger.DebugCtx(r.Context(), "order not valid for checkout", zap.Error(err))
		h.writeErrorJSON(w, r, http.StatusUnprocessableEntity, err)
	case errors.Is(err, govgh.ErrCheckoutDeclined),
		errors.Is(err, govgh.ErrTransport),
		errors.Is(err, govgh.ErrProtocol):
		h.logger.ErrorCtx(r.Context(), "checkout submission failed", zap.Error(err))
		h.writeErrorJSON(w, r, http.StatusBadGateway, err)
	default:
		h.logger.ErrorCtx(r.Context(), "checkout handler error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *CheckoutHandler) writeErrorJSON(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	writeErr := tryWriteResponseJSON(w, statusCode, clientprotocol.ErrorResponse{Error: err.Error()})
	if writeErr != nil {
		h.logger.ErrorCtx(r.Context(), "failed to write error response", zap.Error(writeErr))
	}
}
