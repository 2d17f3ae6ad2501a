package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/common/clientprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
	"github.com/t-amuah/govgh-gateway/internal/gateway/service"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

type OrderGettingHandler struct {
	service OrderGettingService
	logger  *logging.ZapLogger
}

type OrderGettingService interface {
	GetOrder(ctx context.Context, orderID string) (data.Order, error)
}

func NewOrderGettingHandler(service OrderGettingService, logger *logging.ZapLogger) *OrderGettingHandler {
	return &OrderGettingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderGettingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			h.logger.DebugCtx(r.Context(), "order not found", zap.String("orderID", orderID))
			w.WriteHeader(http.StatusNotFound)
		default:
			h.logger.ErrorCtx(r.Context(), "order getting error", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := clientprotocol.Order{
		ID:            order.ID,
		Status:        convertStatus(order.Status),
		Total:         order.Total,
		Currency:      order.Currency,
		InvoiceNumber: order.InvoiceNumber,
		CheckoutURL:   order.CheckoutURL,
		CreatedAt:     order.CreatedAt,
	}
	if err := tryWriteResponseJSON(w, http.StatusOK, response); err != nil {
		h.logger.ErrorCtx(r.Context(), "failed to write order response", zap.Error(err))
	}
}

func convertStatus(status data.Status) clientprotocol.OrderStatus {
	switch status {
	case data.NewStatus:
		return clientprotocol.New
	case data.AwaitingPaymentStatus:
		return clientprotocol.AwaitingPayment
	case data.CompletedStatus:
		return clientprotocol.Completed
	case data.FailedStatus:
		return clientprotocol.Failed
	case data.PendingExternalStatus:
		return clientprotocol.PendingExternal
	}
	return clientprotocol.Null
}
