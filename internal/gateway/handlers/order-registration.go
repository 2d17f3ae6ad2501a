package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/common/clientprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/service"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

type OrderRegistrationHandler struct {
	service OrderRegistrationService
	logger  *logging.ZapLogger
}

type OrderRegistrationService interface {
	RegisterOrder(ctx context.Context, newOrder service.NewOrder) error
}

func NewOrderRegistrationHandler(service OrderRegistrationService, logger *logging.ZapLogger) *OrderRegistrationHandler {
	return &OrderRegistrationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderRegistrationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	request, err := decodeJSON[clientprotocol.RegisterOrderRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if request.ID == "" {
		h.logger.DebugCtx(r.Context(), "order registration without order_id")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.RegisterOrder(r.Context(), service.NewOrder{
		ID:          request.ID,
		Total:       request.Total,
		Currency:    request.Currency,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		PhoneNumber: request.PhoneNumber,
		Email:       request.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderExists):
			h.logger.DebugCtx(r.Context(), "order already registered", zap.String("orderID", request.ID))
			w.WriteHeader(http.StatusConflict)
		default:
			h.logger.ErrorCtx(r.Context(), "order registration error", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
