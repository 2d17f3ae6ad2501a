package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
	"github.com/t-amuah/govgh-gateway/pkg/threadsafe"
)

// Reconciliation joins the two legs of a GovGH payment: the outbound
// checkout creation and the inbound webhook that later reports the outcome.
// All order status writes go through it.
type Reconciliation struct {
	orderRepository    OrderRepository
	transactionManager TransactionManager
	invoiceBuilder     InvoiceBuilder
	checkoutClient     CheckoutClient
	orderLocks         *threadsafe.KeyedMutex[string]
	logger             *logging.ZapLogger
}

func NewReconciliation(
	orderRepository OrderRepository,
	transactionManager TransactionManager,
	invoiceBuilder InvoiceBuilder,
	checkoutClient CheckoutClient,
	logger *logging.ZapLogger,
) *Reconciliation {
	return &Reconciliation{
		orderRepository:    orderRepository,
		transactionManager: transactionManager,
		invoiceBuilder:     invoiceBuilder,
		checkoutClient:     checkoutClient,
		orderLocks:         threadsafe.NewKeyedMutex[string](),
		logger:             logger,
	}
}

// InitiateCheckout submits a checkout request for the order and returns the
// hosted payment page URL. The order moves NEW -> AWAITING_PAYMENT only after
// the provider has accepted the request; every failure leaves the order
// untouched. Calling it again for an order already awaiting payment returns
// the previously stored URL instead of re-submitting.
func (r *Reconciliation) InitiateCheckout(ctx context.Context, orderID string) (string, error) {
	r.orderLocks.Lock(orderID)
	defer r.orderLocks.Unlock(orderID)

	order, err := r.orderRepository.GetOrder(ctx, orderID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrOrderNotFound):
			return "", ErrOrderNotFound
		default:
			return "", fmt.Errorf("error getting order: %w", err)
		}
	}

	switch order.Status {
	case data.NewStatus:
	case data.AwaitingPaymentStatus:
		if order.CheckoutURL != "" {
			r.logger.DebugCtx(ctx, "checkout already initiated", zap.String("orderID", orderID))
			return order.CheckoutURL, nil
		}
		return "", fmt.Errorf("%w: order %q awaits payment without a checkout URL", ErrOrderStateConflict, orderID)
	default:
		return "", fmt.Errorf("%w: order %q has status %q", ErrOrderStateConflict, orderID, order.Status)
	}

	request, err := r.invoiceBuilder.Build(order)
	if err != nil {
		return "", fmt.Errorf("error building invoice: %w", err)
	}

	response, err := r.checkoutClient.Submit(ctx, request)
	if err != nil {
		return "", fmt.Errorf("error submitting checkout: %w", err)
	}

	err = r.orderRepository.SetOrderCheckout(
		ctx,
		orderID,
		response.InvoiceNumber,
		response.CheckoutURL,
		data.AwaitingPaymentStatus,
	)
	if err != nil {
		return "", fmt.Errorf("error storing checkout result: %w", err)
	}

	r.logger.InfoCtx(
		ctx,
		"checkout initiated",
		zap.String("orderID", orderID),
		zap.String("invoiceNumber", response.InvoiceNumber),
	)
	return response.CheckoutURL, nil
}

// IngestWebhook validates a callback payload and applies it to the matching
// order. Redelivery of an already applied terminal outcome is acknowledged
// as a no-op; a payload matching no order is a correlation failure.
func (r *Reconciliation) IngestWebhook(ctx context.Context, rawPayload []byte) error {
	event, err := govgh.ParseWebhook(rawPayload)
	if err != nil {
		return fmt.Errorf("error parsing webhook: %w", err)
	}

	order, err := r.orderRepository.GetOrderByInvoiceNumber(ctx, event.InvoiceNumber)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrOrderNotFound):
			r.logger.DebugCtx(ctx, "webhook matches no order", zap.String("invoiceNumber", event.InvoiceNumber))
			return ErrOrderNotFound
		default:
			return fmt.Errorf("error resolving invoice: %w", err)
		}
	}

	r.orderLocks.Lock(order.ID)
	defer r.orderLocks.Unlock(order.ID)

	return r.transactionManager.DoWithTransaction(ctx, func(ctx context.Context) error {
		// Re-read under the lock: a concurrent delivery may have already
		// applied a terminal outcome.
		current, err := r.orderRepository.GetOrder(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("error re-reading order: %w", err)
		}

		next, apply, err := nextWebhookStatus(current.Status, event.Status)
		if err != nil {
			return err
		}

		auditErr := r.orderRepository.InsertWebhookEvent(ctx, data.WebhookEvent{
			InvoiceNumber: event.InvoiceNumber,
			Status:        string(event.Status),
			Payload:       event.Raw,
			ReceivedAt:    event.ReceivedAt,
		})
		if auditErr != nil {
			return fmt.Errorf("error storing webhook event: %w", auditErr)
		}

		if !apply {
			r.logger.InfoCtx(
				ctx,
				"webhook ignored",
				zap.String("orderID", current.ID),
				zap.String("orderStatus", string(current.Status)),
				zap.String("reportedStatus", string(event.Status)),
			)
			return nil
		}

		if err := r.orderRepository.SetOrderStatus(ctx, current.ID, next); err != nil {
			return fmt.Errorf("error updating order status: %w", err)
		}
		r.logger.InfoCtx(
			ctx,
			"webhook applied",
			zap.String("orderID", current.ID),
			zap.String("newStatus", string(next)),
		)
		return nil
	})
}
