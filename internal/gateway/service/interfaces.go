package service

import (
	"context"

	"github.com/t-amuah/govgh-gateway/internal/common/govghprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
)

type TransactionManager interface {
	DoWithTransaction(ctx context.Context, f func(ctx context.Context) error) error
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *data.Order) error
	GetOrder(ctx context.Context, orderID string) (data.Order, error)
	GetOrderByInvoiceNumber(ctx context.Context, invoiceNumber string) (data.Order, error)
	SetOrderCheckout(ctx context.Context, orderID, invoiceNumber, checkoutURL string, status data.Status) error
	SetOrderStatus(ctx context.Context, orderID string, status data.Status) error
	InsertWebhookEvent(ctx context.Context, event data.WebhookEvent) error
}

type CheckoutClient interface {
	Submit(ctx context.Context, request govghprotocol.CheckoutRequest) (govghprotocol.CheckoutResponse, error)
}

type InvoiceBuilder interface {
	Build(order data.Order) (govghprotocol.CheckoutRequest, error)
}
