package clientprotocol

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	Null            OrderStatus = ""
	New             OrderStatus = "NEW"
	AwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	Completed       OrderStatus = "COMPLETED"
	Failed          OrderStatus = "FAILED"
	PendingExternal OrderStatus = "PENDING_EXTERNAL"
)

type OrderStatus string

type Order struct {
	ID            string          `json:"order_id"`
	Status        OrderStatus     `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	CheckoutURL   string          `json:"checkout_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type RegisterOrderRequest struct {
	ID          string          `json:"order_id"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
	FirstName   string          `json:"firstname"`
	LastName    string          `json:"lastname"`
	PhoneNumber string          `json:"phonenumber"`
	Email       string          `json:"email"`
}

type CheckoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type WebhookAck struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
