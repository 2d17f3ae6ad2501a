package data

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	NullStatus            = Status("")
	NewStatus             = Status("NEW")
	AwaitingPaymentStatus = Status("AWAITING_PAYMENT")
	CompletedStatus       = Status("COMPLETED")
	FailedStatus          = Status("FAILED")
	PendingExternalStatus = Status("PENDING_EXTERNAL")
)

// Terminal reports whether no further transition may be applied to an order
// in this status.
func (s Status) Terminal() bool {
	return s == CompletedStatus || s == FailedStatus
}

type Order struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ID            string
	Status        Status
	Total         decimal.Decimal
	Currency      string
	FirstName     string
	LastName      string
	PhoneNumber   string
	Email         string
	InvoiceNumber string
	CheckoutURL   string
}

// WebhookEvent is the audit record of a single webhook delivery. The raw
// payload is retained verbatim.
type WebhookEvent struct {
	ReceivedAt    time.Time
	InvoiceNumber string
	Status        string
	Payload       []byte
}
