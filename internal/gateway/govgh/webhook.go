package govgh

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/t-amuah/govgh-gateway/internal/common/govghprotocol"
)

// WebhookEvent is a validated webhook delivery. The raw payload is kept for
// the audit trail.
type WebhookEvent struct {
	ReceivedAt    time.Time
	InvoiceNumber string
	Status        govghprotocol.PaymentStatus
	Raw           []byte
}

// ParseWebhook validates an inbound callback payload. Statuses outside the
// known set map to Unknown rather than failing: the provider may add
// statuses we do not understand yet.
func ParseWebhook(raw []byte) (WebhookEvent, error) {
	var payload govghprotocol.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: %w", ErrInvalidWebhook, err)
	}
	if strings.TrimSpace(payload.InvoiceNumber) == "" {
		return WebhookEvent{}, fmt.Errorf("%w: missing invoice_number", ErrInvalidWebhook)
	}
	if strings.TrimSpace(payload.Status) == "" {
		return WebhookEvent{}, fmt.Errorf("%w: missing status", ErrInvalidWebhook)
	}
	return WebhookEvent{
		InvoiceNumber: payload.InvoiceNumber,
		Status:        parseStatus(payload.Status),
		Raw:           raw,
		ReceivedAt:    time.Now(),
	}, nil
}

func parseStatus(status string) govghprotocol.PaymentStatus {
	switch govghprotocol.PaymentStatus(status) {
	case govghprotocol.Success:
		return govghprotocol.Success
	case govghprotocol.Failed:
		return govghprotocol.Failed
	case govghprotocol.Pending:
		return govghprotocol.Pending
	}
	return govghprotocol.Unknown
}
