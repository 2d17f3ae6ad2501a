package service

import (
	"fmt"

	"github.com/t-amuah/govgh-gateway/internal/common/govghprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
)

// nextWebhookStatus is the authoritative transition table for webhook-driven
// transitions. It returns the status the order should move to and whether a
// write is needed at all: terminal orders and unknown provider statuses are
// no-ops, never errors, so redelivered webhooks stay idempotent. A webhook
// for an order that never reached AWAITING_PAYMENT is a correlation failure.
func nextWebhookStatus(current data.Status, reported govghprotocol.PaymentStatus) (next data.Status, apply bool, err error) {
	if current.Terminal() {
		return current, false, nil
	}
	if reported == govghprotocol.Unknown {
		return current, false, nil
	}

	switch current {
	case data.AwaitingPaymentStatus:
		switch reported {
		case govghprotocol.Success:
			return data.CompletedStatus, true, nil
		case govghprotocol.Failed:
			return data.FailedStatus, true, nil
		case govghprotocol.Pending:
			return data.PendingExternalStatus, true, nil
		}
	case data.PendingExternalStatus:
		switch reported {
		case govghprotocol.Success:
			return data.CompletedStatus, true, nil
		case govghprotocol.Failed:
			return data.FailedStatus, true, nil
		case govghprotocol.Pending:
			return current, false, nil
		}
	}

	return data.NullStatus, false, fmt.Errorf(
		"%w: webhook status %q is not applicable to order status %q",
		ErrOrderStateConflict,
		reported,
		current,
	)
}
