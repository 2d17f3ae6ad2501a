package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t-amuah/govgh-gateway/internal/common/govghprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
)

func TestNextWebhookStatus(t *testing.T) {
	tests := []struct {
		name          string
		current       data.Status
		reported      govghprotocol.PaymentStatus
		expectedNext  data.Status
		expectedApply bool
		expectedErr   error
	}{
		{
			name:          "awaiting payment to completed",
			current:       data.AwaitingPaymentStatus,
			reported:      govghprotocol.Success,
			expectedNext:  data.CompletedStatus,
			expectedApply: true,
		},
		{
			name:          "awaiting payment to failed",
			current:       data.AwaitingPaymentStatus,
			reported:      govghprotocol.Failed,
			expectedNext:  data.FailedStatus,
			expectedApply: true,
		},
		{
			name:          "awaiting payment to pending external",
			current:       data.AwaitingPaymentStatus,
			reported:      govghprotocol.Pending,
			expectedNext:  data.PendingExternalStatus,
			expectedApply: true,
		},
		{
			name:          "pending external to completed",
			current:       data.PendingExternalStatus,
			reported:      govghprotocol.Success,
			expectedNext:  data.CompletedStatus,
			expectedApply: true,
		},
		{
			name:          "pending external to failed",
			current:       data.PendingExternalStatus,
			reported:      govghprotocol.Failed,
			expectedNext:  data.FailedStatus,
			expectedApply: true,
		},
		{
			name:          "pending external repeated pending is a no-op",
			current:       data.PendingExternalStatus,
			reported:      govghprotocol.Pending,
			expectedNext:  data.PendingExternalStatus,
			expectedApply: false,
		},
		{
			name:          "completed is terminal",
			current:       data.CompletedStatus,
			reported:      govghprotocol.Failed,
			expectedNext:  data.CompletedStatus,
			expectedApply: false,
		},
		{
			name:          "failed is terminal",
			current:       data.FailedStatus,
			reported:      govghprotocol.Success,
			expectedNext:  data.FailedStatus,
			expectedApply: false,
		},
		{
			name:          "unknown status is ignored",
			current:       data.AwaitingPaymentStatus,
			reported:      govghprotocol.Unknown,
			expectedNext:  data.AwaitingPaymentStatus,
			expectedApply: false,
		},
		{
			name:        "webhook before checkout is a conflict",
			current:     data.NewStatus,
			reported:    govghprotocol.Success,
			expectedErr: ErrOrderStateConflict,
		},
		{
			name:        "webhook for unloaded order is a conflict",
			current:     data.NullStatus,
			reported:    govghprotocol.Pending,
			expectedErr: ErrOrderStateConflict,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next, apply, err := nextWebhookStatus(test.current, test.reported)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expectedNext, next)
			assert.Equal(t, test.expectedApply, apply)
		})
	}
}
