package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
	"github.com/t-amuah/govgh-gateway/internal/gateway/service"
)

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) InitiateCheckout(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func checkoutRouter(handler *CheckoutHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/api/orders/{orderID}/checkout", handler.ServeHTTP)
	return router
}

func TestCheckoutHandlerSuccess(t *testing.T) {
	checkoutService := &MockCheckoutService{}
	checkoutService.On("InitiateCheckout", mock.Anything, "O1").Return("https://pay/x", nil)
	router := checkoutRouter(NewCheckoutHandler(checkoutService, testLogger(t)))

	request := httptest.NewRequest(http.MethodPost, "/api/orders/O1/checkout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"redirect_url": "https://pay/x"}`, recorder.Body.String())
}

func TestCheckoutHandlerErrors(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{
			name:         "unknown order",
			serviceErr:   service.ErrOrderNotFound,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "state conflict",
			serviceErr:   fmt.Errorf("%w: already completed", service.ErrOrderStateConflict),
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid order",
			serviceErr:   fmt.Errorf("error building invoice: %w", govgh.ErrInvalidOrder),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "declined by provider",
			serviceErr:   fmt.Errorf("error submitting checkout: %w: invalid api key", govgh.ErrCheckoutDeclined),
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "transport failure",
			serviceErr:   fmt.Errorf("error submitting checkout: %w", govgh.ErrTransport),
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "protocol violation",
			serviceErr:   fmt.Errorf("error submitting checkout: %w", govgh.ErrProtocol),
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "unexpected error",
			serviceErr:   fmt.Errorf("database gone"),
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			checkoutService := &MockCheckoutService{}
			checkoutService.On("InitiateCheckout", mock.Anything, "O1").Return("", test.serviceErr)
			router := checkoutRouter(NewCheckoutHandler(checkoutService, testLogger(t)))

			request := httptest.NewRequest(http.MethodPost, "/api/orders/O1/checkout", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, test.expectedCode, recorder.Code)
		})
	}
}
