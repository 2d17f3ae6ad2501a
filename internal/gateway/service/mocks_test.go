package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/t-amuah/govgh-gateway/internal/common/govghprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

func testLogger(t *testing.T) *logging.ZapLogger {
	t.Helper()
	logger, err := logging.NewZapLogger(zapcore.ErrorLevel)
	require.NoError(t, err)
	return logger
}

// memOrderStore is an in-memory OrderRepository: tests assert against the
// final stored state the way they would against the database.
type memOrderStore struct {
	mux    sync.Mutex
	orders map[string]data.Order
	events []data.WebhookEvent
}

func newMemOrderStore(orders ...data.Order) *memOrderStore {
	store := &memOrderStore{
		orders: make(map[string]data.Order),
	}
	for _, order := range orders {
		store.orders[order.ID] = order
	}
	return store
}

func (s *memOrderStore) InsertOrder(_ context.Context, order *data.Order) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.orders[order.ID]; ok {
		return data.ErrUniqueConstraintViolation
	}
	s.orders[order.ID] = *order
	return nil
}

func (s *memOrderStore) GetOrder(_ context.Context, orderID string) (data.Order, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return data.Order{}, data.ErrOrderNotFound
	}
	return order, nil
}

func (s *memOrderStore) GetOrderByInvoiceNumber(_ context.Context, invoiceNumber string) (data.Order, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, order := range s.orders {
		if order.InvoiceNumber != "" && order.InvoiceNumber == invoiceNumber {
			return order, nil
		}
	}
	return data.Order{}, data.ErrOrderNotFound
}

func (s *memOrderStore) SetOrderCheckout(
	_ context.Context,
	orderID, invoiceNumber, checkoutURL string,
	status data.Status,
) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return data.ErrOrderNotFound
	}
	order.InvoiceNumber = invoiceNumber
	order.CheckoutURL = checkoutURL
	order.Status = status
	s.orders[orderID] = order
	return nil
}

func (s *memOrderStore) SetOrderStatus(_ context.Context, orderID string, status data.Status) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return data.ErrOrderNotFound
	}
	order.Status = status
	s.orders[orderID] = order
	return nil
}

func (s *memOrderStore) InsertWebhookEvent(_ context.Context, event data.WebhookEvent) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *memOrderStore) mustGet(t *testing.T, orderID string) data.Order {
	t.Helper()
	order, err := s.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	return order
}

// passthroughTransactionManager runs the body without a real transaction.
type passthroughTransactionManager struct{}

func (passthroughTransactionManager) DoWithTransaction(
	ctx context.Context,
	f func(ctx context.Context) error,
) error {
	return f(ctx)
}

type MockCheckoutClient struct {
	mock.Mock
}

func (m *MockCheckoutClient) Submit(
	ctx context.Context,
	request govghprotocol.CheckoutRequest,
) (govghprotocol.CheckoutResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(govghprotocol.CheckoutResponse), args.Error(1)
}
