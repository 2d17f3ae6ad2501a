package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
)

// Orders is the registration boundary of the order store: the upstream
// checkout system hands orders over here before any payment leg runs.
type Orders struct {
	orderRepository OrderRepository
}

type NewOrder struct {
	ID          string
	Total       decimal.Decimal
	Currency    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
}

func NewOrders(orderRepository OrderRepository) *Orders {
	return &Orders{
		orderRepository: orderRepository,
	}
}

func (o *Orders) RegisterOrder(ctx context.Context, newOrder NewOrder) error {
	order := &data.Order{
		ID:          newOrder.ID,
		Status:      data.NewStatus,
		Total:       newOrder.Total,
		Currency:    newOrder.Currency,
		FirstName:   newOrder.FirstName,
		LastName:    newOrder.LastName,
		PhoneNumber: newOrder.PhoneNumber,
		Email:       newOrder.Email,
		CreatedAt:   time.Now(),
	}
	err := o.orderRepository.InsertOrder(ctx, order)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrUniqueConstraintViolation):
			return ErrOrderExists
		default:
			return fmt.Errorf("error inserting order: %w", err)
		}
	}
	return nil
}

func (o *Orders) GetOrder(ctx context.Context, orderID string) (data.Order, error) {
	order, err := o.orderRepository.GetOrder(ctx, orderID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrOrderNotFound):
			return data.Order{}, ErrOrderNotFound
		default:
			return data.Order{}, fmt.Errorf("error getting order: %w", err)
		}
	}
	return order, nil
}
