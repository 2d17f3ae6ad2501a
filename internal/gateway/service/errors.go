package service

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderExists means order registration collided with an already
	// registered order id.
	ErrOrderExists = errors.New("order is already registered")

	// ErrOrderStateConflict means a signal arrived for an order whose current
	// status does not permit the requested transition, e.g. a webhook for an
	// order that never went through checkout.
	ErrOrderStateConflict = errors.New("order state conflict")
)
