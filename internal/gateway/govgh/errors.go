package govgh

import "errors"

var (
	// ErrInvalidOrder means the order cannot be turned into a checkout
	// request (non-positive total, missing billing fields).
	ErrInvalidOrder = errors.New("order is not valid for checkout")

	// ErrTransport means the provider could not be reached or answered
	// outside its contract's success range.
	ErrTransport = errors.New("checkout transport failure")

	// ErrProtocol means the provider answered 2xx with a body that violates
	// the checkout contract.
	ErrProtocol = errors.New("checkout protocol violation")

	// ErrCheckoutDeclined means the provider rejected the checkout request
	// as a business failure; the wrapped text carries the provider message.
	ErrCheckoutDeclined = errors.New("checkout declined")

	ErrInvalidWebhook = errors.New("invalid webhook data")
)
