package govgh

import (
	"fmt"
	"strings"

	"github.com/t-amuah/govgh-gateway/internal/common/govghprotocol"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
)

const (
	// WebhookRoute is the fixed callback route GovGH posts payment outcomes to.
	WebhookRoute = "/wc-api/govgh_payment_webhook"

	redirectRoute = "/checkout/return"
)

// MerchantConfig carries the fixed merchant fields every checkout request
// shares. Injected once at construction so one binary can serve different
// merchant setups.
type MerchantConfig struct {
	APIKey        string
	MDABranchCode string
	ServiceCode   string
	AccountNumber string
	Memo          string
	Currency      string
	BaseURL       string
}

type InvoiceBuilder struct {
	cfg MerchantConfig
}

func NewInvoiceBuilder(cfg MerchantConfig) *InvoiceBuilder {
	return &InvoiceBuilder{
		cfg: cfg,
	}
}

// Build derives the provider checkout request from an order. Pure: no side
// effects, no I/O.
func (b *InvoiceBuilder) Build(order data.Order) (govghprotocol.CheckoutRequest, error) {
	if !order.Total.IsPositive() {
		return govghprotocol.CheckoutRequest{}, fmt.Errorf("%w: total must be positive, got %s", ErrInvalidOrder, order.Total)
	}
	for field, value := range map[string]string{
		"firstname":   order.FirstName,
		"lastname":    order.LastName,
		"phonenumber": order.PhoneNumber,
		"email":       order.Email,
	} {
		if strings.TrimSpace(value) == "" {
			return govghprotocol.CheckoutRequest{}, fmt.Errorf("%w: missing billing field %q", ErrInvalidOrder, field)
		}
	}

	baseURL := strings.TrimSuffix(b.cfg.BaseURL, "/")
	return govghprotocol.CheckoutRequest{
		Request:       govghprotocol.RequestCreate,
		APIKey:        b.cfg.APIKey,
		MDABranchCode: b.cfg.MDABranchCode,
		FirstName:     order.FirstName,
		LastName:      order.LastName,
		PhoneNumber:   order.PhoneNumber,
		Email:         order.Email,
		ApplicationID: order.ID,
		InvoiceItems: []govghprotocol.InvoiceItem{
			{
				ServiceCode:   b.cfg.ServiceCode,
				Amount:        order.Total,
				Currency:      b.cfg.Currency,
				Memo:          b.cfg.Memo,
				AccountNumber: b.cfg.AccountNumber,
			},
		},
		RedirectURL: fmt.Sprintf("%s%s/%s", baseURL, redirectRoute, order.ID),
		PostURL:     baseURL + WebhookRoute,
	}, nil
}
