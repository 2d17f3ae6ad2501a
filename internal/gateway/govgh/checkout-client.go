package govgh

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/common/govghprotocol"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

const defaultSubmitTimeout = 45 * time.Second

type ClientConfig struct {
	EndpointURL   string
	SubmitTimeout time.Duration
}

// Client submits checkout requests to the GovGH checkout endpoint.
type Client struct {
	logger *logging.ZapLogger
	client *resty.Client
	cfg    ClientConfig
}

func NewClient(cfg ClientConfig, logger *logging.ZapLogger) *Client {
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = defaultSubmitTimeout
	}
	return &Client{
		cfg:    cfg,
		logger: logger,
		client: resty.New().SetTimeout(cfg.SubmitTimeout),
	}
}

// Submit posts the checkout request and interprets the synchronous reply.
// Provider status 0 is success, anything else a business decline carrying
// the provider message.
func (c *Client) Submit(ctx context.Context, request govghprotocol.CheckoutRequest) (govghprotocol.CheckoutResponse, error) {
	resp, err := c.client.
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(c.cfg.EndpointURL)
	if err != nil {
		return govghprotocol.CheckoutResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	// The provider reports declines in the body even on non-2xx replies,
	// so the body is decoded before the HTTP status is considered.
	res := govghprotocol.CheckoutResponse{}
	unmarshalErr := json.Unmarshal(resp.Body(), &res)
	if unmarshalErr == nil && res.Status != govghprotocol.StatusOK {
		c.logger.DebugCtx(
			ctx,
			"checkout declined",
			zap.Int("providerStatus", res.Status),
			zap.String("message", res.Message),
		)
		return govghprotocol.CheckoutResponse{}, fmt.Errorf("%w: %s", ErrCheckoutDeclined, res.Message)
	}

	if !resp.IsSuccess() {
		c.logger.DebugCtx(
			ctx,
			"checkout endpoint answered outside 2xx",
			zap.Int("statusCode", resp.StatusCode()),
		)
		return govghprotocol.CheckoutResponse{}, fmt.Errorf("%w: unexpected status code %v", ErrTransport, resp.StatusCode())
	}

	if unmarshalErr != nil {
		c.logger.ErrorCtx(ctx, "error unmarshalling checkout response", zap.Error(unmarshalErr))
		return govghprotocol.CheckoutResponse{}, fmt.Errorf("%w: %w", ErrProtocol, unmarshalErr)
	}
	if res.CheckoutURL == "" {
		return govghprotocol.CheckoutResponse{}, fmt.Errorf("%w: success reply without checkout_url", ErrProtocol)
	}
	if res.InvoiceNumber == "" {
		return govghprotocol.CheckoutResponse{}, fmt.Errorf("%w: success reply without invoice_number", ErrProtocol)
	}

	c.logger.DebugCtx(ctx, "checkout created", zap.String("checkoutURL", res.CheckoutURL))
	return res, nil
}
