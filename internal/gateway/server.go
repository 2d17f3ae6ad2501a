package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
	"github.com/t-amuah/govgh-gateway/internal/gateway/handlers"
	"github.com/t-amuah/govgh-gateway/internal/gateway/middleware"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

type Config struct {
	ServerAddress   string
	PublicBaseURL   string
	CallbackToken   string
	Title           string
	Description     string
	Enabled         bool
	ShutdownTimeout time.Duration
}

type Server struct {
	logger     *logging.ZapLogger
	httpServer *http.Server
	cfg        Config
}

func NewServer(
	cfg Config,
	ordersService handlers.OrderRegistrationService,
	orderGettingService handlers.OrderGettingService,
	checkoutService handlers.CheckoutService,
	webhookService handlers.WebhookService,
	logger *logging.ZapLogger,
) *Server {
	srv := &http.Server{
		Addr: cfg.ServerAddress,
		Handler: createMux(
			cfg,
			ordersService,
			orderGettingService,
			checkoutService,
			webhookService,
			logger,
		),
	}

	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: srv,
	}
}

func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server ListenAndServe failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func createMux(
	cfg Config,
	ordersService handlers.OrderRegistrationService,
	orderGettingService handlers.OrderGettingService,
	checkoutService handlers.CheckoutService,
	webhookService handlers.WebhookService,
	logger *logging.ZapLogger,
) *chi.Mux {
	orderRegistrationHandler := handlers.NewOrderRegistrationHandler(ordersService, logger)
	orderGettingHandler := handlers.NewOrderGettingHandler(orderGettingService, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	webhookHandler := handlers.NewWebhookHandler(webhookService, logger)
	gatewayInfoHandler := handlers.NewGatewayInfoHandler(
		cfg.Enabled,
		cfg.Title,
		cfg.Description,
		cfg.PublicBaseURL,
		logger,
	)

	callbackToken := middleware.NewCallbackToken(cfg.CallbackToken, logger)

	router := chi.NewRouter()
	router.Use(
		middleware.NewRequestID().CreateHandler,
		middleware.NewLoggerContext().CreateHandler,
		middleware.NewPanicRecover(logger).CreateHandler,
	)

	router.Get("/api/gateway", gatewayInfoHandler.ServeHTTP)

	router.Route("/api/orders", func(router chi.Router) {
		router.Post("/", orderRegistrationHandler.ServeHTTP)
		router.Get("/{orderID}", orderGettingHandler.ServeHTTP)
		if cfg.Enabled {
			router.Post("/{orderID}/checkout", checkoutHandler.ServeHTTP)
		} else {
			router.Post("/{orderID}/checkout", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			})
		}
	})

	router.With(callbackToken.CreateHandler).Post(govgh.WebhookRoute, webhookHandler.ServeHTTP)

	return router
}
