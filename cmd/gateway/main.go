package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/t-amuah/govgh-gateway/cmd/gateway/config"
	"github.com/t-amuah/govgh-gateway/internal/gateway"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data/database"
	"github.com/t-amuah/govgh-gateway/internal/gateway/data/dbrepository"
	"github.com/t-amuah/govgh-gateway/internal/gateway/govgh"
	"github.com/t-amuah/govgh-gateway/internal/gateway/service"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
	"github.com/t-amuah/govgh-gateway/pkg/pgxstorage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewZapLogger(zapcore.DebugLevel)
	if err != nil {
		log.Fatal(err)
	}

	dbFactory := database.NewPgxDatabaseFactory(cfg.DB)
	storage, err := pgxstorage.New(dbFactory)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Close()

	repository := dbrepository.New(storage, logger)
	transactionManager := pgxstorage.NewTransactionsManager(storage)

	invoiceBuilder := govgh.NewInvoiceBuilder(cfg.Merchant)
	checkoutClient := govgh.NewClient(cfg.Client, logger)

	ordersService := service.NewOrders(repository)
	reconciliationService := service.NewReconciliation(
		repository,
		transactionManager,
		invoiceBuilder,
		checkoutClient,
		logger,
	)

	server := gateway.NewServer(
		cfg.Server,
		ordersService,
		ordersService,
		reconciliationService,
		reconciliationService,
		logger,
	)

	rootCtx, cancelCtx := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGABRT,
	)
	defer cancelCtx()

	if err := run(rootCtx, cfg, server, logger); err != nil {
		logger.ErrorCtx(rootCtx, "Server shutdown with error", zap.Error(err))
	} else {
		logger.InfoCtx(rootCtx, "Server shutdown gracefully")
	}
}

func run(rootCtx context.Context, cfg *config.Config, server *gateway.Server, logger *logging.ZapLogger) error {
	g, ctx := errgroup.WithContext(rootCtx)

	context.AfterFunc(ctx, func() {
		ctx, cancelCtx := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelCtx()

		<-ctx.Done()
		log.Fatal("failed to gracefully shutdown the server")
	})

	g.Go(func() error {
		if err := server.Run(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer logger.InfoCtx(ctx, "Shutting down server")
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("goroutine error occured: %w", err)
	}

	return nil
}
