package dbrepository

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/t-amuah/govgh-gateway/internal/gateway/data"
	"github.com/t-amuah/govgh-gateway/pkg/logging"
)

type DBStorage interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) (pgx.Row, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryValue(ctx context.Context, query string, args []any, dest []any) error
}

type DBRepository struct {
	storage DBStorage
	logger  *logging.ZapLogger
}

func New(storage DBStorage, logger *logging.ZapLogger) *DBRepository {
	return &DBRepository{
		storage: storage,
		logger:  logger,
	}
}

//go:embed sql/insert_order.sql
var insertOrderQuery string

func (db *DBRepository) InsertOrder(ctx context.Context, order *data.Order) error {
	_, err := db.storage.Exec(
		ctx,
		insertOrderQuery,
		order.ID,
		string(order.Status),
		order.Total,
		order.Currency,
		order.FirstName,
		order.LastName,
		order.PhoneNumber,
		order.Email,
		order.CreatedAt,
	)
	if err != nil {
		return handleSQLError(err)
	}
	return nil
}

//go:embed sql/select_order.sql
var selectOrderQuery string

func (db *DBRepository) GetOrder(ctx context.Context, orderID string) (data.Order, error) {
	db.logger.DebugCtx(ctx, "getting order", zap.String("orderID", orderID))
	return db.queryOrder(ctx, selectOrderQuery, orderID)
}

//go:embed sql/select_order_by_invoice.sql
var selectOrderByInvoiceQuery string

func (db *DBRepository) GetOrderByInvoiceNumber(ctx context.Context, invoiceNumber string) (data.Order, error) {
	db.logger.DebugCtx(ctx, "getting order by invoice", zap.String("invoiceNumber", invoiceNumber))
	return db.queryOrder(ctx, selectOrderByInvoiceQuery, invoiceNumber)
}

func (db *DBRepository) queryOrder(ctx context.Context, query string, arg any) (data.Order, error) {
	var order data.Order
	err := db.storage.QueryValue(
		ctx,
		query,
		[]any{arg},
		[]any{
			&order.ID,
			&order.Status,
			&order.Total,
			&order.Currency,
			&order.FirstName,
			&order.LastName,
			&order.PhoneNumber,
			&order.Email,
			&order.InvoiceNumber,
			&order.CheckoutURL,
			&order.CreatedAt,
			&order.UpdatedAt,
		},
	)
	if err != nil {
		return data.Order{}, handleSQLError(err)
	}
	return order, nil
}

//go:embed sql/update_order_checkout.sql
var updateOrderCheckoutQuery string

func (db *DBRepository) SetOrderCheckout(
	ctx context.Context,
	orderID string,
	invoiceNumber string,
	checkoutURL string,
	status data.Status,
) error {
	_, err := db.storage.Exec(ctx, updateOrderCheckoutQuery, orderID, invoiceNumber, checkoutURL, string(status))
	if err != nil {
		return handleSQLError(err)
	}
	return nil
}

//go:embed sql/update_order_status.sql
var updateOrderStatusQuery string

func (db *DBRepository) SetOrderStatus(ctx context.Context, orderID string, status data.Status) error {
	_, err := db.storage.Exec(ctx, updateOrderStatusQuery, orderID, string(status))
	if err != nil {
		return handleSQLError(err)
	}
	return nil
}

//go:embed sql/insert_webhook_event.sql
var insertWebhookEventQuery string

func (db *DBRepository) InsertWebhookEvent(ctx context.Context, event data.WebhookEvent) error {
	_, err := db.storage.Exec(
		ctx,
		insertWebhookEventQuery,
		event.InvoiceNumber,
		event.Status,
		string(event.Payload),
		event.ReceivedAt,
	)
	if err != nil {
		return handleSQLError(err)
	}
	return nil
}

func handleSQLError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return data.ErrOrderNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return data.ErrUniqueConstraintViolation
		}
	}
	return err
}
