package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/domain"
)

type orderArchive struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderArchive creates the Postgres-backed order sink
func NewOrderArchive(db *sql.DB, logger *zap.Logger) *orderArchive {
	return &orderArchive{
		db:     db,
		logger: logger,
	}
}

// SaveOrder records a finished bill. Lines are stored as JSONB.
func (a *orderArchive) SaveOrder(ctx context.Context, order *domain.Order) error {
	linesJSON, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal order lines: %w", err)
	}

	query := `
		INSERT INTO orders (id, customer_name, customer_phone, table_name, payment_method, service_type, lines, subtotal, discount, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = a.db.ExecContext(ctx, query,
		order.ID,
		order.Customer.Name,
		order.Customer.Phone,
		order.Table,
		string(order.PaymentMethod),
		string(order.ServiceType),
		linesJSON,
		order.Subtotal,
		order.Discount,
		order.Total,
		order.CreatedAt,
	)

	if err != nil {
		a.logger.Error("Failed to save order", zap.String("order_id", order.ID), zap.Error(err))
		return err
	}

	return nil
}
