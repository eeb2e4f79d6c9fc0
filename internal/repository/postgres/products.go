package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/domain"
)

type productRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB, logger *zap.Logger) *productRepository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every product in catalog insertion order.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, price, category
		FROM products
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category); err != nil {
			r.logger.Error("Failed to scan product", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// CreateBatch inserts products, generating IDs where missing.
func (r *productRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	query := `
		INSERT INTO products (id, name, price, category, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for i := range products {
		if products[i].ID == uuid.Nil {
			products[i].ID = uuid.New()
		}
		if _, err := tx.ExecContext(ctx, query,
			products[i].ID,
			products[i].Name,
			products[i].Price,
			products[i].Category,
			now,
		); err != nil {
			r.logger.Error("Failed to insert product", zap.String("name", products[i].Name), zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}
