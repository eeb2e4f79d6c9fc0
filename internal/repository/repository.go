package repository

import (
	"context"

	"github.com/spicetable/pos/internal/domain"
)

// ProductRepository supplies the catalog's product records. The core
// only reads; editing the menu happens through the import tool.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	CreateBatch(ctx context.Context, products []domain.Product) error
}

// OrderArchive durably records finished bills. It is the persistence
// sink the checkout flow hands order snapshots to.
type OrderArchive interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
}

// Repositories aggregates the data-store access points
type Repositories struct {
	Product ProductRepository
	Order   OrderArchive
}
