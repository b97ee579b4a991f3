package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
)

// ItemRepository defines the interface for catalog item operations; it is
// both the catalog lookup and the stock ledger consumed by billing.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	// GetByIDs retrieves multiple items in a single query; absent ids are
	// simply missing from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error)
	List(ctx context.Context, search string) ([]entity.Item, error)
	// AdjustStockBatch applies all deltas (positive or negative) as a set.
	// When called inside TxManager.Transaction the adjustments commit or
	// roll back with the rest of the unit; quantities are not clamped at
	// zero. An error is returned if any item row is missing.
	AdjustStockBatch(ctx context.Context, deltas map[uuid.UUID]int) error
}
