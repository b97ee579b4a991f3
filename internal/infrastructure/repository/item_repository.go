package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	domainRepo "github.com/freshkart/grocery-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return conn(ctx, r.db).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := conn(ctx, r.db).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// GetByIDs retrieves multiple items by their IDs in a single query
func (r *itemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	if len(ids) == 0 {
		return []entity.Item{}, nil
	}
	var items []entity.Item
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *itemRepository) List(ctx context.Context, search string) ([]entity.Item, error) {
	query := conn(ctx, r.db).Model(&entity.Item{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var items []entity.Item
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

// AdjustStockBatch applies every delta with a relative UPDATE so concurrent
// adjustments on different items never lose writes. Quantities are allowed
// to go negative: oversell is surfaced as data, not rejected here. A missing
// item row fails the whole batch so the caller's transaction rolls back.
func (r *itemRepository) AdjustStockBatch(ctx context.Context, deltas map[uuid.UUID]int) error {
	if len(deltas) == 0 {
		return nil
	}

	q := conn(ctx, r.db)
	for id, delta := range deltas {
		result := q.Model(&entity.Item{}).
			Where("id = ?", id).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("stock adjustment: item %s not found", id)
		}
	}
	return nil
}
