package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	"github.com/freshkart/grocery-pos/internal/domain/repository"
	"github.com/freshkart/grocery-pos/pkg/apperror"
)

// CatalogLookup resolves item ids to their current name and unit cost. The
// order engine consumes this contract; any unresolved id is an error.
type CatalogLookup interface {
	Resolve(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Item, error)
}

// CatalogService handles catalog item operations and implements CatalogLookup.
type CatalogService struct {
	itemRepo repository.ItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(itemRepo repository.ItemRepository) *CatalogService {
	return &CatalogService{itemRepo: itemRepo}
}

// Resolve fetches all requested items in one query and fails if any id is
// unknown, naming the first missing one.
func (s *CatalogService) Resolve(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Item, error) {
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	resolved := make(map[uuid.UUID]entity.Item, len(items))
	for _, item := range items {
		resolved[item.ID] = item
	}

	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			return nil, apperror.NewInvalidReferenceError(fmt.Sprintf("Item %s not found", id))
		}
	}

	return resolved, nil
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name     string
	Category *string
	Cost     float64
	Quantity int
}

// CreateItem adds a new catalog item with its opening stock quantity.
func (s *CatalogService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if input.Cost < 0 {
		return nil, apperror.NewBadRequestError("Item cost cannot be negative")
	}

	item := &entity.Item{
		Name:     input.Name,
		Category: input.Category,
		Quantity: input.Quantity,
	}
	item.SetCostFromDecimal(input.Cost)

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *CatalogService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists catalog items, optionally filtered by a name search.
func (s *CatalogService) ListItems(ctx context.Context, search string) ([]entity.Item, error) {
	items, err := s.itemRepo.List(ctx, search)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return items, nil
}
