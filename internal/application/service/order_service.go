package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	"github.com/freshkart/grocery-pos/internal/domain/repository"
	"github.com/freshkart/grocery-pos/pkg/apperror"
	"github.com/freshkart/grocery-pos/pkg/metrics"
	"go.uber.org/zap"
)

// OrderService builds draft orders from the catalog and handles
// cancellation, including the stock restore for settled orders.
type OrderService struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	catalog      CatalogLookup
	txm          repository.TxManager
	log          *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	catalog CatalogLookup,
	txm repository.TxManager,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		catalog:      catalog,
		txm:          txm,
		log:          log,
	}
}

// OrderLineInput represents one requested line of a new order. UnitPrice
// overrides the catalog cost when set.
type OrderLineInput struct {
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice *float64
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID     *uuid.UUID
	CashierID      uuid.UUID
	Lines          []OrderLineInput
	DiscountAmount float64
	TaxPercent     float64
	Notes          *string
}

// CreateOrder resolves every requested item against the catalog, snapshots
// name and price into immutable lines, computes the totals and persists the
// order in DRAFT state. Stock is untouched until settlement.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.ErrEmptyOrder
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, apperror.NewPersistenceError(err)
		}
		if customer == nil {
			return nil, apperror.NewInvalidReferenceError("Customer not found")
		}
	}

	itemIDs := make([]uuid.UUID, len(input.Lines))
	for i, line := range input.Lines {
		itemIDs[i] = line.ItemID
	}

	resolved, err := s.catalog.Resolve(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	lines := make([]entity.OrderLine, 0, len(input.Lines))
	for _, req := range input.Lines {
		item := resolved[req.ItemID]

		unitPrice := item.Cost
		if req.UnitPrice != nil {
			unitPrice = entity.CentsFromDecimal(*req.UnitPrice)
		}
		lineTotal := unitPrice * int64(req.Quantity)
		subtotal += lineTotal

		lines = append(lines, entity.OrderLine{
			ItemID:    req.ItemID,
			ItemName:  item.Name,
			Quantity:  req.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}

	discount := entity.CentsFromDecimal(input.DiscountAmount)
	if discount < 0 {
		discount = 0
	}
	taxable := subtotal - discount
	if taxable < 0 {
		taxable = 0
	}
	taxAmount := entity.RoundPercent(taxable, input.TaxPercent)

	order := &entity.Order{
		CustomerID:     input.CustomerID,
		CashierID:      input.CashierID,
		Status:         enum.OrderStatusDraft,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      taxAmount,
		TotalAmount:    taxable + taxAmount,
		Notes:          input.Notes,
		Lines:          lines,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.NewPersistenceError(err)
	}

	metrics.OrdersCreated.Inc()
	s.log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("cashier_id", input.CashierID.String()),
		zap.Int("lines", len(lines)),
		zap.Float64("total", entity.DecimalFromCents(order.TotalAmount)),
	)

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// GetOrder retrieves an order with its lines and payments.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// CancelOrder transitions an order to CANCELLED. A settled order has its
// stock restored line by line in the same transaction; a draft order never
// touched stock so none is restored. Cancelling an already cancelled order
// is a no-op success. The order row lock is the same one AddPayment takes,
// so cancellation cannot race a concurrent settlement.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	var cancelled bool

	err := s.txm.Transaction(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return apperror.NewPersistenceError(err)
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}

		if order.Status == enum.OrderStatusCancelled {
			return nil
		}

		if order.Status == enum.OrderStatusPaid {
			if err := s.itemRepo.AdjustStockBatch(ctx, order.StockDeltas()); err != nil {
				return apperror.NewPersistenceError(err)
			}
		}

		if err := s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled); err != nil {
			return apperror.NewPersistenceError(err)
		}
		cancelled = true
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled {
		metrics.OrdersCancelled.Inc()
		s.log.Info("order cancelled", zap.String("order_id", orderID.String()))
	}
	return nil
}
