package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
)

// OrderRepository defines the interface for order persistence. Create stores
// the header and its lines as one atomic unit.
type OrderRepository interface {
	// Create persists an order together with its lines; either both are
	// visible afterwards or neither is.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID retrieves an order header, or nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetWithDetails retrieves an order with its lines, payments and customer.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetForUpdate retrieves an order with its lines while holding an
	// exclusive row lock on the header for the duration of the surrounding
	// transaction. Must be called inside TxManager.Transaction.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// UpdateStatus transitions the order to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
}

// PaymentRepository defines the interface for payment persistence. Payments
// are append-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// SumByOrderID returns the cumulative amount paid against an order, in cents.
	SumByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

// InvoiceRepository defines the interface for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByOrderID returns the invoice for an order, or nil if none exists.
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)
}
