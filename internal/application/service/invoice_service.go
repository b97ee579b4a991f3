package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	"github.com/freshkart/grocery-pos/internal/domain/repository"
	"github.com/freshkart/grocery-pos/pkg/apperror"
	"github.com/freshkart/grocery-pos/pkg/metrics"
	"go.uber.org/zap"
)

// InvoiceService issues at most one invoice document per settled order.
type InvoiceService struct {
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
	log         *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(orderRepo repository.OrderRepository, invoiceRepo repository.InvoiceRepository, log *zap.Logger) *InvoiceService {
	return &InvoiceService{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		log:         log,
	}
}

// IssueInvoice returns the order's invoice, creating it on first request.
// The number is derived deterministically from the issue date and order id,
// so re-requesting returns the same number. A concurrent issuer losing the
// unique-index race is resolved by reading back the winner's row.
func (s *InvoiceService) IssueInvoice(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusPaid {
		return nil, apperror.ErrOrderNotSettled
	}

	existing, err := s.invoiceRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	if existing != nil {
		return existing, nil
	}

	invoice := &entity.Invoice{
		OrderID:       orderID,
		InvoiceNumber: entity.InvoiceNumberFor(orderID, time.Now()),
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		// Unique index on order_id: a concurrent issuer got there first.
		winner, getErr := s.invoiceRepo.GetByOrderID(ctx, orderID)
		if getErr == nil && winner != nil {
			return winner, nil
		}
		return nil, apperror.NewPersistenceError(err)
	}

	metrics.InvoicesIssued.Inc()
	s.log.Info("invoice issued",
		zap.String("order_id", orderID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
	)
	return invoice, nil
}
