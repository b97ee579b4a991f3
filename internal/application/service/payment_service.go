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

// PaymentService records payments against draft orders and settles an order
// the moment cumulative payments cover its total.
type PaymentService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	itemRepo    repository.ItemRepository
	invoices    *InvoiceService
	txm         repository.TxManager
	log         *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	itemRepo repository.ItemRepository,
	invoices *InvoiceService,
	txm repository.TxManager,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		itemRepo:    itemRepo,
		invoices:    invoices,
		txm:         txm,
		log:         log,
	}
}

// AddPaymentInput represents the add payment input
type AddPaymentInput struct {
	OrderID         uuid.UUID
	Method          enum.PaymentMethod
	Amount          float64
	TxnRef          *string
	GenerateInvoice bool
}

// PaymentResult reports the order's money position after a payment. Due may
// be negative: overpayment is accepted and reported, not rejected.
type PaymentResult struct {
	Paid          float64 `json:"paid"`
	Due           float64 `json:"due"`
	Settled       bool    `json:"settled"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
}

// AddPayment records one payment against a draft order. The status check,
// payment insert, due computation and, on full payment, the PAID transition
// plus the batch stock decrement (and optional invoice) all run inside one
// transaction holding an exclusive lock on the order row. Two concurrent payments on the same order therefore serialize,
// and the second sees the first's effect: settlement happens exactly once
// and stock is never decremented twice.
func (s *PaymentService) AddPayment(ctx context.Context, input *AddPaymentInput) (*PaymentResult, error) {
	if !input.Method.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}
	amount := entity.CentsFromDecimal(input.Amount)
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}

	var result PaymentResult

	err := s.txm.Transaction(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetForUpdate(ctx, input.OrderID)
		if err != nil {
			return apperror.NewPersistenceError(err)
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		switch order.Status {
		case enum.OrderStatusPaid:
			return apperror.ErrOrderAlreadySettled
		case enum.OrderStatusCancelled:
			return apperror.ErrOrderCancelled
		}

		payment := &entity.Payment{
			OrderID: order.ID,
			Method:  input.Method,
			Amount:  amount,
			TxnRef:  input.TxnRef,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return apperror.NewPersistenceError(err)
		}

		paid, err := s.paymentRepo.SumByOrderID(ctx, order.ID)
		if err != nil {
			return apperror.NewPersistenceError(err)
		}
		due := order.TotalAmount - paid

		result.Paid = entity.DecimalFromCents(paid)
		result.Due = entity.DecimalFromCents(due)

		if due > 0 {
			return nil
		}

		// Fully paid: settle and take the stock in the same unit.
		if err := s.orderRepo.UpdateStatus(ctx, order.ID, enum.OrderStatusPaid); err != nil {
			return apperror.NewPersistenceError(err)
		}

		decrements := make(map[uuid.UUID]int, len(order.Lines))
		for itemID, qty := range order.StockDeltas() {
			decrements[itemID] = -qty
		}
		if err := s.itemRepo.AdjustStockBatch(ctx, decrements); err != nil {
			return apperror.NewPersistenceError(err)
		}
		result.Settled = true

		if input.GenerateInvoice {
			invoice, err := s.invoices.IssueInvoice(ctx, order.ID)
			if err != nil {
				return err
			}
			result.InvoiceNumber = invoice.InvoiceNumber
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.WithLabelValues(string(input.Method)).Inc()
	if result.Settled {
		metrics.OrdersSettled.Inc()
		s.log.Info("order settled",
			zap.String("order_id", input.OrderID.String()),
			zap.Float64("paid", result.Paid),
			zap.Float64("due", result.Due),
		)
	}

	return &result, nil
}
