package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	"github.com/freshkart/grocery-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDraftOrder creates the worked example: subtotal 130.00, discount
// 10.00, 5% tax on 120.00 -> total 126.00.
func newDraftOrder(t *testing.T, env *testEnv) (*entity.Order, *entity.Item, *entity.Item) {
	t.Helper()
	rice := env.createItem(t, "Basmati Rice", 25.00, 10)
	oil := env.createItem(t, "Olive Oil", 80.00, 5)

	order, err := env.orders.CreateOrder(context.Background(), &CreateOrderInput{
		CashierID: uuid.New(),
		Lines: []OrderLineInput{
			{ItemID: rice.ID, Quantity: 2},
			{ItemID: oil.ID, Quantity: 1},
		},
		DiscountAmount: 10.00,
		TaxPercent:     5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(12600), order.TotalAmount)
	return order, rice, oil
}

func TestAddPayment_PartialThenSettled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order, rice, oil := newDraftOrder(t, env)

	partial, err := env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
		Amount:  100.00,
	})
	require.NoError(t, err)
	assert.False(t, partial.Settled)
	assert.Equal(t, 100.00, partial.Paid)
	assert.Equal(t, 26.00, partial.Due)

	// Still a draft, stock untouched
	fresh, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusDraft, fresh.Status)
	assert.Equal(t, 10, env.itemQuantity(t, rice))

	settled, err := env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCard,
		Amount:  26.00,
	})
	require.NoError(t, err)
	assert.True(t, settled.Settled)
	assert.Equal(t, 126.00, settled.Paid)
	assert.Equal(t, 0.00, settled.Due)

	fresh, err = env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, fresh.Status)
	assert.Len(t, fresh.Payments, 2)

	// Stock taken exactly once, per line quantity
	assert.Equal(t, 8, env.itemQuantity(t, rice))
	assert.Equal(t, 4, env.itemQuantity(t, oil))
}

func TestAddPayment_OverpaymentSettlesWithNegativeDue(t *testing.T) {
	env := newTestEnv(t)
	order, _, _ := newDraftOrder(t, env)

	result, err := env.payments.AddPayment(context.Background(), &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodWallet,
		Amount:  150.00,
	})
	require.NoError(t, err)
	assert.True(t, result.Settled)
	assert.Equal(t, 150.00, result.Paid)
	assert.Equal(t, -24.00, result.Due)
}

func TestAddPayment_AfterSettlementRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order, rice, _ := newDraftOrder(t, env)

	_, err := env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
		Amount:  126.00,
	})
	require.NoError(t, err)

	_, err = env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
		Amount:  1.00,
	})
	assert.ErrorIs(t, err, apperror.ErrOrderAlreadySettled)

	// The rejected payment left no trace and stock stayed put
	assert.Equal(t, int64(1), env.count(t, &entity.Payment{}))
	assert.Equal(t, 8, env.itemQuantity(t, rice))
}

func TestAddPayment_ConcurrentDuplicateSettlesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order, rice, oil := newDraftOrder(t, env)

	// Two full payments race on the same order. The per-order exclusive
	// lock serializes them: the loser reads PAID and is rejected before
	// inserting anything.
	var wg sync.WaitGroup
	results := make([]*PaymentResult, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = env.payments.AddPayment(ctx, &AddPaymentInput{
				OrderID: order.ID,
				Method:  enum.PaymentMethodCash,
				Amount:  126.00,
			})
		}(i)
	}
	wg.Wait()

	var settled, rejected int
	for i := range errs {
		if errs[i] == nil {
			require.True(t, results[i].Settled)
			settled++
		} else {
			assert.ErrorIs(t, errs[i], apperror.ErrOrderAlreadySettled)
			rejected++
		}
	}
	assert.Equal(t, 1, settled)
	assert.Equal(t, 1, rejected)

	fresh, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, fresh.Status)

	// One payment row, stock taken exactly once
	assert.Equal(t, int64(1), env.count(t, &entity.Payment{}))
	assert.Equal(t, 8, env.itemQuantity(t, rice))
	assert.Equal(t, 4, env.itemQuantity(t, oil))
}

func TestAddPayment_CancelledOrderRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order, _, _ := newDraftOrder(t, env)

	require.NoError(t, env.orders.CancelOrder(ctx, order.ID))

	_, err := env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
		Amount:  10.00,
	})
	assert.ErrorIs(t, err, apperror.ErrOrderCancelled)
}

func TestAddPayment_NonPositiveAmount(t *testing.T) {
	env := newTestEnv(t)
	order, _, _ := newDraftOrder(t, env)

	for _, amount := range []float64{0, -5.00} {
		_, err := env.payments.AddPayment(context.Background(), &AddPaymentInput{
			OrderID: order.ID,
			Method:  enum.PaymentMethodCash,
			Amount:  amount,
		})
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	}
	assert.Equal(t, int64(0), env.count(t, &entity.Payment{}))
}

func TestAddPayment_UnknownMethod(t *testing.T) {
	env := newTestEnv(t)
	order, _, _ := newDraftOrder(t, env)

	_, err := env.payments.AddPayment(context.Background(), &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethod("IOU"),
		Amount:  10.00,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestAddPayment_OrderNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payments.AddPayment(context.Background(), &AddPaymentInput{
		OrderID: uuid.New(),
		Method:  enum.PaymentMethodCash,
		Amount:  10.00,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestAddPayment_StockMayGoNegative(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	eggs := env.createItem(t, "Eggs", 4.00, 1)
	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines:     []OrderLineInput{{ItemID: eggs.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	result, err := env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
		Amount:  12.00,
	})
	require.NoError(t, err)
	require.True(t, result.Settled)

	// Oversell is recorded, not rejected
	assert.Equal(t, -2, env.itemQuantity(t, eggs))
}

func TestAddPayment_WithInlineInvoice(t *testing.T) {
	env := newTestEnv(t)
	order, _, _ := newDraftOrder(t, env)

	result, err := env.payments.AddPayment(context.Background(), &AddPaymentInput{
		OrderID:         order.ID,
		Method:          enum.PaymentMethodUPI,
		Amount:          126.00,
		GenerateInvoice: true,
	})
	require.NoError(t, err)
	require.True(t, result.Settled)
	assert.NotEmpty(t, result.InvoiceNumber)

	var invoice entity.Invoice
	require.NoError(t, env.db.First(&invoice, "order_id = ?", order.ID).Error)
	assert.Equal(t, invoice.InvoiceNumber, result.InvoiceNumber)
}

func TestAddPayment_PartialWithInvoiceRequestIssuesNothing(t *testing.T) {
	env := newTestEnv(t)
	order, _, _ := newDraftOrder(t, env)

	result, err := env.payments.AddPayment(context.Background(), &AddPaymentInput{
		OrderID:         order.ID,
		Method:          enum.PaymentMethodCash,
		Amount:          50.00,
		GenerateInvoice: true,
	})
	require.NoError(t, err)
	assert.False(t, result.Settled)
	assert.Empty(t, result.InvoiceNumber)
	assert.Equal(t, int64(0), env.count(t, &entity.Invoice{}))
}
