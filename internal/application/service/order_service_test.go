package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	"github.com/freshkart/grocery-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_ComputesTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rice := env.createItem(t, "Basmati Rice", 25.00, 10)
	oil := env.createItem(t, "Olive Oil", 80.00, 5)

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines: []OrderLineInput{
			{ItemID: rice.ID, Quantity: 2},
			{ItemID: oil.ID, Quantity: 1},
		},
		DiscountAmount: 10.00,
		TaxPercent:     5,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.OrderStatusDraft, order.Status)
	assert.Equal(t, int64(13000), order.Subtotal)
	assert.Equal(t, int64(1000), order.DiscountAmount)
	assert.Equal(t, int64(600), order.TaxAmount)
	assert.Equal(t, int64(12600), order.TotalAmount)
	require.Len(t, order.Lines, 2)

	// Stock is untouched until settlement
	assert.Equal(t, 10, env.itemQuantity(t, rice))
	assert.Equal(t, 5, env.itemQuantity(t, oil))
}

func TestCreateOrder_SnapshotsNameAndPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	milk := env.createItem(t, "Whole Milk", 3.50, 20)

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines:     []OrderLineInput{{ItemID: milk.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)

	// Later catalog edits must not alter the line snapshot
	require.NoError(t, env.db.Model(&entity.Item{}).
		Where("id = ?", milk.ID).
		Updates(map[string]interface{}{"name": "Skim Milk", "cost": 999}).Error)

	fresh, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk", fresh.Lines[0].ItemName)
	assert.Equal(t, int64(350), fresh.Lines[0].UnitPrice)
	assert.Equal(t, int64(1050), fresh.Lines[0].LineTotal)
}

func TestCreateOrder_PriceOverride(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	bread := env.createItem(t, "Sourdough", 6.00, 8)
	override := 4.50

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines:     []OrderLineInput{{ItemID: bread.ID, Quantity: 2, UnitPrice: &override}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(450), order.Lines[0].UnitPrice)
	assert.Equal(t, int64(900), order.Subtotal)

	// The catalog keeps its own price
	var fresh entity.Item
	require.NoError(t, env.db.First(&fresh, "id = ?", bread.ID).Error)
	assert.Equal(t, int64(600), fresh.Cost)
}

func TestCreateOrder_DiscountExceedingSubtotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gum := env.createItem(t, "Chewing Gum", 1.00, 50)

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      uuid.New(),
		Lines:          []OrderLineInput{{ItemID: gum.ID, Quantity: 1}},
		DiscountAmount: 5.00,
		TaxPercent:     10,
	})
	require.NoError(t, err)

	// Taxable base clamps at zero, so tax and total are zero too
	assert.Equal(t, int64(100), order.Subtotal)
	assert.Equal(t, int64(0), order.TaxAmount)
	assert.Equal(t, int64(0), order.TotalAmount)
}

func TestCreateOrder_EmptyLines(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.CreateOrder(context.Background(), &CreateOrderInput{
		CashierID: uuid.New(),
	})
	assert.ErrorIs(t, err, apperror.ErrEmptyOrder)
}

func TestCreateOrder_NonPositiveQuantity(t *testing.T) {
	env := newTestEnv(t)
	rice := env.createItem(t, "Rice", 2.00, 10)

	_, err := env.orders.CreateOrder(context.Background(), &CreateOrderInput{
		CashierID: uuid.New(),
		Lines:     []OrderLineInput{{ItemID: rice.ID, Quantity: 0}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrder_UnknownItemPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rice := env.createItem(t, "Rice", 2.00, 10)

	_, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines: []OrderLineInput{
			{ItemID: rice.ID, Quantity: 1},
			{ItemID: uuid.New(), Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	assert.Equal(t, int64(0), env.count(t, &entity.Order{}))
	assert.Equal(t, int64(0), env.count(t, &entity.OrderLine{}))
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	rice := env.createItem(t, "Rice", 2.00, 10)
	ghost := uuid.New()

	_, err := env.orders.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID: &ghost,
		CashierID:  uuid.New(),
		Lines:      []OrderLineInput{{ItemID: rice.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrder_WithCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.createCustomer(t, "Jane Doe")
	rice := env.createItem(t, "Rice", 2.00, 10)

	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CustomerID: &customer.ID,
		CashierID:  uuid.New(),
		Lines:      []OrderLineInput{{ItemID: rice.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, customer.ID, *order.CustomerID)
}

func TestCancelOrder_Draft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rice := env.createItem(t, "Rice", 2.00, 10)
	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines:     []OrderLineInput{{ItemID: rice.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, env.orders.CancelOrder(ctx, order.ID))

	fresh, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, fresh.Status)

	// Draft never took stock, so cancellation restores none
	assert.Equal(t, 10, env.itemQuantity(t, rice))
}

func TestCancelOrder_PaidRestoresStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rice := env.createItem(t, "Rice", 2.00, 10)
	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines:     []OrderLineInput{{ItemID: rice.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	result, err := env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
		Amount:  8.00,
	})
	require.NoError(t, err)
	require.True(t, result.Settled)
	require.Equal(t, 6, env.itemQuantity(t, rice))

	require.NoError(t, env.orders.CancelOrder(ctx, order.ID))

	fresh, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, fresh.Status)
	assert.Equal(t, 10, env.itemQuantity(t, rice))
}

func TestCancelOrder_AlreadyCancelledIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rice := env.createItem(t, "Rice", 2.00, 10)
	order, err := env.orders.CreateOrder(ctx, &CreateOrderInput{
		CashierID: uuid.New(),
		Lines:     []OrderLineInput{{ItemID: rice.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	_, err = env.payments.AddPayment(ctx, &AddPaymentInput{
		OrderID: order.ID,
		Method:  enum.PaymentMethodCash,
		Amount:  8.00,
	})
	require.NoError(t, err)

	require.NoError(t, env.orders.CancelOrder(ctx, order.ID))
	require.Equal(t, 10, env.itemQuantity(t, rice))

	// Re-cancelling must not restore stock a second time
	require.NoError(t, env.orders.CancelOrder(ctx, order.ID))
	assert.Equal(t, 10, env.itemQuantity(t, rice))
}

func TestCancelOrder_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.orders.CancelOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
