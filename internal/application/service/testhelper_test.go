package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/freshkart/grocery-pos/internal/domain/entity"
	persistence "github.com/freshkart/grocery-pos/internal/infrastructure/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the services against an in-memory database. A single
// connection keeps every query on the same sqlite instance.
type testEnv struct {
	db       *gorm.DB
	catalog  *CatalogService
	orders   *OrderService
	payments *PaymentService
	invoices *InvoiceService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Item{},
		&entity.Order{},
		&entity.OrderLine{},
		&entity.Payment{},
		&entity.Invoice{},
	))

	itemRepo := persistence.NewItemRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	customerRepo := persistence.NewCustomerRepository(db)
	txm := persistence.NewTxManager(db)
	logger := zap.NewNop()

	catalog := NewCatalogService(itemRepo)
	invoices := NewInvoiceService(orderRepo, invoiceRepo, logger)

	return &testEnv{
		db:       db,
		catalog:  catalog,
		orders:   NewOrderService(orderRepo, itemRepo, customerRepo, catalog, txm, logger),
		payments: NewPaymentService(orderRepo, paymentRepo, itemRepo, invoices, txm, logger),
		invoices: invoices,
	}
}

func (e *testEnv) createItem(t *testing.T, name string, cost float64, quantity int) *entity.Item {
	t.Helper()
	item, err := e.catalog.CreateItem(context.Background(), &CreateItemInput{
		Name:     name,
		Cost:     cost,
		Quantity: quantity,
	})
	require.NoError(t, err)
	return item
}

func (e *testEnv) createCustomer(t *testing.T, name string) *entity.Customer {
	t.Helper()
	customer := &entity.Customer{Name: name}
	require.NoError(t, e.db.Create(customer).Error)
	return customer
}

func (e *testEnv) itemQuantity(t *testing.T, item *entity.Item) int {
	t.Helper()
	var fresh entity.Item
	require.NoError(t, e.db.First(&fresh, "id = ?", item.ID).Error)
	return fresh.Quantity
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}
