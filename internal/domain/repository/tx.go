package repository

import "context"

// TxManager runs a function inside a single database transaction. Every
// repository call made with the context passed to fn joins that transaction,
// so a mutation spanning order status, payments, stock and invoices either
// fully commits or fully rolls back.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
