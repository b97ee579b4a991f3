package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Billing counters. Incremented only after the surrounding transaction has
// committed, so the series never count rolled-back work.
var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "grocery_pos",
		Name:      "orders_created_total",
		Help:      "Orders persisted in DRAFT state.",
	})

	OrdersSettled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "grocery_pos",
		Name:      "orders_settled_total",
		Help:      "Orders transitioned DRAFT to PAID.",
	})

	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "grocery_pos",
		Name:      "orders_cancelled_total",
		Help:      "Orders transitioned to CANCELLED.",
	})

	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocery_pos",
		Name:      "payments_recorded_total",
		Help:      "Payments recorded, by method.",
	}, []string{"method"})

	InvoicesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "grocery_pos",
		Name:      "invoices_issued_total",
		Help:      "Invoice documents created (idempotent replays excluded).",
	})
)
