package request

import "github.com/google/uuid"

// OrderLineRequest represents a single line in an order creation request
type OrderLineRequest struct {
	ItemID    uuid.UUID `json:"item_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice *float64  `json:"unit_price" binding:"omitempty,min=0"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID     *uuid.UUID         `json:"customer_id"`
	Lines          []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	DiscountAmount float64            `json:"discount_amount" binding:"min=0"`
	TaxPercent     float64            `json:"tax_percent" binding:"min=0,max=100"`
	Notes          *string            `json:"notes"`
}

// PayOrderRequest represents a payment recording request
type PayOrderRequest struct {
	Method          string  `json:"method" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	TxnRef          *string `json:"txn_ref"`
	GenerateInvoice bool    `json:"generate_invoice"`
}
