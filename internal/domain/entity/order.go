package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents one customer transaction. Monetary fields hold cents and
// always satisfy TotalAmount == max(0, Subtotal-DiscountAmount) + TaxAmount.
type Order struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CashierID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"cashier_id"`
	Status         enum.OrderStatus `gorm:"default:0;index" json:"status"`
	Subtotal       int64            `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	DiscountAmount int64            `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	TaxAmount      int64            `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	TotalAmount    int64            `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Notes          *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Cashier  User        `gorm:"foreignKey:CashierID" json:"-"`
	Lines    []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Subtotal       float64 `json:"subtotal"`
		DiscountAmount float64 `json:"discount_amount"`
		TaxAmount      float64 `json:"tax_amount"`
		TotalAmount    float64 `json:"total_amount"`
	}{
		Alias:          Alias(o),
		Subtotal:       DecimalFromCents(o.Subtotal),
		DiscountAmount: DecimalFromCents(o.DiscountAmount),
		TaxAmount:      DecimalFromCents(o.TaxAmount),
		TotalAmount:    DecimalFromCents(o.TotalAmount),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// StockDeltas returns the per-item quantity carried by the order's lines.
// Negate for settlement decrements, use as-is for cancellation restores.
func (o *Order) StockDeltas() map[uuid.UUID]int {
	deltas := make(map[uuid.UUID]int, len(o.Lines))
	for _, line := range o.Lines {
		deltas[line.ItemID] += line.Quantity
	}
	return deltas
}

// OrderLine is one catalog item within an order. ItemName and UnitPrice are
// snapshots taken at order creation; later catalog edits never alter them.
// Lines are created atomically with their order and never mutated.
type OrderLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName  string    `gorm:"size:255;not null" json:"item_name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	LineTotal int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l OrderLine) MarshalJSON() ([]byte, error) {
	type Alias OrderLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(l),
		UnitPrice: DecimalFromCents(l.UnitPrice),
		LineTotal: DecimalFromCents(l.LineTotal),
	})
}

// BeforeCreate generates a UUID before creating a new order line
func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}
