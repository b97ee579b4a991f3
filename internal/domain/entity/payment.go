package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment is one settlement event against an order. Payments are immutable
// and never deleted; they are the audit trail the due calculation runs over.
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	Method    enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	Amount    int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	TxnRef    *string            `gorm:"size:255" json:"txn_ref,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: DecimalFromCents(p.Amount),
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
