package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice binds a document number to a settled order. The unique index on
// OrderID enforces at most one invoice per order; a duplicate insert from a
// concurrent issuer is resolved by returning the existing row.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	InvoiceNumber string    `gorm:"size:100;uniqueIndex;not null" json:"invoice_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// InvoiceNumberFor derives the document number for an order settled on the
// given date. The derivation is deterministic so concurrent issuers always
// compute the same number.
func InvoiceNumberFor(orderID uuid.UUID, issuedAt time.Time) string {
	return fmt.Sprintf("INV-%s-%s", issuedAt.UTC().Format("20060102"), orderID)
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
