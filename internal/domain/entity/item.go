package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a catalog entry plus its on-hand stock quantity. The quantity is
// only ever mutated through batch stock adjustments inside a billing
// transaction; it may go negative (oversell is reported, not rejected).
type Item struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Category  *string   `gorm:"size:255" json:"category,omitempty"`
	Cost      int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		Cost float64 `json:"cost"`
	}{
		Alias: Alias(i),
		Cost:  float64(i.Cost) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// GetCostDecimal returns the unit cost as a decimal
func (i *Item) GetCostDecimal() float64 {
	return float64(i.Cost) / 100
}

// SetCostFromDecimal sets the unit cost from a decimal value
func (i *Item) SetCostFromDecimal(cost float64) {
	i.Cost = CentsFromDecimal(cost)
}
