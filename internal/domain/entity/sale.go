package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents one committed transaction. Once committed a sale and its
// items are immutable except for the payment-method annotation.
type Sale struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleTime      time.Time `gorm:"not null;index" json:"sale_time"`
	TotalAmount   int64     `gorm:"not null" json:"-"` // Stored in cents
	PaymentMethod *string   `gorm:"size:50" json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(s),
		TotalAmount: float64(s.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalAmountDecimal returns the total as a decimal
func (s *Sale) GetTotalAmountDecimal() float64 {
	return float64(s.TotalAmount) / 100
}

// SaleItem represents one line within a sale. The product name is captured at
// sale time so later renames or deletions cannot corrupt history; deleted only
// together with its owning sale.
type SaleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Quantity    int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	PriceAtSale int64     `gorm:"not null;check:price_at_sale >= 0" json:"-"` // Stored in cents
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		PriceAtSale float64 `json:"price_at_sale"`
	}{
		Alias:       Alias(si),
		PriceAtSale: float64(si.PriceAtSale) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
