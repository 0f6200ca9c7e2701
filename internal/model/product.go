package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUnit is the display label used when a product is created without one.
const DefaultUnit = "piece"

type Product struct {
	BaseModel
	Name       string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`

	// CurrentStock is the authoritative live quantity. It is maintained
	// incrementally by the ledger (orders add, usage subtracts with a floor
	// at zero) and may also be overwritten directly via product update as a
	// manual correction.
	CurrentStock int    `gorm:"not null;default:0" json:"current_stock" validate:"gte=0"`
	MinStock     int    `gorm:"not null;default:0" json:"min_stock" validate:"gte=0"`
	Unit         string `gorm:"type:varchar(20);not null;default:piece" json:"unit"`
	PricePerUnit int64  `gorm:"not null;default:0" json:"price_per_unit" validate:"gte=0"` // smallest currency unit
	Supplier     string `gorm:"type:varchar(255)" json:"supplier,omitempty"`
	Notes        string `gorm:"type:text" json:"notes,omitempty"`
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// ProductResponse flattens the category join for API responses.
type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	Unit         string    `json:"unit"`
	PricePerUnit int64     `json:"price_per_unit"`
	Supplier     string    `json:"supplier,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	LowStock     bool      `json:"low_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToResponse converts Product to ProductResponse.
func (p *Product) ToResponse() ProductResponse {
	resp := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		Unit:         p.Unit,
		PricePerUnit: p.PricePerUnit,
		Supplier:     p.Supplier,
		Notes:        p.Notes,
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp
}
