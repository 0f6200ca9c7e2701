package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderRecord is a restock transaction. Append-only: no update or delete is
// exposed anywhere, and the product reference is kept even after the product
// itself is deleted.
type OrderRecord struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	OrderDate  time.Time `gorm:"not null;index" json:"order_date" validate:"required"`
	Quantity   int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	TotalPrice int64     `gorm:"not null" json:"total_price" validate:"gte=0"` // smallest currency unit
	Supplier   string    `gorm:"type:varchar(255)" json:"supplier,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
}

func (OrderRecord) TableName() string {
	return "order_history"
}

// OrderResponse flattens the product and user joins for API responses.
type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	OrderDate   time.Time `json:"order_date"`
	Quantity    int       `json:"quantity"`
	TotalPrice  int64     `json:"total_price"`
	Supplier    string    `json:"supplier,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts OrderRecord to OrderResponse. A deleted product leaves
// product_name empty rather than failing.
func (o *OrderRecord) ToResponse() OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		ProductID:  o.ProductID,
		OrderDate:  o.OrderDate,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Supplier:   o.Supplier,
		Notes:      o.Notes,
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt,
	}
	if o.Product != nil {
		resp.ProductName = o.Product.Name
	}
	if o.User != nil {
		resp.UserName = o.User.Name
	}
	return resp
}
