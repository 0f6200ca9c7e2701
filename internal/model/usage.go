package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageRecord is a consumption transaction. Append-only, like OrderRecord.
type UsageRecord struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	UsageDate time.Time `gorm:"not null;index" json:"usage_date" validate:"required"`
	Quantity  int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
}

func (UsageRecord) TableName() string {
	return "usage_history"
}

// UsageResponse flattens the product and user joins for API responses.
type UsageResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	UsageDate   time.Time `json:"usage_date"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts UsageRecord to UsageResponse.
func (u *UsageRecord) ToResponse() UsageResponse {
	resp := UsageResponse{
		ID:        u.ID,
		ProductID: u.ProductID,
		UsageDate: u.UsageDate,
		Quantity:  u.Quantity,
		Notes:     u.Notes,
		UserID:    u.UserID,
		CreatedAt: u.CreatedAt,
	}
	if u.Product != nil {
		resp.ProductName = u.Product.Name
	}
	if u.User != nil {
		resp.UserName = u.User.Name
	}
	return resp
}
