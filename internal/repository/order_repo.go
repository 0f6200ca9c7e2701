package repository

import (
	"salon-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(tx *gorm.DB, order *model.OrderRecord) error
	FindAll(productID *uuid.UUID) ([]model.OrderRecord, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// Create takes *gorm.DB so the append can share the ledger's transaction
// with the stock update.
func (r *orderRepo) Create(tx *gorm.DB, order *model.OrderRecord) error {
	return tx.Create(order).Error
}

// FindAll returns orders joined with product and user, newest order date
// first. A non-nil productID restricts the list to that product.
func (r *orderRepo) FindAll(productID *uuid.UUID) ([]model.OrderRecord, error) {
	var orders []model.OrderRecord
	q := r.db.Preload("Product").Preload("User").Order("order_date DESC")
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	err := q.Find(&orders).Error
	return orders, err
}
