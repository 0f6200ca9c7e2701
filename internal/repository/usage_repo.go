package repository

import (
	"salon-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsageRepository interface {
	Create(tx *gorm.DB, usage *model.UsageRecord) error
	FindAll(productID *uuid.UUID) ([]model.UsageRecord, error)
}

type usageRepo struct {
	db *gorm.DB
}

func NewUsageRepo(db *gorm.DB) UsageRepository {
	return &usageRepo{db}
}

func (r *usageRepo) Create(tx *gorm.DB, usage *model.UsageRecord) error {
	return tx.Create(usage).Error
}

// FindAll mirrors OrderRepository.FindAll for consumption records.
func (r *usageRepo) FindAll(productID *uuid.UUID) ([]model.UsageRecord, error) {
	var usages []model.UsageRecord
	q := r.db.Preload("Product").Preload("User").Order("usage_date DESC")
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	err := q.Find(&usages).Error
	return usages, err
}
