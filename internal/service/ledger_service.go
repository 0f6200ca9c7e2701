package service

import (
	"errors"
	"fmt"
	"log"

	"salon-inventory/internal/model"
	"salon-inventory/internal/repository"
	"salon-inventory/internal/ws"
	"salon-inventory/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService owns the stock projector: every appended transaction is
// reflected onto the referenced product's live stock inside one database
// transaction, so the append and the projection commit or roll back together.
//
// A transaction referencing a missing product is still persisted; the stock
// step is skipped silently. Consumption may overdraw the book figure: the
// projected stock floors at zero instead of rejecting the record.
type LedgerService interface {
	RecordOrder(order *model.OrderRecord, actor *model.User) error
	RecordUsage(usage *model.UsageRecord, actor *model.User) error
	ListOrders(productID *uuid.UUID) []model.OrderRecord
	ListUsage(productID *uuid.UUID) []model.UsageRecord
}

type ledgerService struct {
	orderRepo   repository.OrderRepository
	usageRepo   repository.UsageRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewLedgerService(oRepo repository.OrderRepository, uRepo repository.UsageRepository, pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) LedgerService {
	return &ledgerService{
		orderRepo:   oRepo,
		usageRepo:   uRepo,
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *ledgerService) RecordOrder(order *model.OrderRecord, actor *model.User) error {
	order.UserID = actor.ID
	order.CreatedBy = actor.Name
	order.UpdatedBy = actor.Name

	if errs := validator.ValidateStruct(order); len(errs) > 0 {
		return validationError(errs)
	}

	var projected *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}

		var product model.Product
		if err := tx.First(&product, "id = ?", order.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Dangling reference: keep the record, skip the projection.
				return nil
			}
			return err
		}

		product.CurrentStock += order.Quantity
		if err := s.productRepo.UpdateStock(tx, product.ID, product.CurrentStock, actor.Name); err != nil {
			return err
		}

		projected = &product
		return nil
	})
	if err != nil {
		return err
	}

	if projected != nil {
		s.wsHub.Publish(ws.Event{
			Type:   "stock_update",
			Action: "order_recorded",
			Payload: map[string]interface{}{
				"order_id":   order.ID,
				"product_id": projected.ID,
				"product":    projected.Name,
				"quantity":   order.Quantity,
				"new_stock":  projected.CurrentStock,
			},
			Message: fmt.Sprintf("%s ordered %d x '%s'", actor.Name, order.Quantity, projected.Name),
		})
	}

	return nil
}

func (s *ledgerService) RecordUsage(usage *model.UsageRecord, actor *model.User) error {
	usage.UserID = actor.ID
	usage.CreatedBy = actor.Name
	usage.UpdatedBy = actor.Name

	if errs := validator.ValidateStruct(usage); len(errs) > 0 {
		return validationError(errs)
	}

	var projected *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.usageRepo.Create(tx, usage); err != nil {
			return err
		}

		var product model.Product
		if err := tx.First(&product, "id = ?", usage.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// Floor at zero: overdraw is recorded, never rejected.
		newStock := product.CurrentStock - usage.Quantity
		if newStock < 0 {
			newStock = 0
		}
		product.CurrentStock = newStock

		if err := s.productRepo.UpdateStock(tx, product.ID, newStock, actor.Name); err != nil {
			return err
		}

		projected = &product
		return nil
	})
	if err != nil {
		return err
	}

	if projected != nil {
		s.wsHub.Publish(ws.Event{
			Type:   "stock_update",
			Action: "usage_recorded",
			Payload: map[string]interface{}{
				"usage_id":   usage.ID,
				"product_id": projected.ID,
				"product":    projected.Name,
				"quantity":   usage.Quantity,
				"new_stock":  projected.CurrentStock,
			},
			Message: fmt.Sprintf("%s used %d x '%s'", actor.Name, usage.Quantity, projected.Name),
		})

		if projected.IsLowStock() {
			s.wsHub.Publish(ws.Event{
				Type:   "low_stock_alert",
				Action: "usage_recorded",
				Payload: map[string]interface{}{
					"product_id":    projected.ID,
					"product":       projected.Name,
					"current_stock": projected.CurrentStock,
					"min_stock":     projected.MinStock,
				},
				Message: fmt.Sprintf("'%s' is low on stock (%d %s left)", projected.Name, projected.CurrentStock, projected.Unit),
			})
		}
	}

	return nil
}

// ListOrders degrades to an empty list on storage failure, like every read.
func (s *ledgerService) ListOrders(productID *uuid.UUID) []model.OrderRecord {
	orders, err := s.orderRepo.FindAll(productID)
	if err != nil {
		log.Println("ledger: list orders:", err)
		return []model.OrderRecord{}
	}
	return orders
}

func (s *ledgerService) ListUsage(productID *uuid.UUID) []model.UsageRecord {
	usages, err := s.usageRepo.FindAll(productID)
	if err != nil {
		log.Println("ledger: list usage:", err)
		return []model.UsageRecord{}
	}
	return usages
}
