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

var ErrProductNotFound = errors.New("product not found")

// UpdateProductInput is a partial overwrite: only non-nil fields are applied.
// CurrentStock may be set directly here as a manual stock correction; that
// path deliberately bypasses the ledger projection.
type UpdateProductInput struct {
	Name         *string    `json:"name"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CurrentStock *int       `json:"current_stock"`
	MinStock     *int       `json:"min_stock"`
	Unit         *string    `json:"unit"`
	PricePerUnit *int64     `json:"price_per_unit"`
	Supplier     *string    `json:"supplier"`
	Notes        *string    `json:"notes"`
}

type CatalogService interface {
	ListCategories() []model.Category
	CreateCategory(category *model.Category, actor *model.User) error
	ListProducts() []model.Product
	ListLowStockProducts() []model.Product
	GetProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(product *model.Product, actor *model.User) error
	UpdateProduct(id uuid.UUID, input *UpdateProductInput, actor *model.User) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor *model.User) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	wsHub        *ws.Hub
}

func NewCatalogService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		wsHub:        hub,
	}
}

// validationError flattens the first validator failure into a caller-facing
// message.
func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

// ListCategories degrades to an empty list on storage failure so display
// surfaces stay functional.
func (s *catalogService) ListCategories() []model.Category {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		log.Println("catalog: list categories:", err)
		return []model.Category{}
	}
	return categories
}

func (s *catalogService) CreateCategory(category *model.Category, actor *model.User) error {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return validationError(errs)
	}

	category.CreatedBy = actor.Name
	category.UpdatedBy = actor.Name
	return s.categoryRepo.Create(category)
}

func (s *catalogService) ListProducts() []model.Product {
	products, err := s.productRepo.FindAll()
	if err != nil {
		log.Println("catalog: list products:", err)
		return []model.Product{}
	}
	return products
}

func (s *catalogService) ListLowStockProducts() []model.Product {
	products, err := s.productRepo.FindLowStock()
	if err != nil {
		log.Println("catalog: list low stock products:", err)
		return []model.Product{}
	}
	return products
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct requires a name and a category id. Category existence is the
// caller's responsibility; it is not checked here.
func (s *catalogService) CreateProduct(product *model.Product, actor *model.User) error {
	if product.Unit == "" {
		product.Unit = model.DefaultUnit
	}

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return validationError(errs)
	}

	product.CreatedBy = actor.Name
	product.UpdatedBy = actor.Name
	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "product_created",
		Payload: product.ToResponse(),
		Message: fmt.Sprintf("%s created product '%s'", actor.Name, product.Name),
	})

	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, input *UpdateProductInput, actor *model.User) (*model.Product, error) {
	existing, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"updated_by": actor.Name}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, errors.New("validation failed: field 'name' must not be empty")
		}
		fields["name"] = *input.Name
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.CurrentStock != nil {
		if *input.CurrentStock < 0 {
			return nil, errors.New("validation failed: field 'current_stock' must be >= 0")
		}
		fields["current_stock"] = *input.CurrentStock
	}
	if input.MinStock != nil {
		if *input.MinStock < 0 {
			return nil, errors.New("validation failed: field 'min_stock' must be >= 0")
		}
		fields["min_stock"] = *input.MinStock
	}
	if input.Unit != nil {
		fields["unit"] = *input.Unit
	}
	if input.PricePerUnit != nil {
		fields["price_per_unit"] = *input.PricePerUnit
	}
	if input.Supplier != nil {
		fields["supplier"] = *input.Supplier
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	if err := s.productRepo.Updates(id, fields); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:   "stock_update",
		Action: "product_updated",
		Payload: map[string]interface{}{
			"product":   updated.ToResponse(),
			"old_stock": existing.CurrentStock,
			"new_stock": updated.CurrentStock,
		},
		Message: fmt.Sprintf("%s updated product '%s'", actor.Name, updated.Name),
	})

	return updated, nil
}

// DeleteProduct removes the product unconditionally. Historical order and
// usage rows keep their product reference and become dangling.
func (s *catalogService) DeleteProduct(id uuid.UUID, actor *model.User) error {
	existing, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.wsHub.Publish(ws.Event{
		Type:   "stock_update",
		Action: "product_deleted",
		Payload: map[string]interface{}{
			"id":   existing.ID,
			"name": existing.Name,
		},
		Message: fmt.Sprintf("%s deleted product '%s'", actor.Name, existing.Name),
	})

	return nil
}
