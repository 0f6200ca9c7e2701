package service

import (
	"testing"

	"salon-inventory/internal/model"
	"salon-inventory/internal/repository"
	"salon-inventory/internal/ws"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database. Pool is pinned to one
// connection: every new in-memory connection would otherwise see an empty
// schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.OrderRecord{},
		&model.UsageRecord{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

type testEnv struct {
	db      *gorm.DB
	catalog CatalogService
	ledger  LedgerService
	owner   *model.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	hub := ws.NewHub()
	go hub.Run()

	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	usageRepo := repository.NewUsageRepo(db)
	userRepo := repository.NewUserRepo(db)

	owner := NewOwnerResolver(userRepo).Resolve()

	return &testEnv{
		db:      db,
		catalog: NewCatalogService(categoryRepo, productRepo, hub),
		ledger:  NewLedgerService(orderRepo, usageRepo, productRepo, db, hub),
		owner:   owner,
	}
}

func (e *testEnv) mustCreateCategory(t *testing.T, name string) *model.Category {
	t.Helper()

	category := &model.Category{Name: name}
	if err := e.catalog.CreateCategory(category, e.owner); err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return category
}

func (e *testEnv) mustCreateProduct(t *testing.T, name string, categoryID uuid.UUID, current, min int) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:         name,
		CategoryID:   categoryID,
		CurrentStock: current,
		MinStock:     min,
	}
	if err := e.catalog.CreateProduct(product, e.owner); err != nil {
		t.Fatalf("create product %q: %v", name, err)
	}
	return product
}

func (e *testEnv) stockOf(t *testing.T, id uuid.UUID) int {
	t.Helper()

	product, err := e.catalog.GetProduct(id)
	if err != nil {
		t.Fatalf("get product %s: %v", id, err)
	}
	return product.CurrentStock
}
