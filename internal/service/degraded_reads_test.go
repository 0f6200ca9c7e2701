package service

import (
	"testing"
	"time"

	"salon-inventory/internal/model"
)

// Reads degrade to empty lists when storage is unreachable; writes fail
// loudly.
func TestReads_DegradeToEmptyWhenStorageDown(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	env.mustCreateProduct(t, "Shampoo A", category.ID, 10, 5)

	sqlDB, err := env.db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.Close()

	if got := env.catalog.ListCategories(); len(got) != 0 {
		t.Errorf("ListCategories() with dead storage = %d rows, want 0", len(got))
	}
	if got := env.catalog.ListProducts(); len(got) != 0 {
		t.Errorf("ListProducts() with dead storage = %d rows, want 0", len(got))
	}
	if got := env.catalog.ListLowStockProducts(); len(got) != 0 {
		t.Errorf("ListLowStockProducts() with dead storage = %d rows, want 0", len(got))
	}
	if got := env.ledger.ListOrders(nil); len(got) != 0 {
		t.Errorf("ListOrders() with dead storage = %d rows, want 0", len(got))
	}
	if got := env.ledger.ListUsage(nil); len(got) != 0 {
		t.Errorf("ListUsage() with dead storage = %d rows, want 0", len(got))
	}

	err = env.ledger.RecordOrder(&model.OrderRecord{
		ProductID: model.OwnerID,
		OrderDate: time.Now(),
		Quantity:  1,
	}, env.owner)
	if err == nil {
		t.Error("RecordOrder() with dead storage error = nil, want error")
	}
}
