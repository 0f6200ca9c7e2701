package service

import (
	"testing"
	"time"

	"salon-inventory/internal/model"

	"github.com/google/uuid"
)

func TestRecordOrder_IncrementsStock(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	product := env.mustCreateProduct(t, "Shampoo A", category.ID, 10, 5)

	order := &model.OrderRecord{
		ProductID: product.ID,
		OrderDate: time.Now(),
		Quantity:  20,
	}
	if err := env.ledger.RecordOrder(order, env.owner); err != nil {
		t.Fatalf("RecordOrder() error = %v, want nil", err)
	}

	if got := env.stockOf(t, product.ID); got != 30 {
		t.Errorf("stock after order = %d, want 30", got)
	}

	for _, p := range env.catalog.ListLowStockProducts() {
		if p.ID == product.ID {
			t.Error("product with stock 30 and min 5 appears in low-stock list")
		}
	}
}

func TestRecordUsage_FloorsAtZero(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	product := env.mustCreateProduct(t, "Shampoo A", category.ID, 30, 5)

	usage := &model.UsageRecord{
		ProductID: product.ID,
		UsageDate: time.Now(),
		Quantity:  35,
	}
	if err := env.ledger.RecordUsage(usage, env.owner); err != nil {
		t.Fatalf("RecordUsage() error = %v, want nil", err)
	}

	// Overdraw is recorded, not rejected; book stock floors at 0, not -5.
	if got := env.stockOf(t, product.ID); got != 0 {
		t.Errorf("stock after overdraw = %d, want 0", got)
	}

	if usages := env.ledger.ListUsage(nil); len(usages) != 1 {
		t.Errorf("usage records = %d, want 1", len(usages))
	}
}

func TestProjection_SequenceAlgebra(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Color")
	product := env.mustCreateProduct(t, "Dye", category.ID, 4, 2)

	steps := []struct {
		order bool
		qty   int
		want  int
	}{
		{order: true, qty: 6, want: 10},  // 4+6
		{order: false, qty: 3, want: 7},  // 10-3
		{order: false, qty: 9, want: 0},  // floor(7-9)
		{order: true, qty: 5, want: 5},   // 0+5
		{order: false, qty: 5, want: 0},  // 5-5
		{order: true, qty: 12, want: 12}, // 0+12
	}

	for i, step := range steps {
		var err error
		if step.order {
			err = env.ledger.RecordOrder(&model.OrderRecord{
				ProductID: product.ID,
				OrderDate: time.Now(),
				Quantity:  step.qty,
			}, env.owner)
		} else {
			err = env.ledger.RecordUsage(&model.UsageRecord{
				ProductID: product.ID,
				UsageDate: time.Now(),
				Quantity:  step.qty,
			}, env.owner)
		}
		if err != nil {
			t.Fatalf("step %d: record error = %v", i, err)
		}
		if got := env.stockOf(t, product.ID); got != step.want {
			t.Errorf("step %d: stock = %d, want %d", i, got, step.want)
		}
	}
}

func TestRecordOrder_MissingProductKeepsRecord(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	existing := env.mustCreateProduct(t, "Conditioner", category.ID, 8, 2)

	ghostID := uuid.New()
	order := &model.OrderRecord{
		ProductID: ghostID,
		OrderDate: time.Now(),
		Quantity:  5,
	}
	if err := env.ledger.RecordOrder(order, env.owner); err != nil {
		t.Fatalf("RecordOrder() with dangling product error = %v, want nil", err)
	}

	// The record persists and is retrievable.
	orders := env.ledger.ListOrders(nil)
	if len(orders) != 1 {
		t.Fatalf("order records = %d, want 1", len(orders))
	}
	if orders[0].ProductID != ghostID {
		t.Errorf("order product id = %s, want %s", orders[0].ProductID, ghostID)
	}

	// No stock changed anywhere.
	if got := env.stockOf(t, existing.ID); got != 8 {
		t.Errorf("unrelated product stock = %d, want 8", got)
	}
}

func TestRecordUsage_MissingProductKeepsRecord(t *testing.T) {
	env := newTestEnv(t)

	usage := &model.UsageRecord{
		ProductID: uuid.New(),
		UsageDate: time.Now(),
		Quantity:  3,
	}
	if err := env.ledger.RecordUsage(usage, env.owner); err != nil {
		t.Fatalf("RecordUsage() with dangling product error = %v, want nil", err)
	}

	if usages := env.ledger.ListUsage(nil); len(usages) != 1 {
		t.Errorf("usage records = %d, want 1", len(usages))
	}
}

func TestRecordOrder_RejectsInvalidQuantity(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	product := env.mustCreateProduct(t, "Shampoo A", category.ID, 10, 5)

	for _, qty := range []int{0, -4} {
		order := &model.OrderRecord{
			ProductID: product.ID,
			OrderDate: time.Now(),
			Quantity:  qty,
		}
		if err := env.ledger.RecordOrder(order, env.owner); err == nil {
			t.Errorf("RecordOrder(quantity=%d) error = nil, want validation error", qty)
		}
	}

	// Rejected writes leave no partial state.
	if orders := env.ledger.ListOrders(nil); len(orders) != 0 {
		t.Errorf("order records after rejections = %d, want 0", len(orders))
	}
	if got := env.stockOf(t, product.ID); got != 10 {
		t.Errorf("stock after rejections = %d, want 10", got)
	}
}

func TestRecordOrder_AttributedToOwner(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	product := env.mustCreateProduct(t, "Shampoo A", category.ID, 0, 0)

	order := &model.OrderRecord{
		ProductID:  product.ID,
		OrderDate:  time.Now(),
		Quantity:   2,
		TotalPrice: 1200,
	}
	if err := env.ledger.RecordOrder(order, env.owner); err != nil {
		t.Fatalf("RecordOrder() error = %v", err)
	}

	orders := env.ledger.ListOrders(nil)
	if len(orders) != 1 {
		t.Fatalf("order records = %d, want 1", len(orders))
	}
	if orders[0].UserID != model.OwnerID {
		t.Errorf("order user id = %s, want fixed owner id %s", orders[0].UserID, model.OwnerID)
	}
	if orders[0].User == nil || orders[0].User.Name != model.OwnerName {
		t.Error("order not joined with owner user name")
	}
}

func TestListOrders_FilterIsSubset(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	shampoo := env.mustCreateProduct(t, "Shampoo A", category.ID, 0, 0)
	treatment := env.mustCreateProduct(t, "Treatment B", category.ID, 0, 0)

	for i, productID := range []uuid.UUID{shampoo.ID, treatment.ID, shampoo.ID} {
		err := env.ledger.RecordOrder(&model.OrderRecord{
			ProductID: productID,
			OrderDate: time.Now().Add(time.Duration(i) * time.Hour),
			Quantity:  1 + i,
		}, env.owner)
		if err != nil {
			t.Fatalf("record order %d: %v", i, err)
		}
	}

	all := env.ledger.ListOrders(nil)
	if len(all) != 3 {
		t.Fatalf("unfiltered orders = %d, want 3", len(all))
	}

	filtered := env.ledger.ListOrders(&shampoo.ID)
	if len(filtered) != 2 {
		t.Fatalf("filtered orders = %d, want 2", len(filtered))
	}
	for _, o := range filtered {
		if o.ProductID != shampoo.ID {
			t.Errorf("filtered list contains foreign product %s", o.ProductID)
		}
	}
}

func TestListOrders_NewestDateFirst(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	product := env.mustCreateProduct(t, "Shampoo A", category.ID, 0, 0)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, offset := range []int{0, 2, 1} {
		err := env.ledger.RecordOrder(&model.OrderRecord{
			ProductID: product.ID,
			OrderDate: base.AddDate(0, 0, offset),
			Quantity:  1,
		}, env.owner)
		if err != nil {
			t.Fatalf("record order: %v", err)
		}
	}

	orders := env.ledger.ListOrders(nil)
	for i := 1; i < len(orders); i++ {
		if orders[i].OrderDate.After(orders[i-1].OrderDate) {
			t.Errorf("orders not sorted by date desc at index %d", i)
		}
	}
}

func TestListUsage_FilterIsSubset(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCreateCategory(t, "Hair Care")
	shampoo := env.mustCreateProduct(t, "Shampoo A", category.ID, 50, 0)
	treatment := env.mustCreateProduct(t, "Treatment B", category.ID, 50, 0)

	for _, productID := range []uuid.UUID{shampoo.ID, shampoo.ID, treatment.ID} {
		err := env.ledger.RecordUsage(&model.UsageRecord{
			ProductID: productID,
			UsageDate: time.Now(),
			Quantity:  1,
		}, env.owner)
		if err != nil {
			t.Fatalf("record usage: %v", err)
		}
	}

	filtered := env.ledger.ListUsage(&treatment.ID)
	if len(filtered) != 1 {
		t.Fatalf("filtered usage = %d, want 1", len(filtered))
	}
	if filtered[0].ProductID != treatment.ID {
		t.Errorf("filtered usage product = %s, want %s", filtered[0].ProductID, treatment.ID)
	}
}
