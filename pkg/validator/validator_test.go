package validator

import (
	"testing"

	"github.com/google/uuid"
)

type sample struct {
	Name     string    `validate:"required"`
	RefID    uuid.UUID `validate:"uuid_required"`
	Quantity int       `validate:"gt=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sample{Name: "ok", RefID: uuid.New(), Quantity: 1})
	if len(errs) != 0 {
		t.Errorf("ValidateStruct() errors = %d, want 0", len(errs))
	}
}

func TestValidateStruct_MissingName(t *testing.T) {
	errs := ValidateStruct(sample{RefID: uuid.New(), Quantity: 1})
	if len(errs) != 1 {
		t.Fatalf("ValidateStruct() errors = %d, want 1", len(errs))
	}
	if errs[0].Tag != "required" {
		t.Errorf("failed tag = %q, want %q", errs[0].Tag, "required")
	}
}

func TestValidateStruct_NilUUID(t *testing.T) {
	errs := ValidateStruct(sample{Name: "ok", Quantity: 1})
	if len(errs) != 1 {
		t.Fatalf("ValidateStruct() errors = %d, want 1", len(errs))
	}
	if errs[0].Tag != "uuid_required" {
		t.Errorf("failed tag = %q, want %q", errs[0].Tag, "uuid_required")
	}
}

func TestValidateStruct_NonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -3} {
		errs := ValidateStruct(sample{Name: "ok", RefID: uuid.New(), Quantity: qty})
		if len(errs) != 1 {
			t.Errorf("ValidateStruct(quantity=%d) errors = %d, want 1", qty, len(errs))
		}
	}
}
