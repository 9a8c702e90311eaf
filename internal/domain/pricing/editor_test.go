package pricing

import (
	"errors"
	"testing"

	"quoteflow/internal/domain/entities"
)

func TestLineEditor_CommitValid(t *testing.T) {
	editor := NewLineEditor()
	line := entities.LineItem{ID: "li-1", Quantity: 1, VendorCost: fp(100)}

	editor.Set("li-1", FieldCustomerPrice, fp(150))
	committed, err := editor.Commit("li-1", FieldCustomerPrice, line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if committed == nil || *committed != 150 {
		t.Fatalf("unexpected committed value: %v", committed)
	}
	if _, held := editor.Pending("li-1", FieldCustomerPrice); held {
		t.Fatalf("scratch must clear on successful commit")
	}
}

func TestLineEditor_InvalidEditRetained(t *testing.T) {
	editor := NewLineEditor()
	line := entities.LineItem{ID: "li-1", Quantity: 1, VendorCost: fp(100)}

	editor.Set("li-1", FieldCustomerPrice, fp(50))
	if _, err := editor.Commit("li-1", FieldCustomerPrice, line); !errors.Is(err, ErrPriceBelowCost) {
		t.Fatalf("expected ErrPriceBelowCost, got %v", err)
	}

	// The rejected input stays held so it can be shown with an inline error.
	held, ok := editor.Pending("li-1", FieldCustomerPrice)
	if !ok || held == nil || *held != 50 {
		t.Fatalf("scratch must retain rejected value: %v %v", held, ok)
	}

	// Correcting the value commits.
	editor.Set("li-1", FieldCustomerPrice, fp(120))
	committed, err := editor.Commit("li-1", FieldCustomerPrice, line)
	if err != nil || committed == nil || *committed != 120 {
		t.Fatalf("corrected commit failed: %v %v", committed, err)
	}
}

func TestLineEditor_CommitWithoutScratch(t *testing.T) {
	editor := NewLineEditor()
	line := entities.LineItem{ID: "li-1", Quantity: 1, VendorCost: fp(100), CustomerPrice: fp(150)}

	committed, err := editor.Commit("li-1", FieldVendorCost, line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if committed != line.VendorCost {
		t.Fatalf("expected the committed amount back, got %v", committed)
	}
}

func TestLineEditor_NilClearsAmount(t *testing.T) {
	editor := NewLineEditor()
	line := entities.LineItem{ID: "li-1", Quantity: 1, VendorCost: fp(100), CustomerPrice: fp(150)}

	editor.Set("li-1", FieldVendorCost, nil)
	committed, err := editor.Commit("li-1", FieldVendorCost, line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if committed != nil {
		t.Fatalf("expected nil to clear the amount, got %v", committed)
	}
}

func TestLineEditor_Discard(t *testing.T) {
	editor := NewLineEditor()
	editor.Set("li-1", FieldVendorCost, fp(80))
	editor.Discard("li-1", FieldVendorCost)
	if _, held := editor.Pending("li-1", FieldVendorCost); held {
		t.Fatalf("discard must drop the scratch value")
	}
}

func TestLineEditor_UnknownField(t *testing.T) {
	editor := NewLineEditor()
	if _, err := editor.Commit("li-1", PriceField("quantity"), entities.LineItem{ID: "li-1"}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
