package pricing

import (
	"errors"
	"math"
	"testing"

	"quoteflow/internal/domain/entities"
)

func fp(v float64) *float64 { return &v }

func TestComputeLine(t *testing.T) {
	t.Run("both amounts set", func(t *testing.T) {
		figures := ComputeLine(entities.LineItem{Quantity: 10, VendorCost: fp(100), CustomerPrice: fp(150)})
		if figures.LineTotal == nil || *figures.LineTotal != 1500 {
			t.Fatalf("unexpected line total: %+v", figures)
		}
		if figures.MarginAmount == nil || *figures.MarginAmount != 500 {
			t.Fatalf("unexpected margin amount: %+v", figures)
		}
		if figures.MarginPercent == nil || *figures.MarginPercent != 50 {
			t.Fatalf("unexpected margin percent: %+v", figures)
		}
	})

	t.Run("missing customer price leaves figures undefined", func(t *testing.T) {
		figures := ComputeLine(entities.LineItem{Quantity: 10, VendorCost: fp(100)})
		if figures.LineTotal != nil || figures.MarginAmount != nil || figures.MarginPercent != nil {
			t.Fatalf("expected all nil, got %+v", figures)
		}
	})

	t.Run("missing vendor cost still totals", func(t *testing.T) {
		figures := ComputeLine(entities.LineItem{Quantity: 2, CustomerPrice: fp(75)})
		if figures.LineTotal == nil || *figures.LineTotal != 150 {
			t.Fatalf("unexpected line total: %+v", figures)
		}
		if figures.MarginAmount != nil || figures.MarginPercent != nil {
			t.Fatalf("margin undefined without vendor cost: %+v", figures)
		}
	})

	t.Run("zero vendor cost never divides", func(t *testing.T) {
		figures := ComputeLine(entities.LineItem{Quantity: 1, VendorCost: fp(0), CustomerPrice: fp(50)})
		if figures.MarginAmount == nil || *figures.MarginAmount != 50 {
			t.Fatalf("unexpected margin amount: %+v", figures)
		}
		if figures.MarginPercent != nil {
			t.Fatalf("margin percent must stay undefined at zero cost: %+v", figures)
		}
	})
}

func TestComputeAggregate(t *testing.T) {
	t.Run("blended margin", func(t *testing.T) {
		items := []entities.LineItem{
			{Quantity: 10, VendorCost: fp(100), CustomerPrice: fp(150)},
			{Quantity: 5, VendorCost: fp(200), CustomerPrice: fp(300)},
		}
		agg := ComputeAggregate(items)
		if agg.VendorTotal != 2000 || agg.CustomerTotal != 3000 || agg.MarginTotal != 1000 {
			t.Fatalf("unexpected totals: %+v", agg)
		}
		if agg.MarginPercent != 50 {
			t.Fatalf("expected blended margin 50, got %v", agg.MarginPercent)
		}
		if !agg.AllCosted || !agg.ReadyToSend {
			t.Fatalf("expected fully costed and ready: %+v", agg)
		}
	})

	t.Run("zero vendor total yields zero percent", func(t *testing.T) {
		items := []entities.LineItem{{Quantity: 1, VendorCost: fp(0), CustomerPrice: fp(50)}}
		agg := ComputeAggregate(items)
		if agg.MarginPercent != 0 || math.IsNaN(agg.MarginPercent) {
			t.Fatalf("expected 0 margin percent, got %v", agg.MarginPercent)
		}
	})

	t.Run("null vendor cost counts zero but clears all-costed", func(t *testing.T) {
		items := []entities.LineItem{
			{Quantity: 2, VendorCost: fp(100), CustomerPrice: fp(150)},
			{Quantity: 3, CustomerPrice: fp(80)},
		}
		agg := ComputeAggregate(items)
		if agg.VendorTotal != 200 {
			t.Fatalf("unexpected vendor total: %v", agg.VendorTotal)
		}
		if agg.CustomerTotal != 540 {
			t.Fatalf("unexpected customer total: %v", agg.CustomerTotal)
		}
		if agg.AllCosted {
			t.Fatalf("uncosted line must clear AllCosted")
		}
		if !agg.ReadyToSend {
			t.Fatalf("vendor cost is not required for ready-to-send")
		}
	})

	t.Run("empty quote", func(t *testing.T) {
		agg := ComputeAggregate(nil)
		if agg.AllCosted || agg.ReadyToSend {
			t.Fatalf("empty quote is neither costed nor ready: %+v", agg)
		}
	})
}

func TestReadyToSend(t *testing.T) {
	if ReadyToSend(nil) {
		t.Fatalf("no lines is not ready")
	}
	if ReadyToSend([]entities.LineItem{{Quantity: 1, CustomerPrice: fp(10)}, {Quantity: 1}}) {
		t.Fatalf("nil customer price is not ready")
	}
	if ReadyToSend([]entities.LineItem{{Quantity: 1, CustomerPrice: fp(0)}}) {
		t.Fatalf("zero customer price is not ready")
	}
	if !ReadyToSend([]entities.LineItem{{Quantity: 1, CustomerPrice: fp(10)}, {Quantity: 2, CustomerPrice: fp(0.01)}}) {
		t.Fatalf("all positive prices must be ready")
	}
}

func TestValidateLineEdit(t *testing.T) {
	if err := ValidateLineEdit(fp(-1), nil); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if err := ValidateLineEdit(nil, fp(-0.5)); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if err := ValidateLineEdit(fp(100), fp(99.99)); !errors.Is(err, ErrPriceBelowCost) {
		t.Fatalf("expected ErrPriceBelowCost, got %v", err)
	}
	if err := ValidateLineEdit(fp(100), fp(100)); err != nil {
		t.Fatalf("equality must pass: %v", err)
	}
	if err := ValidateLineEdit(nil, nil); err != nil {
		t.Fatalf("both nil must pass: %v", err)
	}
	if err := ValidateLineEdit(fp(100), nil); err != nil {
		t.Fatalf("partial pricing must pass: %v", err)
	}
}
