// Package pricing computes line and aggregate money figures for a quote and
// validates pricing edits. Everything here is pure; the external rule
// waterfall is consumed elsewhere.
package pricing

import (
	"errors"

	"quoteflow/internal/domain/entities"
)

var (
	// ErrPriceBelowCost rejects a line edit where both amounts are present
	// and the customer price is strictly below the vendor cost. Equality
	// (zero margin) is accepted; it is a warning-level concern upstream.
	ErrPriceBelowCost = errors.New("customer price below vendor cost")

	// ErrNegativeAmount rejects a negative vendor cost or customer price.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// LineFigures contains the derived values for a single line item. A nil field
// means the figure is undefined with the current inputs, not zero.
type LineFigures struct {
	LineTotal     *float64 `json:"line_total,omitempty"`
	MarginAmount  *float64 `json:"margin_amount,omitempty"`
	MarginPercent *float64 `json:"margin_percent,omitempty"`
}

// Aggregate contains roll-up values across all line items.
//
// Null vendor costs count as 0 toward VendorTotal but still exclude the line
// from AllCosted. MarginPercent is the blended figure: 0 (never NaN) when
// VendorTotal is 0.
type Aggregate struct {
	VendorTotal   float64 `json:"vendor_total"`
	CustomerTotal float64 `json:"customer_total"`
	MarginTotal   float64 `json:"margin_total"`
	MarginPercent float64 `json:"margin_percent"`
	AllCosted     bool    `json:"all_costed"`
	ReadyToSend   bool    `json:"ready_to_send"`
}

// ComputeLine derives the per-line figures.
//
//	lineTotal     = customerPrice * quantity            (customerPrice set)
//	marginAmount  = (customerPrice - vendorCost) * qty  (both set)
//	marginPercent = (customerPrice - vendorCost) / vendorCost * 100
//	                (both set and vendorCost > 0 — never divides by zero)
func ComputeLine(item entities.LineItem) LineFigures {
	var out LineFigures
	qty := float64(item.Quantity)

	if item.CustomerPrice != nil {
		total := *item.CustomerPrice * qty
		out.LineTotal = &total
	}
	if item.CustomerPrice != nil && item.VendorCost != nil {
		margin := (*item.CustomerPrice - *item.VendorCost) * qty
		out.MarginAmount = &margin
		if *item.VendorCost != 0 {
			pct := (*item.CustomerPrice - *item.VendorCost) / *item.VendorCost * 100
			out.MarginPercent = &pct
		}
	}
	return out
}

// ComputeAggregate derives quote-level totals and the blended margin.
func ComputeAggregate(items []entities.LineItem) Aggregate {
	agg := Aggregate{AllCosted: true}
	for _, item := range items {
		qty := float64(item.Quantity)
		if item.VendorCost != nil {
			agg.VendorTotal += *item.VendorCost * qty
		} else {
			agg.AllCosted = false
		}
		if item.CustomerPrice != nil {
			agg.CustomerTotal += *item.CustomerPrice * qty
		}
		if item.VendorCost != nil && item.CustomerPrice != nil {
			agg.MarginTotal += (*item.CustomerPrice - *item.VendorCost) * qty
		}
	}
	if agg.VendorTotal != 0 {
		agg.MarginPercent = agg.MarginTotal / agg.VendorTotal * 100
	}
	if len(items) == 0 {
		agg.AllCosted = false
	}
	agg.ReadyToSend = ReadyToSend(items)
	return agg
}

// ReadyToSend reports whether every line carries a non-null, strictly positive
// customer price. Vendor cost is not required; a quote can go to the customer
// with cost reconciliation still pending.
func ReadyToSend(items []entities.LineItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.CustomerPrice == nil || *item.CustomerPrice <= 0 {
			return false
		}
	}
	return true
}

// ValidateLineEdit checks a vendor-cost/customer-price pair as it would stand
// after an edit. Either side may be nil (partial pricing mid-workflow);
// equality is accepted.
func ValidateLineEdit(vendorCost, customerPrice *float64) error {
	if vendorCost != nil && *vendorCost < 0 {
		return ErrNegativeAmount
	}
	if customerPrice != nil && *customerPrice < 0 {
		return ErrNegativeAmount
	}
	if vendorCost != nil && customerPrice != nil && *customerPrice < *vendorCost {
		return ErrPriceBelowCost
	}
	return nil
}
