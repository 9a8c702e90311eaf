package pricing

import (
	"errors"

	"quoteflow/internal/domain/entities"
)

// PriceField names one of the two editable amounts on a line item.

type PriceField string

const (
	FieldVendorCost    PriceField = "vendor_cost"
	FieldCustomerPrice PriceField = "customer_price"
)

func (f PriceField) IsValid() bool {
	return f == FieldVendorCost || f == FieldCustomerPrice
}

// ErrUnknownField rejects an edit naming a field other than the two amounts.
var ErrUnknownField = errors.New("unknown price field")

// LineEditor holds in-progress per-line edits before they are committed.
//
// An edit is a scratch value keyed by (line id, field). Commit validates the
// scratch value against the line's other committed amount: valid edits are
// returned for persistence and dropped from scratch, invalid edits stay in
// scratch so the interaction surface can keep showing the rejected input with
// an inline error until corrected.
type LineEditor struct {
	scratch map[editKey]*float64
}

type editKey struct {
	lineID string
	field  PriceField
}

func NewLineEditor() *LineEditor {
	return &LineEditor{scratch: make(map[editKey]*float64)}
}

// Set records a scratch value for a line field. A nil value clears the amount.
func (e *LineEditor) Set(lineID string, field PriceField, value *float64) {
	e.scratch[editKey{lineID, field}] = value
}

// Pending returns the scratch value for a line field, if one is held.
func (e *LineEditor) Pending(lineID string, field PriceField) (*float64, bool) {
	v, ok := e.scratch[editKey{lineID, field}]
	return v, ok
}

// Discard drops the scratch value without committing, reverting the field to
// the committed record.
func (e *LineEditor) Discard(lineID string, field PriceField) {
	delete(e.scratch, editKey{lineID, field})
}

// Commit validates the held scratch value against the committed line and, if
// valid, returns it and clears the scratch entry. If no scratch value is held
// the committed value is returned unchanged. On validation failure the scratch
// value is retained and the error reported.
func (e *LineEditor) Commit(lineID string, field PriceField, line entities.LineItem) (*float64, error) {
	if !field.IsValid() {
		return nil, ErrUnknownField
	}

	key := editKey{lineID, field}
	value, held := e.scratch[key]
	if !held {
		switch field {
		case FieldVendorCost:
			return line.VendorCost, nil
		default:
			return line.CustomerPrice, nil
		}
	}

	vendorCost, customerPrice := line.VendorCost, line.CustomerPrice
	switch field {
	case FieldVendorCost:
		vendorCost = value
	case FieldCustomerPrice:
		customerPrice = value
	}

	if err := ValidateLineEdit(vendorCost, customerPrice); err != nil {
		return nil, err
	}

	delete(e.scratch, key)
	return value, nil
}
