package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidPriceField = errors.New("invalid price field")
)

// SubmitLineRequest is one requested product line on a new quote.
type SubmitLineRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" binding:"required"`
}

// SubmitQuoteRequest is the customer-facing submission payload.
type SubmitQuoteRequest struct {
	ContactName    string              `json:"contact_name"`
	ContactEmail   string              `json:"contact_email"`
	ContactCompany string              `json:"contact_company"`
	Description    string              `json:"description"`
	Priority       string              `json:"priority"`
	ValidUntil     *time.Time          `json:"valid_until"`
	Lines          []SubmitLineRequest `json:"lines" binding:"required"`
}

// AssignRequest carries the handler to assign a quote to.
type AssignRequest struct {
	HandlerID string `json:"handler_id" binding:"required"`
}

func (r AssignRequest) ResolveHandlerID() string {
	return strings.TrimSpace(r.HandlerID)
}

// NoteRequest carries a staff annotation body.
type NoteRequest struct {
	Body string `json:"body" binding:"required"`
}

// LinePricingRequest is a single-field pricing edit: exactly one of the two
// amounts, identified by field name. A null value clears the amount.
type LinePricingRequest struct {
	Field string   `json:"field" binding:"required"`
	Value *float64 `json:"value"`
}

// ResolveField validates the field name against the two editable amounts.
func (r LinePricingRequest) ResolveField() (string, error) {
	field := strings.TrimSpace(strings.ToLower(r.Field))
	switch field {
	case "vendor_cost", "customer_price":
		return field, nil
	}
	return "", ErrInvalidPriceField
}
