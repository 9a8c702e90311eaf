package entities

// RuleKind identifies a stage in the external pricing rule waterfall.

type RuleKind string

const (
	RuleKindCatalogBase      RuleKind = "catalog_base"
	RuleKindContractOverride RuleKind = "contract_override"
	RuleKindVolumeTier       RuleKind = "volume_tier"
	RuleKindMarginFloor      RuleKind = "margin_floor"
)

// AppliedRule is one waterfall stage that fired for a product, with the price
// on either side of it.
type AppliedRule struct {
	Name        string   `json:"name"`
	Kind        RuleKind `json:"kind"`
	PriceBefore float64  `json:"price_before"`
	PriceAfter  float64  `json:"price_after"`
}

// PriceRequest is one entry of a batched pricing call: one per unique product
// id on the quote, never one per line item.
type PriceRequest struct {
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Quantity   int    `json:"quantity"`
}

// PricingResult is the waterfall outcome for a single product. It is ephemeral:
// recomputed on demand and never persisted by this service.
type PricingResult struct {
	ProductID       string        `json:"product_id"`
	BasePrice       float64       `json:"base_price"`
	FinalPrice      float64       `json:"final_price"`
	TotalDiscount   float64       `json:"total_discount"`
	AppliedRules    []AppliedRule `json:"applied_rules"`
	MarginProtected bool          `json:"margin_protected"`
}

// HasSpecialPricing reports whether the result should be surfaced as a
// suggestion affordance: more than one rule fired, a discount applies, or the
// margin floor overrode a lower computed price. Carries no authorization
// meaning.
func (p PricingResult) HasSpecialPricing() bool {
	return len(p.AppliedRules) > 1 || p.TotalDiscount != 0 || p.MarginProtected
}
