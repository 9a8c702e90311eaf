package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"quoteflow/internal/domain/authz"
	"quoteflow/internal/domain/entities"
	"quoteflow/internal/infrastructure/metrics"
	"quoteflow/internal/usecase/interfaces"
)

// IPricingUseCase consumes the external pricing rule waterfall for a quote.
//
// Suggestions are advisory: applying one only fills the editable customer
// price through the normal single-field edit path, never a direct commit.

type IPricingUseCase interface {
	SuggestPricing(ctx context.Context, actor *entities.Actor, quoteID string) (PricingSuggestions, error)
}

// LineSuggestion is the waterfall outcome mapped back onto one line item.
// Lines whose product had no result carry a nil suggested price; that is not
// an error condition.
type LineSuggestion struct {
	LineItemID         string                 `json:"line_item_id"`
	ProductID          string                 `json:"product_id"`
	SuggestedUnitPrice *float64               `json:"suggested_unit_price,omitempty"`
	BasePrice          *float64               `json:"base_price,omitempty"`
	TotalDiscount      float64                `json:"total_discount"`
	MarginProtected    bool                   `json:"margin_protected"`
	HasSpecialPricing  bool                   `json:"has_special_pricing"`
	AppliedRules       []entities.AppliedRule `json:"applied_rules,omitempty"`
}

// PricingSuggestions groups the per-line suggestions for one quote.
type PricingSuggestions struct {
	QuoteID string           `json:"quote_id"`
	Lines   []LineSuggestion `json:"lines"`
}

type PricingUseCase struct {
	repo     interfaces.IQuoteRepository
	service  interfaces.IPricingService
	registry *metrics.Registry
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IQuoteRepository, service interfaces.IPricingService, registry *metrics.Registry) *PricingUseCase {
	return &PricingUseCase{repo: repo, service: service, registry: registry}
}

// SuggestPricing batches one waterfall request per unique product id on the
// quote, then merges results back onto line items by product id. A result for
// a product absent from the quote is discarded; a line with no result gets no
// suggestion.
func (u *PricingUseCase) SuggestPricing(ctx context.Context, actor *entities.Actor, quoteID string) (PricingSuggestions, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return PricingSuggestions{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return PricingSuggestions{}, err
	}
	if q.ID == "" {
		return PricingSuggestions{}, ErrQuoteNotFound
	}

	caps := authz.Resolve(actor, &q, time.Now().UTC())
	if !caps.CanView {
		return PricingSuggestions{}, ErrActionNotPermitted
	}

	reqs := BuildBatchRequests(q)
	suggestions := PricingSuggestions{QuoteID: q.ID}
	if len(reqs) == 0 {
		return suggestions, nil
	}

	results, err := u.service.BatchPriceQuote(ctx, reqs)
	if err != nil {
		log.Printf("[pricing][usecase] batch price call failed quote_id=%s entries=%d err=%v", q.ID, len(reqs), err)
		return PricingSuggestions{}, err
	}
	if u.registry != nil {
		u.registry.PricingBatch(len(reqs))
	}

	byProduct := make(map[string]entities.PricingResult, len(results))
	for _, res := range results {
		byProduct[res.ProductID] = res
	}

	for _, line := range q.LineItems {
		suggestion := LineSuggestion{LineItemID: line.ID, ProductID: line.ProductID}
		if res, ok := byProduct[line.ProductID]; ok {
			final := res.FinalPrice
			base := res.BasePrice
			suggestion.SuggestedUnitPrice = &final
			suggestion.BasePrice = &base
			suggestion.TotalDiscount = res.TotalDiscount
			suggestion.MarginProtected = res.MarginProtected
			suggestion.HasSpecialPricing = res.HasSpecialPricing()
			suggestion.AppliedRules = res.AppliedRules
		}
		suggestions.Lines = append(suggestions.Lines, suggestion)
	}
	return suggestions, nil
}

// BuildBatchRequests produces one entry per unique product id on the quote.
// The first line's quantity wins for a repeated product; the waterfall tiers
// on quantity bands wide enough that sibling lines of the same product land in
// the same band.
func BuildBatchRequests(q entities.Quote) []entities.PriceRequest {
	seen := make(map[string]struct{}, len(q.LineItems))
	reqs := make([]entities.PriceRequest, 0, len(q.LineItems))
	for _, line := range q.LineItems {
		productID := strings.TrimSpace(line.ProductID)
		if productID == "" {
			continue
		}
		if _, dup := seen[productID]; dup {
			continue
		}
		seen[productID] = struct{}{}
		reqs = append(reqs, entities.PriceRequest{
			ProductID:  productID,
			CustomerID: q.CustomerID,
			Quantity:   line.Quantity,
		})
	}
	return reqs
}
