package interfaces

import (
	"context"

	"quoteflow/internal/domain/entities"
)

// IPricingService abstracts the external pricing rule engine (the waterfall:
// catalog base, contract override, volume tier, margin floor).
//
// Callers batch one request entry per unique product id; results come back
// keyed by product id, not by position, and may cover products the caller
// never asked about.
type IPricingService interface {
	BatchPriceQuote(ctx context.Context, reqs []entities.PriceRequest) ([]entities.PricingResult, error)
}
