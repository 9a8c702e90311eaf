package interfaces

import (
	"context"

	"quoteflow/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Update is full-record replace: callers construct the complete updated record
// before writing, there is no partial-patch contract. A zero-value Quote with
// empty ID means not found; the repository does not invent errors for that.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
}
