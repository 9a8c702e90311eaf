package interfaces

import "context"

// IOrderService abstracts the external order system that turns an approved
// quote into an order. A failed call must leave the quote untouched; the
// workflow only records the converted status after the order id comes back.
type IOrderService interface {
	CreateFromQuote(ctx context.Context, quoteID string) (orderID string, err error)
}
