package routes

import (
	"github.com/gin-gonic/gin"

	"quoteflow/internal/adapter/http/handlers"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, pricingHandler *handlers.PricingHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("", quoteHandler.ListOwnQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)

		// Workflow actions. Each re-resolves the actor's capabilities server-side.
		quotes.PATCH("/:id/read", quoteHandler.MarkRead)
		quotes.PATCH("/:id/approve", quoteHandler.Approve)
		quotes.PATCH("/:id/reject", quoteHandler.Reject)
		quotes.PATCH("/:id/assign", quoteHandler.Assign)
		quotes.PATCH("/:id/unassign", quoteHandler.Unassign)
		quotes.PATCH("/:id/convert", quoteHandler.ConvertToOrder)

		quotes.POST("/:id/notes", quoteHandler.AddNote)
		quotes.PATCH("/:id/lines/:line_id/pricing", quoteHandler.UpdateLinePricing)
		quotes.POST("/:id/pricing/suggestions", pricingHandler.SuggestPricing)
	}
}
