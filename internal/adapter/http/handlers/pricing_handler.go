package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quoteflow/internal/adapter/http/middleware"
	"quoteflow/internal/usecase"
	"quoteflow/pkg"
)

// PricingHandler exposes the pricing-suggestion flow: one batched waterfall
// call per request, results mapped back per line item.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) SuggestPricing(c *gin.Context) {
	suggestions, err := h.usecase.SuggestPricing(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActionNotPermitted):
		return pkg.NewDomainErrorSimple("ACTION_NOT_PERMITTED", "Action not permitted", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("PRICING_UNAVAILABLE", "Pricing suggestions are unavailable", err, http.StatusBadGateway)
	}
}
