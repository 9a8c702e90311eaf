package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quoteflow/internal/adapter/http/dto/request"
	"quoteflow/internal/adapter/http/dto/response"
	"quoteflow/internal/adapter/http/middleware"
	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/pricing"
	"quoteflow/internal/usecase"
	"quoteflow/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote workflow.
//
// Capability denials surface as 403 without detail: the action was simply
// never offered to this actor.

type QuoteHandler struct {
	usecase usecase.IQuoteWorkflowUseCase
}

func NewQuoteHandler(uc usecase.IQuoteWorkflowUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitQuote handles the customer-facing quote submission.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input := usecase.SubmitQuoteInput{
		ContactName:    payload.ContactName,
		ContactEmail:   payload.ContactEmail,
		ContactCompany: payload.ContactCompany,
		Description:    payload.Description,
		Priority:       entities.QuotePriority(payload.Priority),
		ValidUntil:     payload.ValidUntil,
	}
	for _, line := range payload.Lines {
		input.Lines = append(input.Lines, usecase.SubmitLineInput{
			ProductID:   line.ProductID,
			Description: line.Description,
			Quantity:    line.Quantity,
		})
	}

	created, err := h.usecase.Submit(c.Request.Context(), middleware.ActorFromContext(c), input)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// GetQuote returns the quote, the actor's capability set, and pricing
// aggregates.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteView(view))
}

// ListOwnQuotes returns the quotes owned by the actor's customer affiliation.
func (h *QuoteHandler) ListOwnQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListOwn(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) MarkRead(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.MarkRead)
}

func (h *QuoteHandler) Approve(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Approve)
}

func (h *QuoteHandler) Reject(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Reject)
}

func (h *QuoteHandler) Unassign(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Unassign)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	action func(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error),
) {
	updated, err := action(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) Assign(c *gin.Context) {
	var payload request.AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Assign(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"), payload.ResolveHandlerID())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) ConvertToOrder(c *gin.Context) {
	result, err := h.usecase.ConvertToOrder(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConvertResult(result))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Annotate(c.Request.Context(), middleware.ActorFromContext(c), c.Param("id"), payload.Body)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// UpdateLinePricing commits a single-field pricing edit on one line item.
func (h *QuoteHandler) UpdateLinePricing(c *gin.Context) {
	var payload request.LinePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	field, err := payload.ResolveField()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateLinePricing(
		c.Request.Context(),
		middleware.ActorFromContext(c),
		c.Param("id"),
		c.Param("line_id"),
		pricing.PriceField(field),
		payload.Value,
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidHandlerID),
		errors.Is(err, usecase.ErrInvalidNote),
		errors.Is(err, usecase.ErrInvalidSubmission):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActionNotPermitted):
		return pkg.NewDomainErrorSimple("ACTION_NOT_PERMITTED", "Action not permitted", http.StatusForbidden)
	case errors.Is(err, usecase.ErrActionInFlight):
		return pkg.NewDomainErrorSimple("ACTION_IN_FLIGHT", "Another action is in progress for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotReady):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_READY", "Every line item needs a positive customer price", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrPriceBelowCost):
		return pkg.NewDomainErrorSimple("PRICE_BELOW_COST", "Customer price must not be below vendor cost", http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrNegativeAmount),
		errors.Is(err, pricing.ErrUnknownField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderCreation):
		return pkg.NewDomainError("ORDER_CREATION_FAILED", "Order creation failed; the quote is still approved", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
