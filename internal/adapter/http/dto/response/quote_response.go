package response

import (
	"time"

	"quoteflow/internal/domain/authz"
	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/pricing"
	"quoteflow/internal/usecase"
)

type LineItemResponse struct {
	ID            string   `json:"id"`
	ProductID     string   `json:"product_id"`
	Description   string   `json:"description,omitempty"`
	Quantity      int      `json:"quantity"`
	VendorCost    *float64 `json:"vendor_cost,omitempty"`
	CustomerPrice *float64 `json:"customer_price,omitempty"`
	LineTotal     *float64 `json:"line_total,omitempty"`
	MarginAmount  *float64 `json:"margin_amount,omitempty"`
	MarginPercent *float64 `json:"margin_percent,omitempty"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type QuoteResponse struct {
	ID                string             `json:"id"`
	Status            string             `json:"status"`
	StatusLabel       string             `json:"status_label"`
	StatusVariant     string             `json:"status_variant"`
	Priority          string             `json:"priority"`
	CustomerID        string             `json:"customer_id,omitempty"`
	AssignedHandlerID string             `json:"assigned_handler_id,omitempty"`
	AssignedAt        *time.Time         `json:"assigned_at,omitempty"`
	ContactName       string             `json:"contact_name,omitempty"`
	ContactEmail      string             `json:"contact_email,omitempty"`
	ContactCompany    string             `json:"contact_company,omitempty"`
	Description       string             `json:"description,omitempty"`
	LineItems         []LineItemResponse `json:"line_items"`
	Notes             []NoteResponse     `json:"notes,omitempty"`
	ValidUntil        *time.Time         `json:"valid_until,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:                q.ID,
		Status:            string(q.Status),
		StatusLabel:       q.Status.Label(),
		StatusVariant:     q.Status.Variant(),
		Priority:          string(q.Priority),
		CustomerID:        q.CustomerID,
		AssignedHandlerID: q.AssignedHandlerID,
		AssignedAt:        q.AssignedAt,
		ContactName:       q.ContactName,
		ContactEmail:      q.ContactEmail,
		ContactCompany:    q.ContactCompany,
		Description:       q.Description,
		LineItems:         make([]LineItemResponse, 0, len(q.LineItems)),
		ValidUntil:        q.ValidUntil,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
	for _, line := range q.LineItems {
		figures := pricing.ComputeLine(line)
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:            line.ID,
			ProductID:     line.ProductID,
			Description:   line.Description,
			Quantity:      line.Quantity,
			VendorCost:    line.VendorCost,
			CustomerPrice: line.CustomerPrice,
			LineTotal:     figures.LineTotal,
			MarginAmount:  figures.MarginAmount,
			MarginPercent: figures.MarginPercent,
		})
	}
	for _, note := range q.Notes {
		resp.Notes = append(resp.Notes, NoteResponse{
			ID:        note.ID,
			AuthorID:  note.AuthorID,
			Body:      note.Body,
			CreatedAt: note.CreatedAt,
		})
	}
	return resp
}

// QuoteViewResponse is the detail payload: the record plus the capability set
// resolved for the requesting actor and the derived aggregate.
type QuoteViewResponse struct {
	Quote        QuoteResponse       `json:"quote"`
	Capabilities authz.CapabilitySet `json:"capabilities"`
	Aggregate    pricing.Aggregate   `json:"aggregate"`
}

func FromQuoteView(view usecase.QuoteView) QuoteViewResponse {
	return QuoteViewResponse{
		Quote:        FromQuote(view.Quote),
		Capabilities: view.Capabilities,
		Aggregate:    view.Aggregate,
	}
}

type ConvertResponse struct {
	Quote   QuoteResponse `json:"quote"`
	OrderID string        `json:"order_id"`
}

func FromConvertResult(result usecase.ConvertResult) ConvertResponse {
	return ConvertResponse{Quote: FromQuote(result.Quote), OrderID: result.OrderID}
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

func FromQuotes(quotes []entities.Quote) QuoteListResponse {
	resp := QuoteListResponse{Quotes: make([]QuoteResponse, 0, len(quotes))}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, FromQuote(q))
	}
	return resp
}
