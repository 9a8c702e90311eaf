package entities

import "time"

// QuoteStatus represents the lifecycle of a request-for-quote.
//
// Domain notes:
//   - The quoting-service is the source of truth for quote workflow state.
//   - Forward-only transitions; converted/rejected/expired are terminal.
//   - Expiry is not an explicit transition: it is derived lazily from the
//     validity deadline (see Quote.EffectiveStatus).

type QuoteStatus string

const (
	QuoteStatusUnread    QuoteStatus = "unread"
	QuoteStatusRead      QuoteStatus = "read"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusConverted QuoteStatus = "converted"
	QuoteStatusExpired   QuoteStatus = "expired"
)

// IsValid reports whether s is a known status value.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusUnread, QuoteStatusRead, QuoteStatusApproved,
		QuoteStatusRejected, QuoteStatusConverted, QuoteStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no outbound transitions.
func (s QuoteStatus) IsTerminal() bool {
	switch s {
	case QuoteStatusConverted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// LegalNext returns the statuses reachable from s by an explicit workflow
// action. Expired never appears here; it is reached only by deadline elapse.
func (s QuoteStatus) LegalNext() []QuoteStatus {
	switch s {
	case QuoteStatusUnread:
		return []QuoteStatus{QuoteStatusRead, QuoteStatusRejected}
	case QuoteStatusRead:
		return []QuoteStatus{QuoteStatusApproved, QuoteStatusRejected}
	case QuoteStatusApproved:
		return []QuoteStatus{QuoteStatusConverted, QuoteStatusRejected}
	default:
		return nil
	}
}

// CanTransition reports whether the explicit transition s -> next is legal.
func (s QuoteStatus) CanTransition(next QuoteStatus) bool {
	for _, n := range s.LegalNext() {
		if n == next {
			return true
		}
	}
	return false
}

// Label returns the human-facing name for s. The switch is exhaustive on
// purpose: adding a status without display metadata must not compile away
// silently into an empty string for known values.
func (s QuoteStatus) Label() string {
	switch s {
	case QuoteStatusUnread:
		return "Unread"
	case QuoteStatusRead:
		return "In Review"
	case QuoteStatusApproved:
		return "Approved"
	case QuoteStatusRejected:
		return "Rejected"
	case QuoteStatusConverted:
		return "Converted"
	case QuoteStatusExpired:
		return "Expired"
	}
	return string(s)
}

// Variant returns the display variant hint used by rendering layers.
func (s QuoteStatus) Variant() string {
	switch s {
	case QuoteStatusUnread:
		return "info"
	case QuoteStatusRead:
		return "warning"
	case QuoteStatusApproved:
		return "success"
	case QuoteStatusRejected:
		return "danger"
	case QuoteStatusConverted:
		return "success"
	case QuoteStatusExpired:
		return "muted"
	}
	return "default"
}

// QuotePriority classifies handling urgency. Each priority implies a response
// SLA used for display and triage, not for any automated timer.

type QuotePriority string

const (
	QuotePriorityStandard QuotePriority = "standard"
	QuotePriorityHigh     QuotePriority = "high"
	QuotePriorityUrgent   QuotePriority = "urgent"
)

func (p QuotePriority) IsValid() bool {
	switch p {
	case QuotePriorityStandard, QuotePriorityHigh, QuotePriorityUrgent:
		return true
	}
	return false
}

// SLA returns the expected handling window for p.
func (p QuotePriority) SLA() time.Duration {
	switch p {
	case QuotePriorityUrgent:
		return 4 * time.Hour
	case QuotePriorityHigh:
		return 24 * time.Hour
	default:
		return 72 * time.Hour
	}
}

// LineItem is a single product-quantity entry within a quote.
//
// VendorCost and CustomerPrice are nullable: partial pricing is valid while a
// quote is being worked. When both are set, CustomerPrice must be >= VendorCost
// (enforced on edit, not silently here).
type LineItem struct {
	ID            string   `json:"id"`
	ProductID     string   `json:"product_id"`
	Description   string   `json:"description"`
	Quantity      int      `json:"quantity"`
	VendorCost    *float64 `json:"vendor_cost,omitempty"`
	CustomerPrice *float64 `json:"customer_price,omitempty"`
}

// Note is a staff annotation attached to a quote. History display is a
// read-only projection of these records.
type Note struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Quote is the request-for-quotation record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Identifier fields are canonical strings, normalized at the system boundary;
// nothing downstream compares ids across representations.
type Quote struct {
	ID                string        `json:"id"`
	Status            QuoteStatus   `json:"status"`
	Priority          QuotePriority `json:"priority"`
	CustomerID        string        `json:"customer_id,omitempty"`
	AssignedHandlerID string        `json:"assigned_handler_id,omitempty"`
	AssignedAt        *time.Time    `json:"assigned_at,omitempty"`
	ContactName       string        `json:"contact_name"`
	ContactEmail      string        `json:"contact_email"`
	ContactCompany    string        `json:"contact_company"`
	Description       string        `json:"description"`
	LineItems         []LineItem    `json:"line_items"`
	Notes             []Note        `json:"notes,omitempty"`
	ValidUntil        *time.Time    `json:"valid_until,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// EffectiveStatus returns the status the workflow must reason about at `now`.
// A non-terminal quote whose validity deadline has elapsed reads as expired
// without any stored transition.
func (q *Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if q == nil {
		return ""
	}
	if q.Status.IsTerminal() {
		return q.Status
	}
	if q.ValidUntil != nil && now.After(*q.ValidUntil) {
		return QuoteStatusExpired
	}
	return q.Status
}

// LineItemByID returns a pointer to the line item with the given id, or nil.
func (q *Quote) LineItemByID(id string) *LineItem {
	if q == nil {
		return nil
	}
	for i := range q.LineItems {
		if q.LineItems[i].ID == id {
			return &q.LineItems[i]
		}
	}
	return nil
}
