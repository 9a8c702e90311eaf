package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quoteflow/internal/domain/authz"
	"quoteflow/internal/domain/entities"
	"quoteflow/internal/domain/pricing"
	"quoteflow/internal/infrastructure/metrics"
	"quoteflow/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrActionNotPermitted = errors.New("action not permitted")
	ErrActionInFlight     = errors.New("another action is in flight for this quote")
	ErrQuoteNotReady      = errors.New("quote not ready to send")
	ErrLineItemNotFound   = errors.New("line item not found")
	ErrInvalidHandlerID   = errors.New("invalid handler id")
	ErrInvalidNote        = errors.New("invalid note")
	ErrInvalidSubmission  = errors.New("invalid quote submission")
	ErrOrderCreation      = errors.New("order creation failed")
)

// QuoteView is what the workflow offers upward to a rendering layer: the
// record, the capability set resolved for the requesting actor, and the
// derived pricing aggregate.
type QuoteView struct {
	Quote        entities.Quote      `json:"quote"`
	Capabilities authz.CapabilitySet `json:"capabilities"`
	Aggregate    pricing.Aggregate   `json:"aggregate"`
	LineFigures  []QuoteLineFigures  `json:"line_figures"`
}

// QuoteLineFigures pairs a line item id with its derived money figures.
type QuoteLineFigures struct {
	LineItemID string              `json:"line_item_id"`
	Figures    pricing.LineFigures `json:"figures"`
}

// ConvertResult reports a successful quote-to-order conversion.
type ConvertResult struct {
	Quote   entities.Quote `json:"quote"`
	OrderID string         `json:"order_id"`
}

// SubmitLineInput is one requested product line on a new quote.
type SubmitLineInput struct {
	ProductID   string
	Description string
	Quantity    int
}

// SubmitQuoteInput is the customer-facing submission payload.
type SubmitQuoteInput struct {
	ContactName    string
	ContactEmail   string
	ContactCompany string
	Description    string
	Priority       entities.QuotePriority
	ValidUntil     *time.Time
	Lines          []SubmitLineInput
}

// IQuoteWorkflowUseCase exposes the quote lifecycle operations.
//
// Every action resolves the actor's capability set fresh against the loaded
// record; an action whose capability is false fails with ErrActionNotPermitted
// rather than partially applying. Mutating actions on the same quote are
// serialized by an in-flight gate: the second caller is rejected, not queued.

type IQuoteWorkflowUseCase interface {
	Submit(ctx context.Context, actor *entities.Actor, input SubmitQuoteInput) (entities.Quote, error)
	Get(ctx context.Context, actor *entities.Actor, id string) (QuoteView, error)
	ListOwn(ctx context.Context, actor *entities.Actor) ([]entities.Quote, error)
	MarkRead(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error)
	Approve(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error)
	Reject(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error)
	Assign(ctx context.Context, actor *entities.Actor, id, handlerID string) (entities.Quote, error)
	Unassign(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error)
	ConvertToOrder(ctx context.Context, actor *entities.Actor, id string) (ConvertResult, error)
	Delete(ctx context.Context, actor *entities.Actor, id string) error
	Annotate(ctx context.Context, actor *entities.Actor, id, body string) (entities.Quote, error)
	UpdateLinePricing(ctx context.Context, actor *entities.Actor, id, lineID string, field pricing.PriceField, value *float64) (entities.Quote, error)
}

type QuoteWorkflowUseCase struct {
	repo     interfaces.IQuoteRepository
	orders   interfaces.IOrderService
	registry *metrics.Registry

	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ IQuoteWorkflowUseCase = (*QuoteWorkflowUseCase)(nil)

func NewQuoteWorkflowUseCase(repo interfaces.IQuoteRepository, orders interfaces.IOrderService, registry *metrics.Registry) *QuoteWorkflowUseCase {
	return &QuoteWorkflowUseCase{
		repo:     repo,
		orders:   orders,
		registry: registry,
		inFlight: make(map[string]struct{}),
	}
}

// acquire marks a quote as having a mutating action in flight. Actions on
// distinct quotes proceed independently.
func (u *QuoteWorkflowUseCase) acquire(id string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[id]; busy {
		return false
	}
	u.inFlight[id] = struct{}{}
	return true
}

func (u *QuoteWorkflowUseCase) release(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, id)
}

func (u *QuoteWorkflowUseCase) observe(action string, err error) {
	if u.registry == nil {
		return
	}
	switch {
	case err == nil:
		u.registry.Action(action, metrics.OutcomeOK)
	case errors.Is(err, ErrActionNotPermitted):
		u.registry.Action(action, metrics.OutcomeDenied)
	default:
		u.registry.Action(action, metrics.OutcomeError)
	}
}

func (u *QuoteWorkflowUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteWorkflowUseCase) Submit(ctx context.Context, actor *entities.Actor, input SubmitQuoteInput) (entities.Quote, error) {
	if actor == nil {
		return entities.Quote{}, ErrActionNotPermitted
	}
	if err := validateSubmission(input); err != nil {
		return entities.Quote{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = entities.QuotePriorityStandard
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:             uuid.NewString(),
		Status:         entities.QuoteStatusUnread,
		Priority:       priority,
		CustomerID:     strings.TrimSpace(actor.CustomerID),
		ContactName:    strings.TrimSpace(input.ContactName),
		ContactEmail:   strings.TrimSpace(input.ContactEmail),
		ContactCompany: strings.TrimSpace(input.ContactCompany),
		Description:    strings.TrimSpace(input.Description),
		ValidUntil:     input.ValidUntil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, line := range input.Lines {
		q.LineItems = append(q.LineItems, entities.LineItem{
			ID:          uuid.NewString(),
			ProductID:   strings.TrimSpace(line.ProductID),
			Description: strings.TrimSpace(line.Description),
			Quantity:    line.Quantity,
		})
	}

	created, err := u.repo.Create(ctx, q)
	u.observe("submit", err)
	return created, err
}

func validateSubmission(input SubmitQuoteInput) error {
	if strings.TrimSpace(input.ContactEmail) == "" && strings.TrimSpace(input.ContactCompany) == "" {
		return fmt.Errorf("%w: contact email or company required", ErrInvalidSubmission)
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidSubmission, input.Priority)
	}
	if len(input.Lines) == 0 {
		return fmt.Errorf("%w: at least one line item required", ErrInvalidSubmission)
	}
	for _, line := range input.Lines {
		if strings.TrimSpace(line.ProductID) == "" {
			return fmt.Errorf("%w: line item missing product id", ErrInvalidSubmission)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: line item quantity must be positive", ErrInvalidSubmission)
		}
	}
	return nil
}

func (u *QuoteWorkflowUseCase) Get(ctx context.Context, actor *entities.Actor, id string) (QuoteView, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return QuoteView{}, err
	}

	caps := authz.Resolve(actor, &q, time.Now().UTC())
	if !caps.CanView {
		return QuoteView{}, ErrActionNotPermitted
	}

	view := QuoteView{
		Quote:        q,
		Capabilities: caps,
		Aggregate:    pricing.ComputeAggregate(q.LineItems),
	}
	for _, line := range q.LineItems {
		view.LineFigures = append(view.LineFigures, QuoteLineFigures{
			LineItemID: line.ID,
			Figures:    pricing.ComputeLine(line),
		})
	}
	return view, nil
}

func (u *QuoteWorkflowUseCase) ListOwn(ctx context.Context, actor *entities.Actor) ([]entities.Quote, error) {
	if actor == nil || !actor.Role.CanReadOwn() {
		return nil, ErrActionNotPermitted
	}
	customerID := strings.TrimSpace(actor.CustomerID)
	if customerID == "" {
		return []entities.Quote{}, nil
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *QuoteWorkflowUseCase) MarkRead(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error) {
	q, err := u.mutate(ctx, actor, id, "mark_read", func(q *entities.Quote, caps authz.CapabilitySet, now time.Time) error {
		if q.EffectiveStatus(now) != entities.QuoteStatusUnread {
			if !caps.CanUpdate {
				return ErrActionNotPermitted
			}
			// Already read or later: idempotent no-op.
			return errNoMutation
		}
		if !caps.CanMarkRead {
			return ErrActionNotPermitted
		}
		q.Status = entities.QuoteStatusRead
		return nil
	})
	return q, err
}

func (u *QuoteWorkflowUseCase) Approve(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error) {
	return u.mutate(ctx, actor, id, "approve", func(q *entities.Quote, caps authz.CapabilitySet, _ time.Time) error {
		if !caps.CanApprove {
			return ErrActionNotPermitted
		}
		if !pricing.ReadyToSend(q.LineItems) {
			return ErrQuoteNotReady
		}
		q.Status = entities.QuoteStatusApproved
		return nil
	})
}

func (u *QuoteWorkflowUseCase) Reject(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error) {
	return u.mutate(ctx, actor, id, "reject", func(q *entities.Quote, caps authz.CapabilitySet, _ time.Time) error {
		if !caps.CanReject {
			return ErrActionNotPermitted
		}
		q.Status = entities.QuoteStatusRejected
		return nil
	})
}

func (u *QuoteWorkflowUseCase) Assign(ctx context.Context, actor *entities.Actor, id, handlerID string) (entities.Quote, error) {
	handlerID = strings.TrimSpace(handlerID)
	if handlerID == "" {
		return entities.Quote{}, ErrInvalidHandlerID
	}
	return u.mutate(ctx, actor, id, "assign", func(q *entities.Quote, caps authz.CapabilitySet, now time.Time) error {
		if !caps.CanAssign {
			return ErrActionNotPermitted
		}
		q.AssignedHandlerID = handlerID
		assignedAt := now
		q.AssignedAt = &assignedAt
		return nil
	})
}

func (u *QuoteWorkflowUseCase) Unassign(ctx context.Context, actor *entities.Actor, id string) (entities.Quote, error) {
	return u.mutate(ctx, actor, id, "unassign", func(q *entities.Quote, caps authz.CapabilitySet, _ time.Time) error {
		if !caps.CanAssign {
			return ErrActionNotPermitted
		}
		q.AssignedHandlerID = ""
		q.AssignedAt = nil
		return nil
	})
}

func (u *QuoteWorkflowUseCase) ConvertToOrder(ctx context.Context, actor *entities.Actor, id string) (ConvertResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ConvertResult{}, ErrInvalidQuoteID
	}
	if !u.acquire(id) {
		return ConvertResult{}, ErrActionInFlight
	}
	defer u.release(id)

	q, err := u.load(ctx, id)
	if err != nil {
		u.observe("convert", err)
		return ConvertResult{}, err
	}

	now := time.Now().UTC()
	caps := authz.Resolve(actor, &q, now)
	if !caps.CanConvert {
		u.observe("convert", ErrActionNotPermitted)
		return ConvertResult{}, ErrActionNotPermitted
	}

	orderID, err := u.orders.CreateFromQuote(ctx, q.ID)
	if err != nil {
		// Order creation failed: the quote stays approved, the actor may retry.
		log.Printf("[quote][workflow] order creation failed quote_id=%s err=%v", q.ID, err)
		u.observe("convert", err)
		return ConvertResult{}, fmt.Errorf("%w: %v", ErrOrderCreation, err)
	}

	q.Status = entities.QuoteStatusConverted
	q.UpdatedAt = now
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		// The order exists but the status write failed; the quote still reads
		// approved, so a retry would call the order service again.
		// TODO: pass an idempotency key to CreateFromQuote once the order
		// service accepts one, so a convert retry cannot duplicate the order.
		log.Printf("[quote][workflow] status write failed after order creation quote_id=%s order_id=%s err=%v", q.ID, orderID, err)
		u.observe("convert", err)
		return ConvertResult{}, err
	}
	if updated.ID == "" {
		u.observe("convert", ErrQuoteNotFound)
		return ConvertResult{}, ErrQuoteNotFound
	}

	u.observe("convert", nil)
	return ConvertResult{Quote: updated, OrderID: orderID}, nil
}

func (u *QuoteWorkflowUseCase) Delete(ctx context.Context, actor *entities.Actor, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	if !u.acquire(id) {
		return ErrActionInFlight
	}
	defer u.release(id)

	q, err := u.load(ctx, id)
	if err != nil {
		u.observe("delete", err)
		return err
	}

	caps := authz.Resolve(actor, &q, time.Now().UTC())
	if !caps.CanDelete {
		u.observe("delete", ErrActionNotPermitted)
		return ErrActionNotPermitted
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.observe("delete", err)
		return err
	}
	if deleted.ID == "" {
		u.observe("delete", ErrQuoteNotFound)
		return ErrQuoteNotFound
	}
	u.observe("delete", nil)
	return nil
}

func (u *QuoteWorkflowUseCase) Annotate(ctx context.Context, actor *entities.Actor, id, body string) (entities.Quote, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return entities.Quote{}, ErrInvalidNote
	}
	return u.mutate(ctx, actor, id, "annotate", func(q *entities.Quote, caps authz.CapabilitySet, now time.Time) error {
		if !caps.CanAnnotate {
			return ErrActionNotPermitted
		}
		q.Notes = append(q.Notes, entities.Note{
			ID:        uuid.NewString(),
			AuthorID:  actor.ID,
			Body:      body,
			CreatedAt: now,
		})
		return nil
	})
}

func (u *QuoteWorkflowUseCase) UpdateLinePricing(ctx context.Context, actor *entities.Actor, id, lineID string, field pricing.PriceField, value *float64) (entities.Quote, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.Quote{}, ErrLineItemNotFound
	}
	return u.mutate(ctx, actor, id, "price_edit", func(q *entities.Quote, caps authz.CapabilitySet, _ time.Time) error {
		if !caps.CanUpdate {
			return ErrActionNotPermitted
		}
		line := q.LineItemByID(lineID)
		if line == nil {
			return ErrLineItemNotFound
		}

		editor := pricing.NewLineEditor()
		editor.Set(lineID, field, value)
		committed, err := editor.Commit(lineID, field, *line)
		if err != nil {
			return err
		}

		switch field {
		case pricing.FieldVendorCost:
			line.VendorCost = committed
		case pricing.FieldCustomerPrice:
			line.CustomerPrice = committed
		}
		return nil
	})
}

// errNoMutation signals that an action resolved successfully without needing a
// write (e.g. marking an already-read quote as read).
var errNoMutation = errors.New("no mutation")

// mutate is the shared path for capability-gated writes: gate the quote, load
// it, resolve capabilities, apply the change, persist the full record.
func (u *QuoteWorkflowUseCase) mutate(
	ctx context.Context,
	actor *entities.Actor,
	id string,
	action string,
	apply func(q *entities.Quote, caps authz.CapabilitySet, now time.Time) error,
) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !u.acquire(id) {
		return entities.Quote{}, ErrActionInFlight
	}
	defer u.release(id)

	q, err := u.load(ctx, id)
	if err != nil {
		u.observe(action, err)
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	caps := authz.Resolve(actor, &q, now)

	if err := apply(&q, caps, now); err != nil {
		if errors.Is(err, errNoMutation) {
			u.observe(action, nil)
			return q, nil
		}
		u.observe(action, err)
		return entities.Quote{}, err
	}

	q.UpdatedAt = now
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		u.observe(action, err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		u.observe(action, ErrQuoteNotFound)
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.observe(action, nil)
	return updated, nil
}
