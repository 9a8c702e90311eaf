package authz

import (
	"time"

	"quoteflow/internal/domain/entities"
)

// CapabilitySet is the derived, per-(actor, quote) set of permitted actions,
// plus the relationship context it was resolved from. It is recomputed on
// every call and never cached across quotes.
type CapabilitySet struct {
	CanView              bool `json:"can_view"`
	CanUpdate            bool `json:"can_update"`
	CanMarkRead          bool `json:"can_mark_read"`
	CanApprove           bool `json:"can_approve"`
	CanReject            bool `json:"can_reject"`
	CanAssign            bool `json:"can_assign"`
	CanConvert           bool `json:"can_convert"`
	CanDelete            bool `json:"can_delete"`
	CanAnnotate          bool `json:"can_annotate"`
	CanViewHistory       bool `json:"can_view_history"`
	CanSubmitForApproval bool `json:"can_submit_for_approval"`

	Relationship RelationshipContext `json:"relationship"`
}

// Resolve computes the capability set for (actor, quote) at `now`.
//
// Per capability, qualifying relationships are independent ORs: any one grants
// it. Status gates use the effective status, so an elapsed validity deadline
// closes the workflow without a stored transition. Absent input resolves to
// the all-false set; the caller renders access-denied, this function never
// fails.
func Resolve(actor *entities.Actor, quote *entities.Quote, now time.Time) CapabilitySet {
	if actor == nil || quote == nil {
		return CapabilitySet{}
	}

	rel := Classify(actor, quote)
	role := actor.Role
	status := quote.EffectiveStatus(now)

	canView := (rel.IsOwn && role.CanReadOwn()) ||
		(rel.IsAssigned && role.CanReadAssigned()) ||
		(rel.IsTeamScope && role.CanReadTeam()) ||
		(rel.IsOrgScope && role.CanReadAll())

	// Team scope alone does not grant update.
	canUpdate := (rel.IsOwn && role.CanUpdateOwn()) ||
		(rel.IsAssigned && role.CanUpdateAssigned()) ||
		(rel.IsOrgScope && role.CanUpdateAll())

	staff := role.AtLeast(entities.RoleHandler)

	return CapabilitySet{
		CanView:     canView,
		CanUpdate:   canUpdate,
		CanMarkRead: canUpdate && status == entities.QuoteStatusUnread,
		CanApprove:  role.CanApprove() && status == entities.QuoteStatusRead,
		CanReject: canUpdate &&
			(status == entities.QuoteStatusUnread || status == entities.QuoteStatusRead),
		CanAssign:      role.CanAssign(),
		CanConvert:     role.CanCreateOrder() && status == entities.QuoteStatusApproved,
		CanDelete:      role.CanDelete(),
		CanAnnotate:    role.CanAnnotate(),
		CanViewHistory: staff,
		CanSubmitForApproval: canUpdate &&
			status == entities.QuoteStatusRead &&
			!role.CanApprove() &&
			staff,
		Relationship: rel,
	}
}
