// Package authz contains the pure authorization logic of the quoting workflow:
// relationship classification and capability resolution. Both are total
// functions; absent input yields the zero (all-false) answer, never an error.
package authz

import (
	"strings"

	"quoteflow/internal/domain/entities"
)

// RelationshipContext captures how the actor stands relative to one quote.
// The four facts are independent and not mutually exclusive.
type RelationshipContext struct {
	IsOwn       bool `json:"is_own"`
	IsAssigned  bool `json:"is_assigned"`
	IsTeamScope bool `json:"is_team_scope"`
	IsOrgScope  bool `json:"is_org_scope"`
}

// scopeThreshold is the role level at which an actor sees beyond ownership
// and assignment. Team and org scope share it today; they are kept as two
// predicates so a policy change can narrow one without the other.
const scopeThreshold = entities.RoleTeamLead

// Classify derives the relationship facts for (actor, quote).
//
// Ownership falls back through three comparisons in strict priority order:
// customer affiliation id, then contact email, then company name. The first
// pair where both sides are present decides; later pairs are not consulted.
func Classify(actor *entities.Actor, quote *entities.Quote) RelationshipContext {
	if actor == nil || quote == nil {
		return RelationshipContext{}
	}

	return RelationshipContext{
		IsOwn:       classifyOwnership(actor, quote),
		IsAssigned:  normalizeID(quote.AssignedHandlerID) != "" && normalizeID(quote.AssignedHandlerID) == normalizeID(actor.ID),
		IsTeamScope: actor.Role.AtLeast(scopeThreshold),
		IsOrgScope:  actor.Role.AtLeast(scopeThreshold),
	}
}

func classifyOwnership(actor *entities.Actor, quote *entities.Quote) bool {
	if id := normalizeID(actor.CustomerID); id != "" && normalizeID(quote.CustomerID) != "" {
		return id == normalizeID(quote.CustomerID)
	}
	if email := normalizeFold(actor.Email); email != "" && normalizeFold(quote.ContactEmail) != "" {
		return email == normalizeFold(quote.ContactEmail)
	}
	if company := normalizeFold(actor.CompanyName); company != "" && normalizeFold(quote.ContactCompany) != "" {
		return company == normalizeFold(quote.ContactCompany)
	}
	return false
}

// normalizeID is the single canonical identifier form used for comparisons.
// Ids are also normalized on ingestion at the HTTP boundary; doing it again
// here keeps the classifier total over records loaded from older data.
func normalizeID(raw string) string {
	return strings.TrimSpace(raw)
}

func normalizeFold(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
