package entities

// RoleLevel is the numeric tier of the current actor. Levels are ordered;
// role checks are threshold comparisons plus a few dedicated permissions.
//
// The gaps between levels are deliberate so intermediate tiers can be added
// without renumbering.

type RoleLevel int

const (
	RoleCustomer RoleLevel = 10
	RoleHandler  RoleLevel = 30
	RoleTeamLead RoleLevel = 50
	RoleAdmin    RoleLevel = 70
)

// AtLeast reports whether r meets the given threshold.
func (r RoleLevel) AtLeast(min RoleLevel) bool { return r >= min }

// Relationship-scoped read permissions. Each pairs with one relationship
// predicate in the capability resolver; they never combine additively.

func (r RoleLevel) CanReadOwn() bool      { return r >= RoleCustomer }
func (r RoleLevel) CanReadAssigned() bool { return r >= RoleHandler }
func (r RoleLevel) CanReadTeam() bool     { return r >= RoleTeamLead }
func (r RoleLevel) CanReadAll() bool      { return r >= RoleTeamLead }

func (r RoleLevel) CanUpdateOwn() bool      { return r >= RoleCustomer }
func (r RoleLevel) CanUpdateAssigned() bool { return r >= RoleHandler }
func (r RoleLevel) CanUpdateAll() bool      { return r >= RoleTeamLead }

// Dedicated role permissions, independent of any relationship to the quote.

func (r RoleLevel) CanApprove() bool     { return r >= RoleTeamLead }
func (r RoleLevel) CanAssign() bool      { return r >= RoleTeamLead }
func (r RoleLevel) CanCreateOrder() bool { return r >= RoleHandler }
func (r RoleLevel) CanDelete() bool      { return r >= RoleAdmin }
func (r RoleLevel) CanAnnotate() bool    { return r >= RoleHandler }

// Actor is the current identity as exposed by the upstream identity provider.
// All ids arrive as canonical trimmed strings (normalized at the HTTP
// boundary), so relationship checks are plain string equality.
type Actor struct {
	ID          string    `json:"id"`
	Role        RoleLevel `json:"role"`
	CustomerID  string    `json:"customer_id,omitempty"`
	Email       string    `json:"email,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
}
