package authz

import (
	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type Action string

const (
	ActionListCauses            Action = "list_causes"
	ActionReadCause             Action = "read_cause"
	ActionListOpportunities     Action = "list_opportunities"
	ActionCreateNGO             Action = "create_ngo"
	ActionTransitionNGO         Action = "transition_ngo"
	ActionCreateCause           Action = "create_cause"
	ActionCreateOpportunity     Action = "create_opportunity"
	ActionCreateDonation        Action = "create_donation"
	ActionCreateApplication     Action = "create_application"
	ActionTransitionApplication Action = "transition_application"
	ActionUpdateProfile         Action = "update_profile"
	ActionReadOwn               Action = "read_own"
	ActionReadNGODashboard      Action = "read_ngo_dashboard"
	ActionAdminRead             Action = "admin_read"
	ActionGrantRole             Action = "grant_role"
	ActionJoinRole              Action = "join_role"
)

// Resource carries the entity facts a decision depends on. Only the fields
// relevant to the action need to be set.
type Resource struct {
	Type string
	ID   string

	// NGO is the target NGO, or the NGO owning the target entity.
	NGO *model.NGO
	// OwnerID is the identity owning a personal resource such as a profile.
	OwnerID uuid.UUID

	TargetNGOStatus model.NGOStatus
	TargetRole      model.Role

	ApplicationStatus       model.ApplicationStatus
	TargetApplicationStatus model.ApplicationStatus
}

// Decision is the outcome of a policy check.
type Decision struct {
	Allowed bool
	Reason  domain.DenyReason
	Detail  string
}

var allow = Decision{Allowed: true}

func deny(reason domain.DenyReason, detail string) Decision {
	return Decision{Reason: reason, Detail: detail}
}

// Err converts a negative decision into a *domain.AuthorizationError.
func (d Decision) Err(a Action, r Resource) error {
	if d.Allowed {
		return nil
	}
	res := r.Type
	if r.ID != "" {
		res += " " + r.ID
	}
	return &domain.AuthorizationError{
		Reason:   d.Reason,
		Action:   string(a),
		Resource: res,
		Detail:   d.Detail,
	}
}

type requirement struct {
	authenticated bool
	role          model.Role
}

var requirements = map[Action]requirement{
	ActionListCauses:            {},
	ActionReadCause:             {},
	ActionListOpportunities:     {},
	ActionCreateDonation:        {},
	ActionCreateNGO:             {authenticated: true},
	ActionCreateApplication:     {authenticated: true},
	ActionUpdateProfile:         {authenticated: true},
	ActionReadOwn:               {authenticated: true},
	ActionJoinRole:              {authenticated: true},
	ActionTransitionNGO:         {authenticated: true, role: model.RolePlatformAdmin},
	ActionAdminRead:             {authenticated: true, role: model.RolePlatformAdmin},
	ActionGrantRole:             {authenticated: true, role: model.RolePlatformAdmin},
	ActionCreateCause:           {authenticated: true, role: model.RoleNGOAdmin},
	ActionCreateOpportunity:     {authenticated: true, role: model.RoleNGOAdmin},
	ActionTransitionApplication: {authenticated: true, role: model.RoleNGOAdmin},
	ActionReadNGODashboard:      {authenticated: true, role: model.RoleNGOAdmin},
}

// selfServiceRoles may be taken by any signed-in user without an admin.
var selfServiceRoles = map[model.Role]bool{
	model.RoleDonor:     true,
	model.RoleVolunteer: true,
}

// RequiresRole reports whether deciding a needs the caller's roles.
func RequiresRole(a Action) bool {
	return requirements[a].role != ""
}

// Precheck evaluates the parts of the policy that depend only on the
// caller. It runs before any entity is read so that callers lacking the
// identity or role for an action never reach the backend.
func Precheck(p Principal, a Action) Decision {
	req, ok := requirements[a]
	if !ok {
		return deny(domain.DenyWrongRole, "unknown action")
	}
	if req.authenticated && !p.Authenticated() {
		return deny(domain.DenyUnauthenticated, "sign in required")
	}
	if req.role != "" && !p.Has(req.role) {
		return deny(domain.DenyWrongRole, "requires "+string(req.role))
	}
	return allow
}

// Authorize decides whether p may perform a on r. Reasons are checked in a
// fixed order: unauthenticated, wrong role, not owner, invalid state.
func Authorize(p Principal, a Action, r Resource) Decision {
	if d := Precheck(p, a); !d.Allowed {
		return d
	}

	switch a {
	case ActionTransitionNGO:
		if r.NGO == nil {
			return deny(domain.DenyInvalidStateTransition, "unknown ngo")
		}
		if err := NGOTransition(r.NGO.Status, r.TargetNGOStatus); err != nil {
			return deny(domain.DenyInvalidStateTransition, err.Error())
		}

	case ActionCreateCause, ActionCreateOpportunity:
		if !ownsNGO(p, r.NGO) {
			return deny(domain.DenyNotOwner, "caller did not register this ngo")
		}
		if !r.NGO.Approved() {
			return deny(domain.DenyInvalidStateTransition, "ngo is "+string(r.NGO.Status)+", not approved")
		}

	case ActionTransitionApplication:
		if !ownsNGO(p, r.NGO) {
			return deny(domain.DenyNotOwner, "opportunity belongs to another ngo")
		}
		if _, err := ApplicationTransition(r.ApplicationStatus, r.TargetApplicationStatus); err != nil {
			return deny(domain.DenyInvalidStateTransition, err.Error())
		}

	case ActionReadNGODashboard:
		if !ownsNGO(p, r.NGO) {
			return deny(domain.DenyNotOwner, "caller did not register this ngo")
		}

	case ActionJoinRole:
		if !selfServiceRoles[r.TargetRole] {
			return deny(domain.DenyWrongRole, string(r.TargetRole)+" must be granted by a platform admin")
		}

	case ActionUpdateProfile, ActionReadOwn:
		if r.OwnerID != p.UserID() {
			return deny(domain.DenyNotOwner, "resource belongs to another user")
		}
	}

	return allow
}

func ownsNGO(p Principal, ngo *model.NGO) bool {
	return ngo != nil && p.Authenticated() && ngo.CreatedBy == p.UserID()
}

// Listable reports whether a cause or opportunity appears in public
// listings: its NGO is approved and the row itself is active.
func Listable(ngo *model.NGO, active bool) bool {
	return active && ngo.Approved()
}

// CanSeeUnlisted reports whether p may read a cause or opportunity that is
// not publicly listable. Only the owning NGO admin and platform admins can.
func CanSeeUnlisted(p Principal, ngo *model.NGO) bool {
	if !p.Authenticated() {
		return false
	}
	if p.Has(model.RolePlatformAdmin) {
		return true
	}
	return p.Has(model.RoleNGOAdmin) && ownsNGO(p, ngo)
}
