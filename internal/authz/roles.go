// Package authz is the authorization core: role resolution, the policy
// deciding whether a principal may perform an action on a resource, and the
// NGO and volunteer application lifecycles.
package authz

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/model"
)

// RoleSet is the set of roles granted to one identity. The zero value is
// the empty set.
type RoleSet map[model.Role]struct{}

func NewRoleSet(roles ...model.Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		if r.Valid() {
			s[r] = struct{}{}
		}
	}
	return s
}

// Has tests exact membership; there is no role hierarchy.
func (s RoleSet) Has(r model.Role) bool {
	_, ok := s[r]
	return ok
}

// List returns the roles in a stable order.
func (s RoleSet) List() []model.Role {
	out := make([]model.Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s RoleSet) String() string {
	parts := make([]string, 0, len(s))
	for _, r := range s.List() {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}

// Principal is the caller as seen by the policy.
type Principal struct {
	Identity *auth.Identity
	Roles    RoleSet
}

// Anonymous is the principal of an unauthenticated caller.
var Anonymous = Principal{}

func (p Principal) Authenticated() bool {
	return p.Identity.Authenticated()
}

// UserID returns the caller id, uuid.Nil for anonymous callers.
func (p Principal) UserID() uuid.UUID {
	if !p.Authenticated() {
		return uuid.Nil
	}
	return p.Identity.ID
}

func (p Principal) Has(r model.Role) bool {
	return p.Roles.Has(r)
}
