package authz

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/cache"
	"github.com/dangerclosesec/goodworks/internal/model"
)

// ViewUserRoles is the cache view holding resolved role sets.
const ViewUserRoles = "user_roles"

// RoleStore is the backend read used by the resolver.
type RoleStore interface {
	ListRoles(ctx context.Context, userID uuid.UUID) ([]model.Role, error)
}

// RoleResolver maps identities to their granted roles. Non-fresh results
// may be up to ttl old; sensitive actions ask for a fresh resolution.
type RoleResolver struct {
	store  RoleStore
	loader *cache.Loader
	ttl    time.Duration
}

func NewRoleResolver(store RoleStore, loader *cache.Loader, ttl time.Duration) *RoleResolver {
	return &RoleResolver{store: store, loader: loader, ttl: ttl}
}

// RolesKey is the cache key of the role set of userID.
func RolesKey(userID uuid.UUID) string {
	return cache.Key(ViewUserRoles, userID.String())
}

// Resolve returns the roles of id. Anonymous callers have no roles and
// never cause a backend read. Backend failures are returned unchanged.
func (r *RoleResolver) Resolve(ctx context.Context, id *auth.Identity, fresh bool) (RoleSet, error) {
	if !id.Authenticated() {
		return RoleSet{}, nil
	}

	roles, err := cache.Fetch(ctx, r.loader, RolesKey(id.ID), fresh, r.ttl, func(ctx context.Context) ([]model.Role, error) {
		return r.store.ListRoles(ctx, id.ID)
	})
	if err != nil {
		return nil, err
	}
	return NewRoleSet(roles...), nil
}

// Principal resolves id into a Principal.
func (r *RoleResolver) Principal(ctx context.Context, id *auth.Identity, fresh bool) (Principal, error) {
	roles, err := r.Resolve(ctx, id, fresh)
	if err != nil {
		return Principal{}, err
	}
	return Principal{Identity: id, Roles: roles}, nil
}
