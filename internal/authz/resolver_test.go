package authz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/cache"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type fakeRoleStore struct {
	mu    sync.Mutex
	roles map[uuid.UUID][]model.Role
	calls int
	err   error
}

func (f *fakeRoleStore) ListRoles(_ context.Context, userID uuid.UUID) ([]model.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[userID], nil
}

func (f *fakeRoleStore) grant(userID uuid.UUID, r model.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[userID] = append(f.roles[userID], r)
}

func newResolver(store RoleStore) (*RoleResolver, *cache.Loader) {
	loader := cache.NewLoader(cache.NewMemoryStore(64, time.Minute), time.Minute, nil)
	return NewRoleResolver(store, loader, 30*time.Second), loader
}

func TestResolveAnonymousSkipsBackend(t *testing.T) {
	store := &fakeRoleStore{roles: map[uuid.UUID][]model.Role{}}
	r, _ := newResolver(store)

	roles, err := r.Resolve(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Empty(t, roles)

	roles, err = r.Resolve(context.Background(), &auth.Identity{}, true)
	require.NoError(t, err)
	assert.Empty(t, roles)

	assert.Equal(t, 0, store.calls)
}

func TestResolveNoRows(t *testing.T) {
	store := &fakeRoleStore{roles: map[uuid.UUID][]model.Role{}}
	r, _ := newResolver(store)

	roles, err := r.Resolve(context.Background(), &auth.Identity{ID: uuid.New()}, false)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestResolveCachesUntilFreshOrInvalidated(t *testing.T) {
	ctx := context.Background()
	id := &auth.Identity{ID: uuid.New()}
	store := &fakeRoleStore{roles: map[uuid.UUID][]model.Role{id.ID: {model.RoleDonor}}}
	r, loader := newResolver(store)

	roles, err := r.Resolve(ctx, id, false)
	require.NoError(t, err)
	assert.True(t, roles.Has(model.RoleDonor))

	store.grant(id.ID, model.RoleNGOAdmin)

	// bounded staleness: the cached set is still served
	roles, err = r.Resolve(ctx, id, false)
	require.NoError(t, err)
	assert.False(t, roles.Has(model.RoleNGOAdmin))
	assert.Equal(t, 1, store.calls)

	// a fresh resolution sees the grant
	roles, err = r.Resolve(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, roles.Has(model.RoleNGOAdmin))

	store.grant(id.ID, model.RoleVolunteer)
	require.NoError(t, loader.Invalidate(ctx, RolesKey(id.ID)))

	p, err := r.Principal(ctx, id, false)
	require.NoError(t, err)
	assert.True(t, p.Has(model.RoleVolunteer))
	assert.Equal(t, id.ID, p.UserID())
}

func TestResolvePropagatesBackendError(t *testing.T) {
	backendErr := &domain.BackendError{Op: "list roles", Err: errors.New("connection refused")}
	store := &fakeRoleStore{err: backendErr}
	r, _ := newResolver(store)

	_, err := r.Resolve(context.Background(), &auth.Identity{ID: uuid.New()}, false)
	assert.ErrorIs(t, err, domain.ErrBackend)
}
