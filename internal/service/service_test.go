package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dangerclosesec/goodworks/internal/audit"
	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/cache"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/metrics"
	"github.com/dangerclosesec/goodworks/internal/mocks"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type recordingAudit struct {
	mu        sync.Mutex
	decisions []audit.Entry
	mutations []audit.Entry
}

func (r *recordingAudit) LogDecision(_ context.Context, e audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, e)
	return nil
}

func (r *recordingAudit) LogMutation(_ context.Context, e audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = append(r.mutations, e)
	return nil
}

func (r *recordingAudit) lastDecision() audit.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.decisions) == 0 {
		return audit.Entry{}
	}
	return r.decisions[len(r.decisions)-1]
}

type fixture struct {
	ngos     *mocks.MockNGORepositoryIface
	causes   *mocks.MockCauseRepositoryIface
	opps     *mocks.MockOpportunityRepositoryIface
	dons     *mocks.MockDonationRepositoryIface
	apps     *mocks.MockApplicationRepositoryIface
	profiles *mocks.MockProfileRepositoryIface
	roles    *mocks.MockUserRoleRepositoryIface
	audit    *recordingAudit
	metrics  *metrics.Metrics
	facade   *Facade
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ngos:     mocks.NewMockNGORepositoryIface(ctrl),
		causes:   mocks.NewMockCauseRepositoryIface(ctrl),
		opps:     mocks.NewMockOpportunityRepositoryIface(ctrl),
		dons:     mocks.NewMockDonationRepositoryIface(ctrl),
		apps:     mocks.NewMockApplicationRepositoryIface(ctrl),
		profiles: mocks.NewMockProfileRepositoryIface(ctrl),
		roles:    mocks.NewMockUserRoleRepositoryIface(ctrl),
		audit:    &recordingAudit{},
		metrics:  metrics.New(nil),
	}

	loader := cache.NewLoader(cache.NewMemoryStore(256, time.Minute), time.Minute, f.metrics)
	f.facade = NewFacade(Deps{
		NGOs:          f.ngos,
		Causes:        f.causes,
		Opportunities: f.opps,
		Donations:     f.dons,
		Applications:  f.apps,
		Profiles:      f.profiles,
		Roles:         f.roles,
		Loader:        loader,
		Audit:         f.audit,
		Metrics:       f.metrics,
	})
	return f
}

func (f *fixture) withRoles(userID uuid.UUID, roles ...model.Role) {
	f.roles.EXPECT().ListRoles(gomock.Any(), userID).Return(roles, nil).AnyTimes()
}

func as(userID uuid.UUID) context.Context {
	return auth.WithIdentity(context.Background(), &auth.Identity{ID: userID, Email: "user@example.org"})
}

func ngoOf(owner uuid.UUID, status model.NGOStatus) *model.NGO {
	return &model.NGO{ID: uuid.New(), Name: "Hope Trust", CreatedBy: owner, Status: status}
}

func TestDeniedRequestsNeverReachTheBackend(t *testing.T) {
	t.Run("anonymous ngo registration", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.facade.NGOs.Create(context.Background(), CreateNGOInput{Name: "Hope Trust"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)

		d := f.audit.lastDecision()
		assert.Equal(t, "create_ngo", d.Action)
		assert.False(t, d.Allowed)
		assert.Equal(t, string(domain.DenyUnauthenticated), d.DenyReason)
	})

	t.Run("donor creating a cause", func(t *testing.T) {
		f := newFixture(t)
		donor := uuid.New()
		f.withRoles(donor, model.RoleDonor)

		_, err := f.facade.Causes.Create(as(donor), uuid.New(), CreateCauseInput{Title: "Clean water", TargetAmount: 1000})
		assert.ErrorIs(t, err, domain.ErrWrongRole)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AuthzDecisionsTotal.WithLabelValues("create_cause", "deny", "wrong_role")))
	})

	t.Run("editing someone else's profile", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.facade.Profiles.Update(as(uuid.New()), uuid.New(), UpdateProfileInput{FullName: "Mallory"})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("anonymous admin read", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.facade.Admin.Stats(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestValidationRunsFirst(t *testing.T) {
	f := newFixture(t)

	_, err := f.facade.Donations.Create(context.Background(), CreateDonationInput{NGOID: uuid.New(), Amount: 0})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.facade.NGOs.Create(as(uuid.New()), CreateNGOInput{Name: "x", Website: "not a url"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "website", verr.Field)

	_, err = f.facade.NGOs.Transition(as(uuid.New()), uuid.New(), TransitionNGOInput{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnonymousDonation(t *testing.T) {
	f := newFixture(t)
	ngo := ngoOf(uuid.New(), model.NGOStatusApproved)
	causeID := uuid.New()

	f.ngos.EXPECT().FindByID(gomock.Any(), ngo.ID).Return(ngo, nil)
	f.causes.EXPECT().FindByID(gomock.Any(), causeID).
		Return(&model.Cause{ID: causeID, NGOID: ngo.ID, IsActive: true, NGO: ngo}, nil)
	f.dons.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *model.Donation) error {
			assert.Nil(t, d.DonorID)
			assert.Equal(t, int64(5000), d.Amount)
			d.ID = uuid.New()
			return nil
		})

	d, err := f.facade.Donations.Create(context.Background(), CreateDonationInput{
		NGOID:     ngo.ID,
		CauseID:   &causeID,
		Amount:    5000,
		DonorName: "A friend",
	})
	require.NoError(t, err)
	assert.Nil(t, d.DonorID)
	assert.Len(t, f.audit.mutations, 1)
}

func TestSignedInDonationUsesCaller(t *testing.T) {
	f := newFixture(t)
	donor := uuid.New()
	ngo := ngoOf(uuid.New(), model.NGOStatusApproved)

	f.ngos.EXPECT().FindByID(gomock.Any(), ngo.ID).Return(ngo, nil)
	f.dons.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	d, err := f.facade.Donations.Create(as(donor), CreateDonationInput{NGOID: ngo.ID, Amount: 100})
	require.NoError(t, err)
	require.NotNil(t, d.DonorID)
	assert.Equal(t, donor, *d.DonorID)
}

func TestDonationRejectsUnapprovedNGOAndForeignCause(t *testing.T) {
	f := newFixture(t)
	pending := ngoOf(uuid.New(), model.NGOStatusPending)
	approved := ngoOf(uuid.New(), model.NGOStatusApproved)
	causeID := uuid.New()

	f.ngos.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
	_, err := f.facade.Donations.Create(context.Background(), CreateDonationInput{NGOID: pending.ID, Amount: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.ngos.EXPECT().FindByID(gomock.Any(), approved.ID).Return(approved, nil)
	f.causes.EXPECT().FindByID(gomock.Any(), causeID).
		Return(&model.Cause{ID: causeID, NGOID: uuid.New(), IsActive: true}, nil)
	_, err = f.facade.Donations.Create(context.Background(), CreateDonationInput{NGOID: approved.ID, CauseID: &causeID, Amount: 100})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cause_id", verr.Field)

	missing := uuid.New()
	f.ngos.EXPECT().FindByID(gomock.Any(), missing).Return(nil, domain.ErrNGONotFound)
	_, err = f.facade.Donations.Create(context.Background(), CreateDonationInput{NGOID: missing, Amount: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNGOApprovalUnlocksCauseCreation(t *testing.T) {
	f := newFixture(t)
	owner, admin := uuid.New(), uuid.New()
	ngoID := uuid.New()
	f.withRoles(admin, model.RolePlatformAdmin)

	gomock.InOrder(
		f.roles.EXPECT().ListRoles(gomock.Any(), owner).Return(nil, nil),
		f.roles.EXPECT().ListRoles(gomock.Any(), owner).Return([]model.Role{model.RoleNGOAdmin}, nil),
	)

	f.ngos.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *model.NGO) error {
			n.ID = ngoID
			return nil
		})

	ngo, err := f.facade.NGOs.Create(as(owner), CreateNGOInput{Name: "Hope Trust"})
	require.NoError(t, err)
	assert.Equal(t, model.NGOStatusPending, ngo.Status)
	assert.Equal(t, owner, ngo.CreatedBy)

	// no ngo_admin role before approval
	_, err = f.facade.Causes.Create(as(owner), ngoID, CreateCauseInput{Title: "Clean water"})
	assert.ErrorIs(t, err, domain.ErrWrongRole)

	f.ngos.EXPECT().FindByID(gomock.Any(), ngoID).
		Return(&model.NGO{ID: ngoID, CreatedBy: owner, Status: model.NGOStatusPending}, nil)
	f.ngos.EXPECT().UpdateStatus(gomock.Any(), ngoID, model.NGOStatusPending, model.NGOStatusApproved).Return(nil)

	approved, err := f.facade.NGOs.Transition(as(admin), ngoID, TransitionNGOInput{Status: model.NGOStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, model.NGOStatusApproved, approved.Status)

	f.ngos.EXPECT().FindByID(gomock.Any(), ngoID).
		Return(&model.NGO{ID: ngoID, CreatedBy: owner, Status: model.NGOStatusApproved}, nil)
	f.causes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	cause, err := f.facade.Causes.Create(as(owner), ngoID, CreateCauseInput{Title: "Clean water", TargetAmount: 100000})
	require.NoError(t, err)
	assert.True(t, cause.IsActive)
	assert.Equal(t, ngoID, cause.NGOID)
}

func TestNGOTransitionDenials(t *testing.T) {
	f := newFixture(t)
	admin, owner := uuid.New(), uuid.New()
	f.withRoles(admin, model.RolePlatformAdmin)
	f.withRoles(owner, model.RoleNGOAdmin)

	ngo := ngoOf(owner, model.NGOStatusApproved)

	// only platform admins, and they never touch the ngo row when denied
	_, err := f.facade.NGOs.Transition(as(owner), ngo.ID, TransitionNGOInput{Status: model.NGOStatusApproved})
	assert.ErrorIs(t, err, domain.ErrWrongRole)

	f.ngos.EXPECT().FindByID(gomock.Any(), ngo.ID).Return(ngo, nil)
	_, err = f.facade.NGOs.Transition(as(admin), ngo.ID, TransitionNGOInput{Status: model.NGOStatusApproved})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	rejected := ngoOf(owner, model.NGOStatusRejected)
	f.ngos.EXPECT().FindByID(gomock.Any(), rejected.ID).Return(rejected, nil)
	_, err = f.facade.NGOs.Transition(as(admin), rejected.ID, TransitionNGOInput{Status: model.NGOStatusApproved})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	pending := ngoOf(owner, model.NGOStatusPending)
	f.ngos.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
	f.ngos.EXPECT().UpdateStatus(gomock.Any(), pending.ID, model.NGOStatusPending, model.NGOStatusRejected).
		Return(&domain.ConflictError{Resource: "ngo", Err: domain.ErrStaleStatus})
	_, err = f.facade.NGOs.Transition(as(admin), pending.ID, TransitionNGOInput{Status: model.NGOStatusRejected})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCauseCreationByForeignNGOAdmin(t *testing.T) {
	f := newFixture(t)
	other := uuid.New()
	f.withRoles(other, model.RoleNGOAdmin)
	ngo := ngoOf(uuid.New(), model.NGOStatusApproved)

	f.ngos.EXPECT().FindByID(gomock.Any(), ngo.ID).Return(ngo, nil)

	_, err := f.facade.Causes.Create(as(other), ngo.ID, CreateCauseInput{Title: "Clean water"})
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestDuplicateApplication(t *testing.T) {
	f := newFixture(t)
	volunteer := uuid.New()
	ngo := ngoOf(uuid.New(), model.NGOStatusApproved)
	opp := &model.Opportunity{ID: uuid.New(), NGOID: ngo.ID, IsActive: true, NGO: ngo}

	f.opps.EXPECT().FindByID(gomock.Any(), opp.ID).Return(opp, nil).Times(3)

	gomock.InOrder(
		f.apps.EXPECT().Exists(gomock.Any(), opp.ID, volunteer).Return(false, nil),
		f.apps.EXPECT().Exists(gomock.Any(), opp.ID, volunteer).Return(true, nil),
		f.apps.EXPECT().Exists(gomock.Any(), opp.ID, volunteer).Return(false, nil),
	)
	gomock.InOrder(
		f.apps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		f.apps.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&domain.ConflictError{Resource: "volunteer_application", Err: domain.ErrDuplicateApplication}),
	)

	app, err := f.facade.Applications.Apply(as(volunteer), opp.ID, ApplyInput{CoverLetter: "hello"})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationPending, app.Status)
	assert.Equal(t, volunteer, app.VolunteerID)

	_, err = f.facade.Applications.Apply(as(volunteer), opp.ID, ApplyInput{})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)

	// a concurrent duplicate slipping past the pre-check hits the unique index
	_, err = f.facade.Applications.Apply(as(volunteer), opp.ID, ApplyInput{})
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
}

func TestApplicationTransition(t *testing.T) {
	owner, other := uuid.New(), uuid.New()
	ngo := ngoOf(owner, model.NGOStatusApproved)

	appWith := func(status model.ApplicationStatus) *model.VolunteerApplication {
		return &model.VolunteerApplication{
			ID:          uuid.New(),
			VolunteerID: uuid.New(),
			Status:      status,
			Opportunity: &model.Opportunity{ID: uuid.New(), NGOID: ngo.ID, NGO: ngo},
		}
	}

	t.Run("owner accepts", func(t *testing.T) {
		f := newFixture(t)
		f.withRoles(owner, model.RoleNGOAdmin)
		app := appWith(model.ApplicationPending)

		f.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		f.apps.EXPECT().UpdateStatus(gomock.Any(), app.ID, model.ApplicationPending, model.ApplicationAccepted, "welcome").Return(nil)

		got, err := f.facade.Applications.Transition(as(owner), app.ID, TransitionApplicationInput{Status: model.ApplicationAccepted, NGONotes: "welcome"})
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationAccepted, got.Status)
	})

	t.Run("repeating a transition is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.withRoles(owner, model.RoleNGOAdmin)
		app := appWith(model.ApplicationAccepted)

		f.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

		got, err := f.facade.Applications.Transition(as(owner), app.ID, TransitionApplicationInput{Status: model.ApplicationAccepted})
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationAccepted, got.Status)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		f := newFixture(t)
		f.withRoles(owner, model.RoleNGOAdmin)
		app := appWith(model.ApplicationAccepted)

		f.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

		_, err := f.facade.Applications.Transition(as(owner), app.ID, TransitionApplicationInput{Status: model.ApplicationRejected})
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})

	t.Run("other ngo admin", func(t *testing.T) {
		f := newFixture(t)
		f.withRoles(other, model.RoleNGOAdmin)
		app := appWith(model.ApplicationPending)

		f.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

		_, err := f.facade.Applications.Transition(as(other), app.ID, TransitionApplicationInput{Status: model.ApplicationAccepted})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("lost race to the same outcome", func(t *testing.T) {
		f := newFixture(t)
		f.withRoles(owner, model.RoleNGOAdmin)
		app := appWith(model.ApplicationPending)
		done := *app
		done.Status = model.ApplicationRejected

		gomock.InOrder(
			f.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil),
			f.apps.EXPECT().UpdateStatus(gomock.Any(), app.ID, model.ApplicationPending, model.ApplicationRejected, "").
				Return(&domain.ConflictError{Resource: "volunteer_application", Err: domain.ErrStaleStatus}),
			f.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(&done, nil),
		)

		got, err := f.facade.Applications.Transition(as(owner), app.ID, TransitionApplicationInput{Status: model.ApplicationRejected})
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationRejected, got.Status)
	})
}

func TestCauseReadsReflectDonations(t *testing.T) {
	f := newFixture(t)
	ngo := ngoOf(uuid.New(), model.NGOStatusApproved)
	causeID := uuid.New()
	cause := func(raised int64) *model.Cause {
		return &model.Cause{ID: causeID, NGOID: ngo.ID, RaisedAmount: raised, IsActive: true, NGO: ngo}
	}

	gomock.InOrder(
		f.causes.EXPECT().FindByID(gomock.Any(), causeID).Return(cause(100), nil),
		f.causes.EXPECT().FindByID(gomock.Any(), causeID).Return(cause(100), nil),
		f.causes.EXPECT().FindByID(gomock.Any(), causeID).Return(cause(150), nil),
	)
	f.ngos.EXPECT().FindByID(gomock.Any(), ngo.ID).Return(ngo, nil)
	f.dons.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.facade.Causes.Get(context.Background(), causeID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.RaisedAmount)

	// served from cache
	got, err = f.facade.Causes.Get(context.Background(), causeID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.RaisedAmount)

	_, err = f.facade.Donations.Create(context.Background(), CreateDonationInput{NGOID: ngo.ID, CauseID: &causeID, Amount: 50})
	require.NoError(t, err)

	got, err = f.facade.Causes.Get(context.Background(), causeID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got.RaisedAmount)
}

func TestUnlistedCauseVisibility(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	f.withRoles(owner, model.RoleNGOAdmin)
	ngo := ngoOf(owner, model.NGOStatusPending)
	causeID := uuid.New()

	f.causes.EXPECT().FindByID(gomock.Any(), causeID).
		Return(&model.Cause{ID: causeID, NGOID: ngo.ID, IsActive: true, NGO: ngo}, nil)

	_, err := f.facade.Causes.Get(context.Background(), causeID)
	assert.ErrorIs(t, err, domain.ErrCauseNotFound)

	got, err := f.facade.Causes.Get(as(owner), causeID)
	require.NoError(t, err)
	assert.Equal(t, causeID, got.ID)
}

func TestListCausesFiltersUnlisted(t *testing.T) {
	f := newFixture(t)
	approved := ngoOf(uuid.New(), model.NGOStatusApproved)
	pending := ngoOf(uuid.New(), model.NGOStatusPending)

	f.causes.EXPECT().FindListable(gomock.Any()).Return([]*model.Cause{
		{ID: uuid.New(), Title: "a", IsActive: true, NGO: approved},
		{ID: uuid.New(), Title: "b", IsActive: false, NGO: approved},
		{ID: uuid.New(), Title: "c", IsActive: true, NGO: pending},
	}, nil)

	causes, err := f.facade.Causes.List(context.Background())
	require.NoError(t, err)
	require.Len(t, causes, 1)
	assert.Equal(t, "a", causes[0].Title)
}

func TestNGODonationsHideAnonymousDonors(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	f.withRoles(owner, model.RoleNGOAdmin)
	ngo := ngoOf(owner, model.NGOStatusApproved)
	donor := uuid.New()

	f.ngos.EXPECT().FindByID(gomock.Any(), ngo.ID).Return(ngo, nil)
	f.dons.EXPECT().FindByNGO(gomock.Any(), ngo.ID).Return([]*model.Donation{
		{ID: uuid.New(), NGOID: ngo.ID, Amount: 10, DonorID: &donor, DonorName: "Asha", DonorEmail: "asha@example.org", IsAnonymous: true},
		{ID: uuid.New(), NGOID: ngo.ID, Amount: 20, DonorName: "Ravi", DonorEmail: "ravi@example.org"},
	}, nil)

	donations, err := f.facade.Donations.ByNGO(as(owner), ngo.ID)
	require.NoError(t, err)
	require.Len(t, donations, 2)

	assert.Empty(t, donations[0].DonorName)
	assert.Empty(t, donations[0].DonorEmail)
	assert.Nil(t, donations[0].DonorID)
	assert.Equal(t, "Ravi", donations[1].DonorName)
}

func TestProfileUpdateByOwner(t *testing.T) {
	f := newFixture(t)
	uid := uuid.New()

	f.profiles.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(nil)
	f.profiles.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *model.Profile) error {
			assert.Equal(t, uid, p.ID)
			assert.Equal(t, "Asha", p.FullName)
			return nil
		})
	f.profiles.EXPECT().FindByID(gomock.Any(), uid).Return(&model.Profile{ID: uid, FullName: "Asha"}, nil)

	p, err := f.facade.Profiles.Update(as(uid), uid, UpdateProfileInput{FullName: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.FullName)
}

func TestRoles(t *testing.T) {
	f := newFixture(t)
	admin, user := uuid.New(), uuid.New()
	f.withRoles(admin, model.RolePlatformAdmin)
	f.withRoles(user)

	f.roles.EXPECT().Grant(gomock.Any(), user, model.RoleVolunteer).Return(nil)
	require.NoError(t, f.facade.Roles.Join(as(user), model.RoleVolunteer))

	err := f.facade.Roles.Join(as(user), model.RolePlatformAdmin)
	assert.ErrorIs(t, err, domain.ErrWrongRole)

	err = f.facade.Roles.Join(as(user), model.Role("owner"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.facade.Roles.Grant(as(user), GrantRoleInput{UserID: admin, Role: model.RoleNGOAdmin})
	assert.ErrorIs(t, err, domain.ErrWrongRole)

	f.roles.EXPECT().Grant(gomock.Any(), user, model.RoleNGOAdmin).Return(nil)
	require.NoError(t, f.facade.Roles.Grant(as(admin), GrantRoleInput{UserID: user, Role: model.RoleNGOAdmin}))

	roles, err := f.facade.Roles.Mine(as(admin))
	require.NoError(t, err)
	assert.Equal(t, []model.Role{model.RolePlatformAdmin}, roles)
}

func TestAdminStats(t *testing.T) {
	f := newFixture(t)
	admin := uuid.New()
	f.withRoles(admin, model.RolePlatformAdmin)

	f.ngos.EXPECT().Count(gomock.Any()).Return(int64(4), int64(1), nil)
	f.causes.EXPECT().Count(gomock.Any()).Return(int64(7), nil)
	f.dons.EXPECT().Totals(gomock.Any()).Return(int64(3), int64(1550), nil)
	f.apps.EXPECT().Count(gomock.Any()).Return(int64(2), nil)

	stats, err := f.facade.Admin.Stats(as(admin))
	require.NoError(t, err)
	assert.Equal(t, &model.PlatformStats{
		TotalNGOs:         4,
		PendingNGOs:       1,
		TotalCauses:       7,
		DonationCount:     3,
		TotalDonations:    1550,
		TotalApplications: 2,
		Currency:          model.Currency,
	}, stats)

	// cached until a mutation touches it
	_, err = f.facade.Admin.Stats(as(admin))
	require.NoError(t, err)
}

func TestAdminStatsBackendFailure(t *testing.T) {
	f := newFixture(t)
	admin := uuid.New()
	f.withRoles(admin, model.RolePlatformAdmin)
	down := &domain.BackendError{Op: "count ngos", Err: errors.New("connection refused")}

	f.ngos.EXPECT().Count(gomock.Any()).Return(int64(0), int64(0), down)
	f.causes.EXPECT().Count(gomock.Any()).Return(int64(0), nil).AnyTimes()
	f.dons.EXPECT().Totals(gomock.Any()).Return(int64(0), int64(0), nil).AnyTimes()
	f.apps.EXPECT().Count(gomock.Any()).Return(int64(0), nil).AnyTimes()

	_, err := f.facade.Admin.Stats(as(admin))
	assert.ErrorIs(t, err, domain.ErrBackend)
}
