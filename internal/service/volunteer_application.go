package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

type ApplicationService struct {
	*base
	apps repository.ApplicationRepositoryIface
	opps repository.OpportunityRepositoryIface
	ngos repository.NGORepositoryIface
}

type ApplyInput struct {
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
}

type TransitionApplicationInput struct {
	Status   model.ApplicationStatus `json:"status" validate:"required,oneof=pending accepted rejected"`
	NGONotes string                  `json:"ngo_notes" validate:"max=2000"`
}

// Apply files the caller's application to a listed opportunity. A second
// application to the same opportunity is a conflict.
func (s *ApplicationService) Apply(ctx context.Context, opportunityID uuid.UUID, in ApplyInput) (*model.VolunteerApplication, error) {
	const op = "create_application"

	if err := requireID("opportunity_id", opportunityID); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionCreateApplication, false)
	if err != nil {
		return nil, err
	}

	opp, err := s.opps.FindByID(ctx, opportunityID)
	if err != nil {
		return nil, s.failed(op, err)
	}
	if !authz.Listable(opp.NGO, opp.IsActive) {
		return nil, s.failed(op, domain.ErrOpportunityNotFound)
	}

	res := authz.Resource{Type: "opportunity", ID: opportunityID.String(), NGO: opp.NGO}
	if err := s.authorize(ctx, p, authz.ActionCreateApplication, res); err != nil {
		return nil, err
	}

	uid := p.UserID()
	exists, err := s.apps.Exists(ctx, opportunityID, uid)
	if err != nil {
		return nil, s.failed(op, err)
	}
	if exists {
		return nil, s.failed(op, &domain.ConflictError{Resource: "volunteer_application", Err: domain.ErrDuplicateApplication})
	}

	app := &model.VolunteerApplication{
		OpportunityID: opportunityID,
		VolunteerID:   uid,
		CoverLetter:   in.CoverLetter,
		Status:        model.ApplicationPending,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, s.failed(op, err)
	}

	s.mutated(ctx, op, p, "volunteer_application", app.ID.String(),
		keyFor(ViewApplications, uid),
		keyFor(ViewNGOApplications, opp.NGOID),
		ViewAdminStats,
	)
	return app, nil
}

// Transition accepts or rejects a pending application. Repeating the
// transition an application already went through succeeds without a write.
func (s *ApplicationService) Transition(ctx context.Context, id uuid.UUID, in TransitionApplicationInput) (*model.VolunteerApplication, error) {
	const op = "transition_application"

	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionTransitionApplication, true)
	if err != nil {
		return nil, err
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, s.failed(op, err)
	}

	var ngo *model.NGO
	if app.Opportunity != nil {
		ngo = app.Opportunity.NGO
	}
	res := authz.Resource{
		Type:                    "volunteer_application",
		ID:                      id.String(),
		NGO:                     ngo,
		ApplicationStatus:       app.Status,
		TargetApplicationStatus: in.Status,
	}
	if err := s.authorize(ctx, p, authz.ActionTransitionApplication, res); err != nil {
		return nil, err
	}

	if noop, _ := authz.ApplicationTransition(app.Status, in.Status); noop {
		return app, nil
	}

	err = s.apps.UpdateStatus(ctx, id, app.Status, in.Status, in.NGONotes)
	if errors.Is(err, domain.ErrStaleStatus) {
		// another admin got there first; only the same outcome is a success
		current, ferr := s.apps.FindByID(ctx, id)
		if ferr == nil && current.Status == in.Status {
			return current, nil
		}
	}
	if err != nil {
		return nil, s.failed(op, err)
	}
	app.Status = in.Status
	app.NGONotes = in.NGONotes

	s.mutated(ctx, op, p, "volunteer_application", id.String(),
		keyFor(ViewNGOApplications, ngo.ID),
		keyFor(ViewApplications, app.VolunteerID),
	)
	return app, nil
}

// Mine lists the caller's applications.
func (s *ApplicationService) Mine(ctx context.Context) ([]*model.VolunteerApplication, error) {
	p, err := s.check(ctx, authz.ActionReadOwn, false)
	if err != nil {
		return nil, err
	}
	uid := p.UserID()
	if err := s.authorize(ctx, p, authz.ActionReadOwn, authz.Resource{Type: "volunteer_application", OwnerID: uid}); err != nil {
		return nil, err
	}

	apps, err := fetch(ctx, s.base, keyFor(ViewApplications, uid), func(ctx context.Context) ([]*model.VolunteerApplication, error) {
		return s.apps.FindByVolunteer(ctx, uid)
	})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// ByNGO lists applications to the NGO's opportunities for its dashboard.
func (s *ApplicationService) ByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.VolunteerApplication, error) {
	if err := requireID("ngo_id", ngoID); err != nil {
		return nil, err
	}
	if err := dashboard(ctx, s.base, s.ngos, ngoID); err != nil {
		return nil, err
	}

	return fetch(ctx, s.base, keyFor(ViewNGOApplications, ngoID), func(ctx context.Context) ([]*model.VolunteerApplication, error) {
		return s.apps.FindByNGO(ctx, ngoID)
	})
}
