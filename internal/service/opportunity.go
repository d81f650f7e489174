package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

const defaultSlots = 10

type OpportunityService struct {
	*base
	opps repository.OpportunityRepositoryIface
	ngos repository.NGORepositoryIface
}

type CreateOpportunityInput struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Description    string     `json:"description" validate:"max=5000"`
	Location       string     `json:"location" validate:"max=500"`
	SkillsRequired []string   `json:"skills_required" validate:"max=50,dive,max=100"`
	SlotsAvailable *int       `json:"slots_available" validate:"omitempty,gte=0"`
	StartDatetime  *time.Time `json:"start_datetime"`
	EndDatetime    *time.Time `json:"end_datetime"`
	IsActive       *bool      `json:"is_active"`
}

// Create adds a volunteering opportunity to an approved NGO owned by the
// caller.
func (s *OpportunityService) Create(ctx context.Context, ngoID uuid.UUID, in CreateOpportunityInput) (*model.Opportunity, error) {
	const op = "create_opportunity"

	if err := requireID("ngo_id", ngoID); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	if err := checkWindow("end_datetime", in.StartDatetime, in.EndDatetime); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionCreateOpportunity, false)
	if err != nil {
		return nil, err
	}

	ngo, err := s.ngos.FindByID(ctx, ngoID)
	if err != nil {
		return nil, s.failed(op, err)
	}
	if err := s.authorize(ctx, p, authz.ActionCreateOpportunity, authz.Resource{Type: "ngo", ID: ngoID.String(), NGO: ngo}); err != nil {
		return nil, err
	}

	slots := defaultSlots
	if in.SlotsAvailable != nil {
		slots = *in.SlotsAvailable
	}

	opp := &model.Opportunity{
		NGOID:          ngoID,
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		SkillsRequired: model.NewSkills(in.SkillsRequired...),
		SlotsAvailable: slots,
		StartDatetime:  in.StartDatetime,
		EndDatetime:    in.EndDatetime,
		IsActive:       in.IsActive == nil || *in.IsActive,
	}
	if err := s.opps.Create(ctx, opp); err != nil {
		return nil, s.failed(op, err)
	}
	opp.NGO = ngo

	s.mutated(ctx, op, p, "opportunity", opp.ID.String(),
		ViewOpportunities,
		keyFor(ViewNGOOpportunities, ngoID),
	)
	return opp, nil
}

// List returns the publicly listable opportunities.
func (s *OpportunityService) List(ctx context.Context) ([]*model.Opportunity, error) {
	opps, err := fetch(ctx, s.base, ViewOpportunities, func(ctx context.Context) ([]*model.Opportunity, error) {
		return s.opps.FindListable(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", authz.ActionListOpportunities, err)
	}

	out := opps[:0]
	for _, o := range opps {
		if authz.Listable(o.NGO, o.IsActive) {
			out = append(out, o)
		}
	}
	return out, nil
}

// ByNGO lists every opportunity of an NGO for its dashboard.
func (s *OpportunityService) ByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Opportunity, error) {
	if err := requireID("ngo_id", ngoID); err != nil {
		return nil, err
	}
	if err := dashboard(ctx, s.base, s.ngos, ngoID); err != nil {
		return nil, err
	}

	return fetch(ctx, s.base, keyFor(ViewNGOOpportunities, ngoID), func(ctx context.Context) ([]*model.Opportunity, error) {
		return s.opps.FindByNGO(ctx, ngoID)
	})
}
