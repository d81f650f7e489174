package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

type CauseService struct {
	*base
	causes repository.CauseRepositoryIface
	ngos   repository.NGORepositoryIface
}

// CreateCauseInput describes a fundraising cause. TargetAmount is in minor
// units of model.Currency.
type CreateCauseInput struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"max=5000"`
	ImageURL     string     `json:"image_url" validate:"omitempty,url"`
	TargetAmount int64      `json:"target_amount" validate:"gte=0"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     *bool      `json:"is_active"`
}

func checkWindow(field string, start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domain.NewValidationError(field, "must not be before the start")
	}
	return nil
}

// Create adds a cause to an approved NGO owned by the caller.
func (s *CauseService) Create(ctx context.Context, ngoID uuid.UUID, in CreateCauseInput) (*model.Cause, error) {
	const op = "create_cause"

	if err := requireID("ngo_id", ngoID); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	if err := checkWindow("end_date", in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionCreateCause, false)
	if err != nil {
		return nil, err
	}

	ngo, err := s.ngos.FindByID(ctx, ngoID)
	if err != nil {
		return nil, s.failed(op, err)
	}
	if err := s.authorize(ctx, p, authz.ActionCreateCause, authz.Resource{Type: "ngo", ID: ngoID.String(), NGO: ngo}); err != nil {
		return nil, err
	}

	cause := &model.Cause{
		NGOID:        ngoID,
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		TargetAmount: in.TargetAmount,
		IsActive:     in.IsActive == nil || *in.IsActive,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}
	if err := s.causes.Create(ctx, cause); err != nil {
		return nil, s.failed(op, err)
	}
	cause.NGO = ngo

	s.mutated(ctx, op, p, "cause", cause.ID.String(),
		ViewCauses,
		keyFor(ViewNGOCauses, ngoID),
		ViewAdminStats,
	)
	return cause, nil
}

// List returns the publicly listable causes.
func (s *CauseService) List(ctx context.Context) ([]*model.Cause, error) {
	causes, err := fetch(ctx, s.base, ViewCauses, func(ctx context.Context) ([]*model.Cause, error) {
		return s.causes.FindListable(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", authz.ActionListCauses, err)
	}

	out := causes[:0]
	for _, c := range causes {
		if authz.Listable(c.NGO, c.IsActive) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns one cause. Causes that are not listable are reported as not
// found unless the caller administers the owning NGO or the platform.
func (s *CauseService) Get(ctx context.Context, id uuid.UUID) (*model.Cause, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	cause, err := fetch(ctx, s.base, keyFor(ViewCause, id), func(ctx context.Context) (*model.Cause, error) {
		return s.causes.FindByID(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", authz.ActionReadCause, err)
	}

	if !authz.Listable(cause.NGO, cause.IsActive) {
		p, err := s.principal(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: resolving roles: %w", authz.ActionReadCause, err)
		}
		if !authz.CanSeeUnlisted(p, cause.NGO) {
			return nil, fmt.Errorf("%s: %w", authz.ActionReadCause, domain.ErrCauseNotFound)
		}
	}
	return cause, nil
}

// ByNGO lists every cause of an NGO for its dashboard.
func (s *CauseService) ByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Cause, error) {
	if err := requireID("ngo_id", ngoID); err != nil {
		return nil, err
	}
	if err := dashboard(ctx, s.base, s.ngos, ngoID); err != nil {
		return nil, err
	}

	return fetch(ctx, s.base, keyFor(ViewNGOCauses, ngoID), func(ctx context.Context) ([]*model.Cause, error) {
		return s.causes.FindByNGO(ctx, ngoID)
	})
}

// dashboard authorizes a read of the NGO's own management views.
func dashboard(ctx context.Context, b *base, ngos repository.NGORepositoryIface, ngoID uuid.UUID) error {
	p, err := b.check(ctx, authz.ActionReadNGODashboard, false)
	if err != nil {
		return err
	}

	ngo, err := ngos.FindByID(ctx, ngoID)
	if err != nil {
		return fmt.Errorf("%s: %w", authz.ActionReadNGODashboard, err)
	}
	return b.authorize(ctx, p, authz.ActionReadNGODashboard, authz.Resource{Type: "ngo", ID: ngoID.String(), NGO: ngo})
}
