package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

type NGOService struct {
	*base
	ngos      repository.NGORepositoryIface
	relations RelationSync
}

// CreateNGOInput is the registration form of an NGO. Status and owner are
// not part of it: every NGO starts pending and belongs to its registrant.
type CreateNGOInput struct {
	Name               string `json:"name" validate:"required,max=200"`
	Description        string `json:"description" validate:"max=5000"`
	Mission            string `json:"mission" validate:"max=5000"`
	Website            string `json:"website" validate:"omitempty,url"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone" validate:"max=32"`
	Address            string `json:"address" validate:"max=500"`
	RegistrationNumber string `json:"registration_number" validate:"max=100"`
	LogoURL            string `json:"logo_url" validate:"omitempty,url"`
}

type TransitionNGOInput struct {
	Status model.NGOStatus `json:"status" validate:"required,oneof=pending approved rejected"`
}

// Create registers an NGO owned by the caller.
func (s *NGOService) Create(ctx context.Context, in CreateNGOInput) (*model.NGO, error) {
	const op = "create_ngo"

	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionCreateNGO, false)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionCreateNGO, authz.Resource{Type: "ngo"}); err != nil {
		return nil, err
	}

	ngo := &model.NGO{
		Name:               in.Name,
		Description:        in.Description,
		Mission:            in.Mission,
		Website:            in.Website,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		RegistrationNumber: in.RegistrationNumber,
		LogoURL:            in.LogoURL,
		CreatedBy:          p.UserID(),
		Status:             model.NGOStatusPending,
	}
	if err := s.ngos.Create(ctx, ngo); err != nil {
		return nil, s.failed(op, err)
	}

	if err := s.relations.NGOCreated(ctx, ngo); err != nil {
		slog.WarnContext(ctx, "failed to mirror ngo owner", "ngo_id", ngo.ID, "error", err)
	}

	s.mutated(ctx, op, p, "ngo", ngo.ID.String(),
		keyFor(ViewMyNGO, ngo.CreatedBy),
		ViewNGOs,
		ViewAdminStats,
	)
	return ngo, nil
}

// Transition moves an NGO out of pending. Approval also makes the creator
// an ngo_admin.
func (s *NGOService) Transition(ctx context.Context, id uuid.UUID, in TransitionNGOInput) (*model.NGO, error) {
	const op = "transition_ngo"

	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionTransitionNGO, true)
	if err != nil {
		return nil, err
	}

	ngo, err := s.ngos.FindByID(ctx, id)
	if err != nil {
		return nil, s.failed(op, err)
	}

	res := authz.Resource{Type: "ngo", ID: id.String(), NGO: ngo, TargetNGOStatus: in.Status}
	if err := s.authorize(ctx, p, authz.ActionTransitionNGO, res); err != nil {
		return nil, err
	}

	if err := s.ngos.UpdateStatus(ctx, id, ngo.Status, in.Status); err != nil {
		return nil, s.failed(op, err)
	}
	ngo.Status = in.Status

	if err := s.relations.NGOStatusChanged(ctx, ngo, in.Status); err != nil {
		slog.WarnContext(ctx, "failed to mirror ngo status", "ngo_id", ngo.ID, "error", err)
	}

	s.mutated(ctx, op, p, "ngo", id.String(),
		ViewNGOs,
		ViewApprovedNGOs,
		keyFor(ViewMyNGO, ngo.CreatedBy),
		ViewCauses,
		ViewCause,
		ViewOpportunities,
		ViewAdminStats,
		rolesKey(ngo.CreatedBy),
	)
	return ngo, nil
}

// MyNGO returns the NGO most recently registered by the caller.
func (s *NGOService) MyNGO(ctx context.Context) (*model.NGO, error) {
	p, err := s.check(ctx, authz.ActionReadOwn, false)
	if err != nil {
		return nil, err
	}
	uid := p.UserID()
	if err := s.authorize(ctx, p, authz.ActionReadOwn, authz.Resource{Type: "ngo", OwnerID: uid}); err != nil {
		return nil, err
	}

	return fetch(ctx, s.base, keyFor(ViewMyNGO, uid), func(ctx context.Context) (*model.NGO, error) {
		return s.ngos.FindByCreator(ctx, uid)
	})
}

// ListApproved is the public directory of approved NGOs.
func (s *NGOService) ListApproved(ctx context.Context) ([]*model.NGO, error) {
	return fetch(ctx, s.base, ViewApprovedNGOs, func(ctx context.Context) ([]*model.NGO, error) {
		return s.ngos.FindByStatus(ctx, model.NGOStatusApproved)
	})
}
