package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
	"github.com/dangerclosesec/goodworks/internal/serializer"
)

type DonationService struct {
	*base
	donations repository.DonationRepositoryIface
	causes    repository.CauseRepositoryIface
	ngos      repository.NGORepositoryIface
}

// CreateDonationInput records an already settled donation. Amount is in
// minor units of model.Currency. The donor is always the caller.
type CreateDonationInput struct {
	NGOID       uuid.UUID  `json:"ngo_id"`
	CauseID     *uuid.UUID `json:"cause_id"`
	Amount      int64      `json:"amount" validate:"gt=0"`
	DonorName   string     `json:"donor_name" validate:"max=200"`
	DonorEmail  string     `json:"donor_email" validate:"omitempty,email"`
	Message     string     `json:"message" validate:"max=1000"`
	IsAnonymous bool       `json:"is_anonymous"`
}

// Create stores a donation and adds it to the cause total in one backend
// transaction. Signed-out callers donate without a donor id.
func (s *DonationService) Create(ctx context.Context, in CreateDonationInput) (*model.Donation, error) {
	const op = "create_donation"

	if err := requireID("ngo_id", in.NGOID); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	if in.CauseID != nil && *in.CauseID == uuid.Nil {
		in.CauseID = nil
	}

	p, err := s.check(ctx, authz.ActionCreateDonation, false)
	if err != nil {
		return nil, err
	}

	ngo, err := s.ngos.FindByID(ctx, in.NGOID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("ngo_id", "does not exist")
	}
	if err != nil {
		return nil, s.failed(op, err)
	}
	if !ngo.Approved() {
		return nil, domain.NewValidationError("ngo_id", "is not accepting donations")
	}

	if in.CauseID != nil {
		cause, err := s.causes.FindByID(ctx, *in.CauseID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("cause_id", "does not exist")
		}
		if err != nil {
			return nil, s.failed(op, err)
		}
		if cause.NGOID != ngo.ID {
			return nil, domain.NewValidationError("cause_id", "belongs to another ngo")
		}
		if !cause.IsActive {
			return nil, domain.NewValidationError("cause_id", "is not active")
		}
	}

	if err := s.authorize(ctx, p, authz.ActionCreateDonation, authz.Resource{Type: "ngo", ID: ngo.ID.String(), NGO: ngo}); err != nil {
		return nil, err
	}

	donation := &model.Donation{
		NGOID:       ngo.ID,
		CauseID:     in.CauseID,
		Amount:      in.Amount,
		DonorName:   in.DonorName,
		DonorEmail:  in.DonorEmail,
		Message:     in.Message,
		IsAnonymous: in.IsAnonymous,
	}
	if p.Authenticated() {
		uid := p.UserID()
		donation.DonorID = &uid
	}

	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, s.failed(op, err)
	}

	views := []string{keyFor(ViewNGODonations, ngo.ID), ViewAdminStats}
	if donation.DonorID != nil {
		views = append(views, keyFor(ViewDonations, *donation.DonorID))
	}
	if donation.CauseID != nil {
		views = append(views,
			ViewCauses,
			keyFor(ViewCause, *donation.CauseID),
			keyFor(ViewNGOCauses, ngo.ID),
		)
	}
	s.mutated(ctx, op, p, "donation", donation.ID.String(), views...)
	return donation, nil
}

// Mine lists the caller's donations, newest first.
func (s *DonationService) Mine(ctx context.Context) ([]*model.Donation, error) {
	p, err := s.check(ctx, authz.ActionReadOwn, false)
	if err != nil {
		return nil, err
	}
	uid := p.UserID()
	if err := s.authorize(ctx, p, authz.ActionReadOwn, authz.Resource{Type: "donation", OwnerID: uid}); err != nil {
		return nil, err
	}

	donations, err := fetch(ctx, s.base, keyFor(ViewDonations, uid), func(ctx context.Context) ([]*model.Donation, error) {
		return s.donations.FindByDonor(ctx, uid)
	})
	if err != nil {
		return nil, err
	}
	serializer.Redact(donations, serializer.ScopeSelf)
	return donations, nil
}

// ByNGO lists the donations received by an NGO. Contact details of donors
// who asked to stay anonymous are removed.
func (s *DonationService) ByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Donation, error) {
	if err := requireID("ngo_id", ngoID); err != nil {
		return nil, err
	}
	if err := dashboard(ctx, s.base, s.ngos, ngoID); err != nil {
		return nil, err
	}

	donations, err := fetch(ctx, s.base, keyFor(ViewNGODonations, ngoID), func(ctx context.Context) ([]*model.Donation, error) {
		return s.donations.FindByNGO(ctx, ngoID)
	})
	if err != nil {
		return nil, err
	}

	for _, d := range donations {
		if d.IsAnonymous {
			serializer.Redact(d)
			d.DonorID = nil
		} else {
			serializer.Redact(d, serializer.ScopeOwner)
		}
	}
	return donations, nil
}
