package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

type ProfileService struct {
	*base
	profiles repository.ProfileRepositoryIface
}

type UpdateProfileInput struct {
	FullName  string `json:"full_name" validate:"max=200"`
	Phone     string `json:"phone" validate:"max=32"`
	Bio       string `json:"bio" validate:"max=2000"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// Get returns the caller's profile, creating an empty one on first access.
func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	p, err := s.check(ctx, authz.ActionReadOwn, false)
	if err != nil {
		return nil, err
	}
	uid := p.UserID()
	if err := s.authorize(ctx, p, authz.ActionReadOwn, authz.Resource{Type: "profile", ID: uid.String(), OwnerID: uid}); err != nil {
		return nil, err
	}

	return fetch(ctx, s.base, keyFor(ViewProfile, uid), func(ctx context.Context) (*model.Profile, error) {
		profile := &model.Profile{ID: uid, Email: p.Identity.Email}
		if err := s.profiles.Ensure(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	})
}

// Update replaces the editable fields of a profile. Only its owner may.
func (s *ProfileService) Update(ctx context.Context, profileID uuid.UUID, in UpdateProfileInput) (*model.Profile, error) {
	if err := requireID("id", profileID); err != nil {
		return nil, err
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionUpdateProfile, false)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, p, profileID, in)
}

// UpdateMine updates the caller's own profile.
func (s *ProfileService) UpdateMine(ctx context.Context, in UpdateProfileInput) (*model.Profile, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p, err := s.check(ctx, authz.ActionUpdateProfile, false)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, p, p.UserID(), in)
}

func (s *ProfileService) update(ctx context.Context, p authz.Principal, profileID uuid.UUID, in UpdateProfileInput) (*model.Profile, error) {
	const op = "update_profile"

	res := authz.Resource{Type: "profile", ID: profileID.String(), OwnerID: profileID}
	if err := s.authorize(ctx, p, authz.ActionUpdateProfile, res); err != nil {
		return nil, err
	}

	if err := s.profiles.Ensure(ctx, &model.Profile{ID: profileID, Email: p.Identity.Email}); err != nil {
		return nil, s.failed(op, err)
	}

	profile := &model.Profile{
		ID:        profileID,
		FullName:  in.FullName,
		Phone:     in.Phone,
		Bio:       in.Bio,
		AvatarURL: in.AvatarURL,
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, s.failed(op, err)
	}

	s.mutated(ctx, op, p, "profile", profileID.String(),
		keyFor(ViewProfile, profileID),
		ViewAdminProfiles,
	)

	updated, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("%s: reading back: %w", op, err)
	}
	return updated, nil
}
