package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

type RoleService struct {
	*base
	roles     repository.UserRoleRepositoryIface
	relations RelationSync
}

type GrantRoleInput struct {
	UserID uuid.UUID  `json:"user_id"`
	Role   model.Role `json:"role" validate:"required"`
}

func validRole(r model.Role) error {
	if !r.Valid() {
		return domain.NewValidationError("role", "must be one of donor volunteer ngo_admin platform_admin")
	}
	return nil
}

// Mine returns the caller's roles.
func (s *RoleService) Mine(ctx context.Context) ([]model.Role, error) {
	p, err := s.principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, authz.ActionReadOwn, authz.Resource{Type: "user_role", OwnerID: p.UserID()}); err != nil {
		return nil, err
	}
	return p.Roles.List(), nil
}

// Grant gives a role to any user. Platform admins only.
func (s *RoleService) Grant(ctx context.Context, in GrantRoleInput) error {
	const op = "grant_role"

	if err := requireID("user_id", in.UserID); err != nil {
		return err
	}
	if err := s.validateInput(in); err != nil {
		return err
	}
	if err := validRole(in.Role); err != nil {
		return err
	}

	p, err := s.check(ctx, authz.ActionGrantRole, true)
	if err != nil {
		return err
	}
	res := authz.Resource{Type: "user_role", ID: in.UserID.String(), TargetRole: in.Role}
	if err := s.authorize(ctx, p, authz.ActionGrantRole, res); err != nil {
		return err
	}

	return s.grant(ctx, op, p, in.UserID, in.Role)
}

// Join lets the caller take a self-service role such as donor or volunteer.
func (s *RoleService) Join(ctx context.Context, role model.Role) error {
	const op = "join_role"

	if err := validRole(role); err != nil {
		return err
	}

	p, err := s.check(ctx, authz.ActionJoinRole, false)
	if err != nil {
		return err
	}
	res := authz.Resource{Type: "user_role", ID: p.Identity.SubjectID(), TargetRole: role}
	if err := s.authorize(ctx, p, authz.ActionJoinRole, res); err != nil {
		return err
	}

	return s.grant(ctx, op, p, p.UserID(), role)
}

func (s *RoleService) grant(ctx context.Context, op string, p authz.Principal, userID uuid.UUID, role model.Role) error {
	if err := s.roles.Grant(ctx, userID, role); err != nil {
		return s.failed(op, err)
	}

	if err := s.relations.RoleGranted(ctx, userID, role); err != nil {
		slog.WarnContext(ctx, "failed to mirror role grant", "user_id", userID, "role", role, "error", err)
	}

	s.mutated(ctx, op, p, "user_role", userID.String(), rolesKey(userID))
	return nil
}
