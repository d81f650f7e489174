// internal/service/relation_sync.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/model"
)

// RelationSync mirrors ownership and role facts into an external
// relationship store. The database stays authoritative; mirror failures are
// logged by callers and never fail the mutation.
type RelationSync interface {
	NGOCreated(ctx context.Context, ngo *model.NGO) error
	NGOStatusChanged(ctx context.Context, ngo *model.NGO, status model.NGOStatus) error
	RoleGranted(ctx context.Context, userID uuid.UUID, role model.Role) error
}

// RelationWriter is the subset of the Permify client used by the mirror.
type RelationWriter interface {
	WriteRelationship(ctx context.Context, entity auth.Entity, relation string, subject auth.Subject) error
	DeleteRelationship(ctx context.Context, entity auth.Entity, relation string, subject auth.Subject) error
}

// PermifyRelationSync writes ngo#owner on registration, ngo#publisher while
// the NGO is approved and platform#<role> for every granted role.
type PermifyRelationSync struct {
	writer   RelationWriter
	platform string
}

func NewPermifyRelationSync(writer RelationWriter) *PermifyRelationSync {
	return &PermifyRelationSync{writer: writer, platform: "goodworks"}
}

func userSubject(id uuid.UUID) auth.Subject {
	return auth.Subject{Type: "user", ID: id.String()}
}

func ngoEntity(ngo *model.NGO) auth.Entity {
	return auth.Entity{Type: "ngo", ID: ngo.ID.String()}
}

func (s *PermifyRelationSync) NGOCreated(ctx context.Context, ngo *model.NGO) error {
	if err := s.writer.WriteRelationship(ctx, ngoEntity(ngo), "owner", userSubject(ngo.CreatedBy)); err != nil {
		return fmt.Errorf("writing ngo owner: %w", err)
	}
	return nil
}

func (s *PermifyRelationSync) NGOStatusChanged(ctx context.Context, ngo *model.NGO, status model.NGOStatus) error {
	var err error
	if status == model.NGOStatusApproved {
		err = s.writer.WriteRelationship(ctx, ngoEntity(ngo), "publisher", userSubject(ngo.CreatedBy))
	} else {
		err = s.writer.DeleteRelationship(ctx, ngoEntity(ngo), "publisher", userSubject(ngo.CreatedBy))
	}
	if err != nil {
		return fmt.Errorf("syncing ngo publisher: %w", err)
	}
	return nil
}

func (s *PermifyRelationSync) RoleGranted(ctx context.Context, userID uuid.UUID, role model.Role) error {
	entity := auth.Entity{Type: "platform", ID: s.platform}
	if err := s.writer.WriteRelationship(ctx, entity, string(role), userSubject(userID)); err != nil {
		return fmt.Errorf("writing platform %s: %w", role, err)
	}
	return nil
}

// NoopRelationSync is used when no relationship store is configured.
type NoopRelationSync struct{}

func (NoopRelationSync) NGOCreated(context.Context, *model.NGO) error { return nil }

func (NoopRelationSync) NGOStatusChanged(context.Context, *model.NGO, model.NGOStatus) error {
	return nil
}

func (NoopRelationSync) RoleGranted(context.Context, uuid.UUID, model.Role) error { return nil }
