// internal/auth/permify.go

package auth

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
	permify_grpc "github.com/Permify/permify-go/grpc"
)

// PermifyService mirrors ownership and role facts into a Permify tenant so
// that other services can evaluate them. The local authorization core stays
// authoritative.
type PermifyService struct {
	client        *permify_grpc.Client
	tenant        string
	schemaVersion string
}

// WithTenant selects the Permify tenant; the default is t1.
func WithTenant(tenant string) func(*PermifyService) {
	return func(s *PermifyService) {
		s.tenant = tenant
	}
}

// WithSchemaVersion sets the schema version for the Permify service
func WithSchemaVersion(schemaVersion string) func(*PermifyService) {
	return func(s *PermifyService) {
		s.schemaVersion = schemaVersion
	}
}

// NewPermifyService creates a new Permify service
func NewPermifyService(host string, options ...func(*PermifyService)) (*PermifyService, error) {
	client, err := permify_grpc.NewClient(
		permify_grpc.Config{
			Endpoint: host,
		},
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)

	if err != nil {
		return nil, fmt.Errorf("permify client for %s: %w", host, err)
	}

	service := &PermifyService{client: client}
	for _, o := range options {
		o(service)
	}

	if service.tenant == "" {
		service.tenant = "t1"
	}

	return service, nil
}

type Resource struct {
	Type string
	ID   string
}

type Entity Resource
type Subject Resource

// tupleString renders a relationship the way Permify documents it, e.g.
// ngo:42#owner@user:7.
func tupleString(entity Entity, relation string, subject Subject) string {
	return fmt.Sprintf("%s:%s#%s@%s:%s", entity.Type, entity.ID, relation, subject.Type, subject.ID)
}

func tuple(entity Entity, relation string, subject Subject) *v1.Tuple {
	return &v1.Tuple{
		Entity:   &v1.Entity{Type: entity.Type, Id: entity.ID},
		Relation: relation,
		Subject:  &v1.Subject{Type: subject.Type, Id: subject.ID},
	}
}

// deleteFilter matches exactly the tuple entity#relation@subject.
func deleteFilter(entity Entity, relation string, subject Subject) *v1.TupleFilter {
	return &v1.TupleFilter{
		Entity:   &v1.EntityFilter{Type: entity.Type, Ids: []string{entity.ID}},
		Relation: relation,
		Subject:  &v1.SubjectFilter{Type: subject.Type, Ids: []string{subject.ID}},
	}
}

// WriteRelationship records entity#relation@subject in the tenant. Writing a
// tuple that already exists is a no-op on the Permify side.
func (s *PermifyService) WriteRelationship(ctx context.Context, entity Entity, relation string, subject Subject) error {
	_, err := s.client.Data.WriteRelationships(ctx, &v1.RelationshipWriteRequest{
		TenantId: s.tenant,
		Metadata: &v1.RelationshipWriteRequestMetadata{SchemaVersion: s.schemaVersion},
		Tuples:   []*v1.Tuple{tuple(entity, relation, subject)},
	})
	if err != nil {
		return fmt.Errorf("permify write %s: %w", tupleString(entity, relation, subject), err)
	}
	return nil
}

// DeleteRelationship removes entity#relation@subject, used when an NGO
// leaves the approved state.
func (s *PermifyService) DeleteRelationship(ctx context.Context, entity Entity, relation string, subject Subject) error {
	_, err := s.client.Data.DeleteRelationships(ctx, &v1.RelationshipDeleteRequest{
		TenantId: s.tenant,
		Filter:   deleteFilter(entity, relation, subject),
	})
	if err != nil {
		return fmt.Errorf("permify delete %s: %w", tupleString(entity, relation, subject), err)
	}
	return nil
}
