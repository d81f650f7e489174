package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

// AdminService serves the platform admin dashboard.
type AdminService struct {
	*base
	ngos      repository.NGORepositoryIface
	causes    repository.CauseRepositoryIface
	donations repository.DonationRepositoryIface
	apps      repository.ApplicationRepositoryIface
	profiles  repository.ProfileRepositoryIface
	auditLogs AuditLogReader
}

func (s *AdminService) allow(ctx context.Context, resource string) error {
	p, err := s.check(ctx, authz.ActionAdminRead, false)
	if err != nil {
		return err
	}
	return s.authorize(ctx, p, authz.ActionAdminRead, authz.Resource{Type: resource})
}

// Stats aggregates platform totals. The four counts run concurrently.
func (s *AdminService) Stats(ctx context.Context) (*model.PlatformStats, error) {
	if err := s.allow(ctx, "platform"); err != nil {
		return nil, err
	}

	return fetch(ctx, s.base, ViewAdminStats, func(ctx context.Context) (*model.PlatformStats, error) {
		stats := &model.PlatformStats{Currency: model.Currency}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			stats.TotalNGOs, stats.PendingNGOs, err = s.ngos.Count(gctx)
			return err
		})
		g.Go(func() (err error) {
			stats.TotalCauses, err = s.causes.Count(gctx)
			return err
		})
		g.Go(func() (err error) {
			stats.DonationCount, stats.TotalDonations, err = s.donations.Totals(gctx)
			return err
		})
		g.Go(func() (err error) {
			stats.TotalApplications, err = s.apps.Count(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return stats, nil
	})
}

// NGOs lists every NGO regardless of status.
func (s *AdminService) NGOs(ctx context.Context) ([]*model.NGO, error) {
	if err := s.allow(ctx, "ngo"); err != nil {
		return nil, err
	}
	return fetch(ctx, s.base, ViewNGOs, s.ngos.FindAll)
}

func (s *AdminService) Profiles(ctx context.Context) ([]*model.Profile, error) {
	if err := s.allow(ctx, "profile"); err != nil {
		return nil, err
	}
	return fetch(ctx, s.base, ViewAdminProfiles, s.profiles.FindAll)
}

// AuditLogs queries the authorization audit trail. Results are never cached.
func (s *AdminService) AuditLogs(ctx context.Context, params repository.QueryParams) ([]model.AuthzAuditLog, int64, error) {
	if err := s.allow(ctx, "audit_log"); err != nil {
		return nil, 0, err
	}
	if s.auditLogs == nil {
		return []model.AuthzAuditLog{}, 0, nil
	}
	return s.auditLogs.GetAuditLogs(ctx, params)
}

func (s *AdminService) AuditLog(ctx context.Context, id uuid.UUID) (*model.AuthzAuditLog, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := s.allow(ctx, "audit_log"); err != nil {
		return nil, err
	}
	if s.auditLogs == nil {
		return nil, fmt.Errorf("audit log %s: %w", id, domain.ErrAuditLogNotFound)
	}
	return s.auditLogs.GetAuditLogByID(ctx, id)
}
