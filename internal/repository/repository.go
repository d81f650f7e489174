// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

const pgUniqueViolation = "23505"

// Store bundles one repository per table.
type Store struct {
	NGOs          *NGORepository
	Causes        *CauseRepository
	Opportunities *OpportunityRepository
	Donations     *DonationRepository
	Applications  *ApplicationRepository
	Profiles      *ProfileRepository
	Roles         *UserRoleRepository
	AuditLogs     *AuthzAuditLogRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		NGOs:          NewNGORepository(db),
		Causes:        NewCauseRepository(db),
		Opportunities: NewOpportunityRepository(db),
		Donations:     NewDonationRepository(db),
		Applications:  NewApplicationRepository(db),
		Profiles:      NewProfileRepository(db),
		Roles:         NewUserRoleRepository(db),
		AuditLogs:     NewAuthzAuditLogRepository(db),
	}
}

// Migrate creates or updates the schema of every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.NGO{},
		&model.Cause{},
		&model.Opportunity{},
		&model.Donation{},
		&model.VolunteerApplication{},
		&model.Profile{},
		&model.UserRole{},
		&model.AuthzAuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// isUniqueViolation recognizes unique-index failures whether or not gorm
// was opened with TranslateError.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func backendError(op string, err error) error {
	return &domain.BackendError{Op: op, Err: err}
}
