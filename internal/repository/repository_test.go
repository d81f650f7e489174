package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var ngoColumns = []string{"id", "name", "created_by", "status", "created_at", "updated_at"}

func TestNGORepositoryFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		id, creator := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT \* FROM "ngos" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(ngoColumns).
				AddRow(id.String(), "Hope Trust", creator.String(), "pending", now, now))

		ngo, err := NewNGORepository(db).FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, ngo.ID)
		assert.Equal(t, creator, ngo.CreatedBy)
		assert.Equal(t, model.NGOStatusPending, ngo.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "ngos" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(ngoColumns))

		_, err := NewNGORepository(db).FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNGONotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("backend failure", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "ngos"`).
			WillReturnError(errors.New("connection reset by peer"))

		_, err := NewNGORepository(db).FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrBackend)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestNGORepositoryFindByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "ngos" WHERE status = \$1 ORDER BY name`).
		WillReturnRows(sqlmock.NewRows(ngoColumns).
			AddRow(uuid.NewString(), "A", uuid.NewString(), "approved", now, now).
			AddRow(uuid.NewString(), "B", uuid.NewString(), "approved", now, now))

	ngos, err := NewNGORepository(db).FindByStatus(context.Background(), model.NGOStatusApproved)
	require.NoError(t, err)
	assert.Len(t, ngos, 2)
	assert.Equal(t, "A", ngos[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCauseRepositoryFindByIDPreloadsNGO(t *testing.T) {
	db, mock := newMockDB(t)
	causeID, ngoID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "causes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ngo_id", "title", "target_amount", "raised_amount", "is_active", "created_at", "updated_at"}).
			AddRow(causeID.String(), ngoID.String(), "Clean water", 100000, 100, true, now, now))
	mock.ExpectQuery(`SELECT \* FROM "ngos" WHERE "ngos"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(ngoColumns).
			AddRow(ngoID.String(), "Hope Trust", uuid.NewString(), "approved", now, now))

	cause, err := NewCauseRepository(db).FindByID(context.Background(), causeID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), cause.RaisedAmount)
	require.NotNil(t, cause.NGO)
	assert.True(t, cause.NGO.Approved())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRoleRepositoryListRoles(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "role" FROM "user_roles" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("donor").AddRow("ngo_admin"))

	roles, err := NewUserRoleRepository(db).ListRoles(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, []model.Role{model.RoleDonor, model.RoleNGOAdmin}, roles)
}

func TestDonationRepositoryTotals(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS amount FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "amount"}).AddRow(3, 1550))

	count, amount, err := NewDonationRepository(db).Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, int64(1550), amount)
}

func TestApplicationRepositoryExists(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "volunteer_applications" WHERE opportunity_id = \$1 AND volunteer_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := NewApplicationRepository(db).Exists(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApplicationRepositoryUpdateStatusStale(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "volunteer_applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewApplicationRepository(db).UpdateStatus(context.Background(), uuid.New(),
		model.ApplicationPending, model.ApplicationAccepted, "")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrStaleStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthzAuditLogRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "authz_audit_logs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewAuthzAuditLogRepository(db).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAuditLogNotFound)
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_application_pair"}

	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}
