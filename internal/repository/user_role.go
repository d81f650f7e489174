// internal/repository/user_role.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dangerclosesec/goodworks/internal/model"
)

type UserRoleRepositoryIface interface {
	ListRoles(ctx context.Context, userID uuid.UUID) ([]model.Role, error)
	Grant(ctx context.Context, userID uuid.UUID, role model.Role) error
}

type UserRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

func (r *UserRoleRepository) ListRoles(ctx context.Context, userID uuid.UUID) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).
		Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Order("role").
		Pluck("role", &roles).Error
	if err != nil {
		return nil, backendError("list roles", err)
	}
	return roles, nil
}

// Grant adds role to userID. Granting a role the user already holds is a
// no-op.
func (r *UserRoleRepository) Grant(ctx context.Context, userID uuid.UUID, role model.Role) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserRole{ID: uuid.New(), UserID: userID, Role: role}).Error
	if err != nil {
		return backendError("grant role", err)
	}
	return nil
}
