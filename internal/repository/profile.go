// internal/repository/profile.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type ProfileRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Ensure(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	FindAll(ctx context.Context) ([]*model.Profile, error)
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, backendError("find profile", err)
	}
	return &profile, nil
}

// Ensure loads the profile with profile.ID into profile, creating it from
// the given fields when it does not exist yet.
func (r *ProfileRepository) Ensure(ctx context.Context, profile *model.Profile) error {
	err := r.db.WithContext(ctx).
		Where(model.Profile{ID: profile.ID}).
		Attrs(model.Profile{FullName: profile.FullName, Email: profile.Email}).
		FirstOrCreate(profile).Error
	if err != nil {
		return backendError("ensure profile", err)
	}
	return nil
}

// Update writes the editable profile fields.
func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	result := r.db.WithContext(ctx).
		Model(&model.Profile{ID: profile.ID}).
		Select("full_name", "phone", "bio", "avatar_url", "updated_at").
		Updates(profile)
	if result.Error != nil {
		return backendError("update profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, backendError("find all profiles", err)
	}
	return profiles, nil
}
