// internal/repository/cause.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type CauseRepositoryIface interface {
	Create(ctx context.Context, cause *model.Cause) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cause, error)
	FindListable(ctx context.Context) ([]*model.Cause, error)
	FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Cause, error)
	Count(ctx context.Context) (int64, error)
}

type CauseRepository struct {
	db *gorm.DB
}

func NewCauseRepository(db *gorm.DB) *CauseRepository {
	return &CauseRepository{db: db}
}

func (r *CauseRepository) Create(ctx context.Context, cause *model.Cause) error {
	if cause.ID == uuid.Nil {
		cause.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Omit("NGO").Create(cause).Error; err != nil {
		return backendError("create cause", err)
	}
	return nil
}

// FindByID loads a cause together with its NGO.
func (r *CauseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Cause, error) {
	var cause model.Cause
	if err := r.db.WithContext(ctx).Preload("NGO").First(&cause, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCauseNotFound
		}
		return nil, backendError("find cause", err)
	}
	return &cause, nil
}

// FindListable returns active causes of approved NGOs, newest first.
func (r *CauseRepository) FindListable(ctx context.Context) ([]*model.Cause, error) {
	var causes []*model.Cause
	err := r.db.WithContext(ctx).
		Joins("JOIN ngos ON ngos.id = causes.ngo_id").
		Where("causes.is_active = ? AND ngos.status = ?", true, model.NGOStatusApproved).
		Preload("NGO").
		Order("causes.created_at DESC").
		Find(&causes).Error
	if err != nil {
		return nil, backendError("find listable causes", err)
	}
	return causes, nil
}

func (r *CauseRepository) FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Cause, error) {
	var causes []*model.Cause
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at DESC").
		Find(&causes).Error
	if err != nil {
		return nil, backendError("find ngo causes", err)
	}
	return causes, nil
}

func (r *CauseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Cause{}).Count(&count).Error; err != nil {
		return 0, backendError("count causes", err)
	}
	return count, nil
}
