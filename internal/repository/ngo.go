// internal/repository/ngo.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type NGORepositoryIface interface {
	Create(ctx context.Context, ngo *model.NGO) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.NGO, error)
	FindByCreator(ctx context.Context, userID uuid.UUID) (*model.NGO, error)
	FindAll(ctx context.Context) ([]*model.NGO, error)
	FindByStatus(ctx context.Context, status model.NGOStatus) ([]*model.NGO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.NGOStatus) error
	Count(ctx context.Context) (total, pending int64, err error)
}

type NGORepository struct {
	db *gorm.DB
}

func NewNGORepository(db *gorm.DB) *NGORepository {
	return &NGORepository{db: db}
}

func (r *NGORepository) Create(ctx context.Context, ngo *model.NGO) error {
	if ngo.ID == uuid.Nil {
		ngo.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(ngo).Error; err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "ngo", Err: err}
		}
		return backendError("create ngo", err)
	}
	return nil
}

func (r *NGORepository) FindByID(ctx context.Context, id uuid.UUID) (*model.NGO, error) {
	var ngo model.NGO
	if err := r.db.WithContext(ctx).First(&ngo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNGONotFound
		}
		return nil, backendError("find ngo", err)
	}
	return &ngo, nil
}

// FindByCreator returns the most recently registered NGO of userID.
func (r *NGORepository) FindByCreator(ctx context.Context, userID uuid.UUID) (*model.NGO, error) {
	var ngo model.NGO
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		First(&ngo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNGONotFound
		}
		return nil, backendError("find ngo by creator", err)
	}
	return &ngo, nil
}

// FindAll returns every NGO, newest first.
func (r *NGORepository) FindAll(ctx context.Context) ([]*model.NGO, error) {
	var ngos []*model.NGO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ngos).Error; err != nil {
		return nil, backendError("find all ngos", err)
	}
	return ngos, nil
}

func (r *NGORepository) FindByStatus(ctx context.Context, status model.NGOStatus) ([]*model.NGO, error) {
	var ngos []*model.NGO
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("name").
		Find(&ngos).Error
	if err != nil {
		return nil, backendError("find ngos by status", err)
	}
	return ngos, nil
}

// UpdateStatus moves an NGO from one status to another. The update only
// applies while the row is still in from; losing a race to another writer
// yields a ConflictError. Approval also grants ngo_admin to the creator in
// the same transaction.
func (r *NGORepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.NGOStatus) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ngo model.NGO
		if err := tx.Select("id", "created_by").First(&ngo, "id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Model(&model.NGO{}).
			Where("id = ? AND status = ?", id, from).
			Updates(map[string]interface{}{
				"status":     to,
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &domain.ConflictError{Resource: "ngo " + id.String(), Err: domain.ErrStaleStatus}
		}

		if to != model.NGOStatusApproved {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.UserRole{
			ID:     uuid.New(),
			UserID: ngo.CreatedBy,
			Role:   model.RoleNGOAdmin,
		}).Error
	})

	var conflict *domain.ConflictError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &conflict):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNGONotFound
	default:
		return backendError("update ngo status", err)
	}
}

func (r *NGORepository) Count(ctx context.Context) (total, pending int64, err error) {
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.NGO{}).Count(&total).Error; err != nil {
		return 0, 0, backendError("count ngos", err)
	}
	if err := db.Model(&model.NGO{}).Where("status = ?", model.NGOStatusPending).Count(&pending).Error; err != nil {
		return 0, 0, backendError("count pending ngos", err)
	}
	return total, pending, nil
}
