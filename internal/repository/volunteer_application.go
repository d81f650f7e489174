// internal/repository/volunteer_application.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type ApplicationRepositoryIface interface {
	Create(ctx context.Context, app *model.VolunteerApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.VolunteerApplication, error)
	Exists(ctx context.Context, opportunityID, volunteerID uuid.UUID) (bool, error)
	FindByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*model.VolunteerApplication, error)
	FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.VolunteerApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ApplicationStatus, notes string) error
	Count(ctx context.Context) (int64, error)
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts an application. A second application for the same
// (opportunity, volunteer) pair is rejected by the unique index and
// reported as a ConflictError wrapping domain.ErrDuplicateApplication.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.VolunteerApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Omit("Opportunity").Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "volunteer_application", Err: domain.ErrDuplicateApplication}
		}
		return backendError("create volunteer application", err)
	}
	return nil
}

// FindByID loads an application with its opportunity and the opportunity's NGO.
func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.VolunteerApplication, error) {
	var app model.VolunteerApplication
	err := r.db.WithContext(ctx).
		Preload("Opportunity.NGO").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, backendError("find volunteer application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, opportunityID, volunteerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.VolunteerApplication{}).
		Where("opportunity_id = ? AND volunteer_id = ?", opportunityID, volunteerID).
		Count(&count).Error
	if err != nil {
		return false, backendError("check volunteer application", err)
	}
	return count > 0, nil
}

func (r *ApplicationRepository) FindByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*model.VolunteerApplication, error) {
	var apps []*model.VolunteerApplication
	err := r.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Preload("Opportunity.NGO").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, backendError("find volunteer applications", err)
	}
	return apps, nil
}

// FindByNGO returns applications to any opportunity of ngoID.
func (r *ApplicationRepository) FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.VolunteerApplication, error) {
	var apps []*model.VolunteerApplication
	err := r.db.WithContext(ctx).
		Joins("JOIN opportunities ON opportunities.id = volunteer_applications.opportunity_id").
		Where("opportunities.ngo_id = ?", ngoID).
		Preload("Opportunity").
		Order("volunteer_applications.created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, backendError("find ngo applications", err)
	}
	return apps, nil
}

// UpdateStatus applies a status change only while the application is still
// in from. A concurrent change yields a ConflictError.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ApplicationStatus, notes string) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	if notes != "" {
		updates["ngo_notes"] = notes
	}

	result := r.db.WithContext(ctx).
		Model(&model.VolunteerApplication{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return backendError("update volunteer application", result.Error)
	}
	if result.RowsAffected == 0 {
		return &domain.ConflictError{Resource: "volunteer_application " + id.String(), Err: domain.ErrStaleStatus}
	}
	return nil
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.VolunteerApplication{}).Count(&count).Error; err != nil {
		return 0, backendError("count volunteer applications", err)
	}
	return count, nil
}
