// internal/repository/opportunity.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type OpportunityRepositoryIface interface {
	Create(ctx context.Context, opp *model.Opportunity) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Opportunity, error)
	FindListable(ctx context.Context) ([]*model.Opportunity, error)
	FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Opportunity, error)
}

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) Create(ctx context.Context, opp *model.Opportunity) error {
	if opp.ID == uuid.Nil {
		opp.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Omit("NGO").Create(opp).Error; err != nil {
		return backendError("create opportunity", err)
	}
	return nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Opportunity, error) {
	var opp model.Opportunity
	if err := r.db.WithContext(ctx).Preload("NGO").First(&opp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOpportunityNotFound
		}
		return nil, backendError("find opportunity", err)
	}
	return &opp, nil
}

// FindListable returns active opportunities of approved NGOs, newest first.
func (r *OpportunityRepository) FindListable(ctx context.Context) ([]*model.Opportunity, error) {
	var opps []*model.Opportunity
	err := r.db.WithContext(ctx).
		Joins("JOIN ngos ON ngos.id = opportunities.ngo_id").
		Where("opportunities.is_active = ? AND ngos.status = ?", true, model.NGOStatusApproved).
		Preload("NGO").
		Order("opportunities.created_at DESC").
		Find(&opps).Error
	if err != nil {
		return nil, backendError("find listable opportunities", err)
	}
	return opps, nil
}

func (r *OpportunityRepository) FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Opportunity, error) {
	var opps []*model.Opportunity
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at DESC").
		Find(&opps).Error
	if err != nil {
		return nil, backendError("find ngo opportunities", err)
	}
	return opps, nil
}
