// internal/repository/donation.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/model"
)

type DonationRepositoryIface interface {
	Create(ctx context.Context, donation *model.Donation) error
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*model.Donation, error)
	FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Donation, error)
	Totals(ctx context.Context) (count, amount int64, err error)
}

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create records a donation. When it targets a cause, the cause's raised
// amount grows by the same amount in one transaction.
func (r *DonationRepository) Create(ctx context.Context, donation *model.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("NGO", "Cause").Create(donation).Error; err != nil {
			return err
		}
		if donation.CauseID == nil {
			return nil
		}

		result := tx.Model(&model.Cause{}).
			Where("id = ? AND ngo_id = ?", *donation.CauseID, donation.NGOID).
			UpdateColumn("raised_amount", gorm.Expr("raised_amount + ?", donation.Amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCauseNotFound
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCauseNotFound):
		return err
	default:
		return backendError("create donation", err)
	}
}

func (r *DonationRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*model.Donation, error) {
	var donations []*model.Donation
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Preload("NGO").
		Preload("Cause").
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, backendError("find donor donations", err)
	}
	return donations, nil
}

func (r *DonationRepository) FindByNGO(ctx context.Context, ngoID uuid.UUID) ([]*model.Donation, error) {
	var donations []*model.Donation
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Preload("Cause").
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, backendError("find ngo donations", err)
	}
	return donations, nil
}

// Totals returns the number of donations and the sum of their amounts.
func (r *DonationRepository) Totals(ctx context.Context) (count, amount int64, err error) {
	var row struct {
		Count  int64
		Amount int64
	}
	err = r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Scan(&row).Error
	if err != nil {
		return 0, 0, backendError("sum donations", err)
	}
	return row.Count, row.Amount, nil
}
