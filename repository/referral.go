package repository

import (
	"errors"

	"lovebae-backend/models"

	"gorm.io/gorm"
)

// ReferralRepository owns the referrer→referred ledger
type ReferralRepository interface {
	Create(referral *models.Referral) error
	GetByReferredCreatorID(referredID string) (*models.Referral, error)
	ListByReferrer(referrerID string) ([]models.Referral, error)
	SumCommissionByReferrer(referrerID string) (float64, error)
	UpdateCommission(id string, earnings, commission float64) error
}

type referralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) Create(referral *models.Referral) error {
	return r.db.Create(referral).Error
}

func (r *referralRepository) GetByReferredCreatorID(referredID string) (*models.Referral, error) {
	var referral models.Referral
	if err := r.db.Where("referred_creator_id = ?", referredID).First(&referral).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &referral, nil
}

func (r *referralRepository) ListByReferrer(referrerID string) ([]models.Referral, error) {
	var referrals []models.Referral
	err := r.db.Where("referrer_creator_id = ?", referrerID).
		Order("created_at DESC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

// SumCommissionByReferrer resums the full ledger for one referrer. The caller
// overwrites the referrer's aggregate with the result, so concurrent sibling
// updates cannot lose each other's contribution.
func (r *referralRepository) SumCommissionByReferrer(referrerID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Referral{}).
		Where("referrer_creator_id = ?", referrerID).
		Select("COALESCE(SUM(commission), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *referralRepository) UpdateCommission(id string, earnings, commission float64) error {
	result := r.db.Model(&models.Referral{}).Where("id = ?", id).Updates(map[string]interface{}{
		"referred_creator_earnings": earnings,
		"commission":                commission,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
