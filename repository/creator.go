package repository

import (
	"errors"
	"math/rand"
	"strings"

	"lovebae-backend/models"
	"lovebae-backend/monitoring"

	"gorm.io/gorm"
)

const (
	referralCodePrefix   = "LB-"
	referralCodeLength   = 6
	referralCodeCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxCodeAllocAttempts = 10
)

// CreatorListParams are the admin listing filters
type CreatorListParams struct {
	Status models.CreatorStatus
	Search string
	Page   int
	Limit  int
}

// CreatorStatusStats is one per-status aggregate bucket for the admin panel
type CreatorStatusStats struct {
	Count                 int64   `json:"count"`
	TotalEarnings         float64 `json:"totalEarnings"`
	TotalReferralEarnings float64 `json:"totalReferralEarnings"`
}

// CreatorRepository owns creator persistence, referral code allocation and
// the cascade delete of ledger entries.
type CreatorRepository interface {
	Create(creator *models.Creator) error
	GetByID(id string) (*models.Creator, error)
	GetByEmail(email string) (*models.Creator, error)
	GetByReferralCode(code string) (*models.Creator, error)
	List(params CreatorListParams) ([]models.Creator, int64, error)
	Stats() (map[models.CreatorStatus]CreatorStatusStats, error)
	Updates(id string, fields map[string]interface{}) error
	IncrementReferralCount(id string) error
	SetReferralEarnings(id string, total float64) error
	Delete(id string) error
}

type creatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

func generateReferralCode() string {
	var b strings.Builder
	b.WriteString(referralCodePrefix)
	for i := 0; i < referralCodeLength; i++ {
		b.WriteByte(referralCodeCharset[rand.Intn(len(referralCodeCharset))])
	}
	return b.String()
}

// Create persists a new creator and allocates its referral code. The unique
// index on referral_code is the final authority: an insert that fails on a
// duplicate key after the email pre-check is treated as a code collision and
// retried with a fresh code, up to maxCodeAllocAttempts.
func (r *creatorRepository) Create(creator *models.Creator) error {
	var existing models.Creator
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(creator.Email)).First(&existing).Error
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	for attempt := 0; attempt < maxCodeAllocAttempts; attempt++ {
		creator.ReferralCode = generateReferralCode()

		// A failed INSERT aborts the surrounding Postgres transaction, so
		// each attempt runs in its own nested transaction (a savepoint when
		// the repository already sits inside one) and a collision rolls back
		// to a usable state before the retry.
		err := r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(creator).Error
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}

		// The email passed the pre-check above, but a concurrent insert can
		// still lose the race on the email index. Re-check to tell the two
		// collisions apart.
		if emailErr := r.db.Where("LOWER(email) = ?", strings.ToLower(creator.Email)).First(&existing).Error; emailErr == nil {
			return ErrDuplicateEmail
		}

		monitoring.ReferralCodeRetries.Inc()
	}

	monitoring.ReferralCodeExhausted.Inc()
	return ErrCodeAllocationExhausted
}

func (r *creatorRepository) GetByID(id string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.First(&creator, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) GetByEmail(email string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&creator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) GetByReferralCode(code string) (*models.Creator, error) {
	var creator models.Creator
	if err := r.db.Where("referral_code = ?", code).First(&creator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) List(params CreatorListParams) ([]models.Creator, int64, error) {
	query := r.db.Model(&models.Creator{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"name ILIKE ? OR email ILIKE ? OR instagram_handle ILIKE ? OR tiktok_handle ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}

	var creators []models.Creator
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&creators).Error
	if err != nil {
		return nil, 0, err
	}

	return creators, total, nil
}

func (r *creatorRepository) Stats() (map[models.CreatorStatus]CreatorStatusStats, error) {
	type row struct {
		Status                models.CreatorStatus
		Count                 int64
		TotalEarnings         float64
		TotalReferralEarnings float64
	}

	var rows []row
	err := r.db.Model(&models.Creator{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(earnings), 0) AS total_earnings, COALESCE(SUM(referral_earnings), 0) AS total_referral_earnings").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := map[models.CreatorStatus]CreatorStatusStats{
		models.CreatorStatusPending:  {},
		models.CreatorStatusApproved: {},
		models.CreatorStatusRejected: {},
	}
	for _, s := range rows {
		stats[s.Status] = CreatorStatusStats{
			Count:                 s.Count,
			TotalEarnings:         s.TotalEarnings,
			TotalReferralEarnings: s.TotalReferralEarnings,
		}
	}
	return stats, nil
}

func (r *creatorRepository) Updates(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Creator{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *creatorRepository) IncrementReferralCount(id string) error {
	return r.db.Model(&models.Creator{}).Where("id = ?", id).
		UpdateColumn("referral_count", gorm.Expr("referral_count + 1")).Error
}

func (r *creatorRepository) SetReferralEarnings(id string, total float64) error {
	return r.db.Model(&models.Creator{}).Where("id = ?", id).
		Update("referral_earnings", total).Error
}

// Delete removes the creator and every ledger entry where it appears as
// either party, in one transaction.
func (r *creatorRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("referrer_creator_id = ? OR referred_creator_id = ?", id, id).
			Delete(&models.Referral{}).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&models.Creator{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
