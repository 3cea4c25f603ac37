package repository

import (
	"errors"
	"strings"

	"lovebae-backend/models"

	"gorm.io/gorm"
)

// WaitlistListParams are the admin listing filters for waitlist entries
type WaitlistListParams struct {
	Status models.WaitlistStatus
	Page   int
	Limit  int
}

// WaitlistRepository owns waitlist entry persistence
type WaitlistRepository interface {
	Create(entry *models.WaitlistEntry) error
	ExistsByEmailOrPhone(email, phone string) (bool, error)
	List(params WaitlistListParams) ([]models.WaitlistEntry, int64, error)
	UpdateStatus(id string, status models.WaitlistStatus) error
	Delete(id string) error
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) Create(entry *models.WaitlistEntry) error {
	return r.db.Create(entry).Error
}

func (r *waitlistRepository) ExistsByEmailOrPhone(email, phone string) (bool, error) {
	var entry models.WaitlistEntry
	err := r.db.Where("LOWER(email) = ? OR phone = ?", strings.ToLower(email), phone).
		First(&entry).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *waitlistRepository) List(params WaitlistListParams) ([]models.WaitlistEntry, int64, error) {
	query := r.db.Model(&models.WaitlistEntry{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
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

	var entries []models.WaitlistEntry
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *waitlistRepository) UpdateStatus(id string, status models.WaitlistStatus) error {
	result := r.db.Model(&models.WaitlistEntry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *waitlistRepository) Delete(id string) error {
	result := r.db.Delete(&models.WaitlistEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
