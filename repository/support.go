package repository

import (
	"lovebae-backend/models"

	"gorm.io/gorm"
)

// SupportRepository owns support request persistence
type SupportRepository interface {
	Create(request *models.SupportRequest) error
	List() ([]models.SupportRequest, error)
}

type supportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &supportRepository{db: db}
}

func (r *supportRepository) Create(request *models.SupportRequest) error {
	return r.db.Create(request).Error
}

func (r *supportRepository) List() ([]models.SupportRequest, error) {
	var requests []models.SupportRequest
	if err := r.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
