package repository

import (
	"errors"
	"strings"

	"lovebae-backend/models"

	"gorm.io/gorm"
)

// NewsletterRepository owns newsletter subscription persistence
type NewsletterRepository interface {
	Create(subscriber *models.NewsletterSubscriber) error
	GetByEmail(email string) (*models.NewsletterSubscriber, error)
	UpdateStatus(id string, status models.NewsletterStatus) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(subscriber *models.NewsletterSubscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *newsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&subscriber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *newsletterRepository) UpdateStatus(id string, status models.NewsletterStatus) error {
	result := r.db.Model(&models.NewsletterSubscriber{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
