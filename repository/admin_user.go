package repository

import (
	"errors"
	"strings"
	"time"

	"lovebae-backend/models"

	"gorm.io/gorm"
)

// AdminUserRepository owns back-office account persistence
type AdminUserRepository interface {
	List() ([]models.AdminUser, error)
	GetByID(id string) (*models.AdminUser, error)
	GetByEmail(email string) (*models.AdminUser, error)
	Create(admin *models.AdminUser) error
	Update(admin *models.AdminUser) error
	Delete(id string) error
	TouchLastLogin(id string) error
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) List() ([]models.AdminUser, error) {
	var admins []models.AdminUser
	if err := r.db.Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminUserRepository) GetByID(id string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminUserRepository) Create(admin *models.AdminUser) error {
	err := r.db.Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *adminUserRepository) Update(admin *models.AdminUser) error {
	err := r.db.Save(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *adminUserRepository) Delete(id string) error {
	result := r.db.Delete(&models.AdminUser{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *adminUserRepository) TouchLastLogin(id string) error {
	return r.db.Model(&models.AdminUser{}).Where("id = ?", id).
		Update("last_login", time.Now()).Error
}
