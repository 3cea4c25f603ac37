package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportRequest represents one support/contact form submission
type SupportRequest struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null"`
	Subject     string    `json:"subject" gorm:"not null"`
	Message     string    `json:"message" gorm:"not null"`
	SubmittedAt time.Time `json:"submittedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (SupportRequest) TableName() string {
	return "support_requests"
}

func (s *SupportRequest) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SupportCreate model for submitting a support request
// @Description model for contacting the support team
type SupportCreate struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane@example.com"`
	Subject string `json:"subject" binding:"required" example:"Account question"`
	Message string `json:"message" binding:"required" example:"I would like to know more about the creator program."`
}
