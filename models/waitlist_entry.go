package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistService is the service a waitlist entry signed up for
type WaitlistService string

const (
	WaitlistServiceIndividual WaitlistService = "individual"
	WaitlistServiceCouples    WaitlistService = "couples"
	WaitlistServiceCrisis     WaitlistService = "crisis"
	WaitlistServiceGroups     WaitlistService = "groups"
	WaitlistServiceFamily     WaitlistService = "family"
	WaitlistServiceTeen       WaitlistService = "teen"
	WaitlistServiceHealing    WaitlistService = "healing"
	WaitlistServiceAmbassador WaitlistService = "ambassador"
	WaitlistServiceBoth       WaitlistService = "both"
)

// WaitlistStatus is the review status of a waitlist entry
type WaitlistStatus string

const (
	WaitlistStatusPending  WaitlistStatus = "pending"
	WaitlistStatusApproved WaitlistStatus = "approved"
	WaitlistStatusRejected WaitlistStatus = "rejected"
)

// WaitlistEntry represents one app waitlist signup
type WaitlistEntry struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string          `json:"name" gorm:"not null"`
	Email     string          `json:"email" gorm:"not null;index"`
	Phone     string          `json:"phone" gorm:"not null;index"`
	Service   WaitlistService `json:"service" gorm:"type:varchar(20);default:'individual'"`
	Status    WaitlistStatus  `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// ValidWaitlistService reports whether v is an accepted service value
func ValidWaitlistService(v WaitlistService) bool {
	switch v {
	case WaitlistServiceIndividual, WaitlistServiceCouples, WaitlistServiceCrisis,
		WaitlistServiceGroups, WaitlistServiceFamily, WaitlistServiceTeen,
		WaitlistServiceHealing, WaitlistServiceAmbassador, WaitlistServiceBoth:
		return true
	}
	return false
}

// ValidWaitlistStatus reports whether v is an accepted status value
func ValidWaitlistStatus(v WaitlistStatus) bool {
	switch v {
	case WaitlistStatusPending, WaitlistStatusApproved, WaitlistStatusRejected:
		return true
	}
	return false
}

// WaitlistCreate model for joining the waitlist
// @Description model for submitting a waitlist signup
type WaitlistCreate struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone   string `json:"phone" binding:"required" example:"+33612345678"`
	Service string `json:"service" example:"couples"`
}

// WaitlistStatusUpdate model for updating a waitlist entry from the admin panel
type WaitlistStatusUpdate struct {
	Status WaitlistStatus `json:"status" binding:"required" example:"approved"`
}
