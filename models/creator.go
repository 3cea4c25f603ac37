package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatorStatus is the review status of a creator application
type CreatorStatus string

const (
	CreatorStatusPending  CreatorStatus = "pending"
	CreatorStatusApproved CreatorStatus = "approved"
	CreatorStatusRejected CreatorStatus = "rejected"
)

// FollowerRange is the self-declared follower count bucket
type FollowerRange string

const (
	Followers1kTo10k    FollowerRange = "1k-10k"
	Followers10kTo50k   FollowerRange = "10k-50k"
	Followers50kTo100k  FollowerRange = "50k-100k"
	Followers100kTo500k FollowerRange = "100k-500k"
	Followers500kTo1m   FollowerRange = "500k-1m"
	Followers1mPlus     FollowerRange = "1m+"
)

// AudienceType is the creator's self-declared audience composition
type AudienceType string

const (
	AudienceCouples AudienceType = "couples"
	AudienceSingles AudienceType = "singles"
	AudienceMixed   AudienceType = "mixed"
)

// Creator represents a creator program applicant
type Creator struct {
	ID              string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name            string        `json:"name" gorm:"not null"`
	Email           string        `json:"email" gorm:"uniqueIndex;not null"`
	Phone           string        `json:"phone" gorm:"not null"`
	InstagramHandle string        `json:"instagramHandle"`
	TiktokHandle    string        `json:"tiktokHandle"`
	FollowerCount   FollowerRange `json:"followerCount" gorm:"type:varchar(20);not null"`
	Niche           string        `json:"niche"`
	AudienceType    AudienceType  `json:"audienceType" gorm:"type:varchar(20);not null"`
	Bio             string        `json:"bio"`

	// ReferralCode is allocated at creation and never changes afterwards.
	ReferralCode   string `json:"referralCode" gorm:"uniqueIndex;type:varchar(12);not null"`
	ReferredByCode string `json:"referredByCode" gorm:"index"`

	Status CreatorStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Earnings is set by the admin; ReferralEarnings and ReferralCount are
	// maintained by the referral service and never written directly.
	Earnings         float64 `json:"earnings" gorm:"default:0"`
	ReferralEarnings float64 `json:"referralEarnings" gorm:"default:0"`
	ReferralCount    int     `json:"referralCount" gorm:"default:0"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ApprovedAt *time.Time `json:"approvedAt"`
}

func (Creator) TableName() string {
	return "creators"
}

func (cr *Creator) BeforeCreate(tx *gorm.DB) error {
	if cr.ID == "" {
		cr.ID = uuid.NewString()
	}
	return nil
}

// ValidFollowerRange reports whether v is one of the accepted follower buckets
func ValidFollowerRange(v FollowerRange) bool {
	switch v {
	case Followers1kTo10k, Followers10kTo50k, Followers50kTo100k,
		Followers100kTo500k, Followers500kTo1m, Followers1mPlus:
		return true
	}
	return false
}

// ValidAudienceType reports whether v is one of the accepted audience types
func ValidAudienceType(v AudienceType) bool {
	switch v {
	case AudienceCouples, AudienceSingles, AudienceMixed:
		return true
	}
	return false
}

// ValidCreatorStatus reports whether v is one of the accepted creator statuses
func ValidCreatorStatus(v CreatorStatus) bool {
	switch v {
	case CreatorStatusPending, CreatorStatusApproved, CreatorStatusRejected:
		return true
	}
	return false
}

// CanTransitionStatus reports whether a creator may move from one status to
// another. Pending is only ever a source: once an application has been
// reviewed it can flip between approved and rejected but never go back.
func CanTransitionStatus(from, to CreatorStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case CreatorStatusPending:
		return to == CreatorStatusApproved || to == CreatorStatusRejected
	case CreatorStatusApproved:
		return to == CreatorStatusRejected
	case CreatorStatusRejected:
		return to == CreatorStatusApproved
	}
	return false
}

// CreatorApply model for submitting a creator program application
// @Description model for applying to the creator program
type CreatorApply struct {
	Name            string `json:"name" binding:"required" example:"Jane Doe"`
	Email           string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone           string `json:"phone" binding:"required" example:"+33612345678"`
	InstagramHandle string `json:"instagramHandle" example:"@janedoe"`
	TiktokHandle    string `json:"tiktokHandle" example:"@janedoe"`
	FollowerCount   string `json:"followerCount" binding:"required" example:"10k-50k"`
	Niche           string `json:"niche" example:"couple lifestyle"`
	AudienceType    string `json:"audienceType" binding:"required" example:"couples"`
	Bio             string `json:"bio" example:"Relationship content creator"`
	ReferredByCode  string `json:"referredByCode" example:"LB-7F3K9Q"`
}

// CreatorUpdate model for admin updates, restricted to an explicit allow-list
// @Description model for updating a creator from the admin panel
type CreatorUpdate struct {
	Status           *CreatorStatus `json:"status"`
	Earnings         *float64       `json:"earnings"`
	ReferralEarnings *float64       `json:"referralEarnings"`
	Niche            *string        `json:"niche"`
	Bio              *string        `json:"bio"`
}

// CreatorPublic is the subset of Creator returned to applicants
type CreatorPublic struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	ReferralCode string        `json:"referralCode"`
	Status       CreatorStatus `json:"status"`
}

// Public returns the fields safe to expose to the applicant
func (cr *Creator) Public() CreatorPublic {
	return CreatorPublic{
		ID:           cr.ID,
		Name:         cr.Name,
		Email:        cr.Email,
		ReferralCode: cr.ReferralCode,
		Status:       cr.Status,
	}
}
