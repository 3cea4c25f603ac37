package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCommissionRate is the share of a referred creator's earnings
// credited to the referrer (10%)
const DefaultCommissionRate = 0.10

// ReferralStatus is the payout state of a referral ledger entry
type ReferralStatus string

const (
	ReferralStatusActive   ReferralStatus = "active"
	ReferralStatusInactive ReferralStatus = "inactive"
	ReferralStatusPaid     ReferralStatus = "paid"
)

// Referral is one referrer→referred ledger entry. It links two creators and
// carries the running commission; it never owns either creator record.
type Referral struct {
	ID                 string `json:"id" gorm:"primaryKey;type:uuid"`
	ReferrerCreatorID  string `json:"referrerCreatorId" gorm:"type:uuid;not null;index"`
	ReferredCreatorID  string `json:"referredCreatorId" gorm:"type:uuid;not null;uniqueIndex"`

	// ReferralCode is the code value used at signup, kept for audit.
	ReferralCode string `json:"referralCode" gorm:"not null;index"`

	// ReferredCreatorEarnings mirrors the referred creator's earnings;
	// Commission is always ReferredCreatorEarnings * CommissionRate.
	ReferredCreatorEarnings float64 `json:"referredCreatorEarnings" gorm:"default:0"`
	Commission              float64 `json:"commission" gorm:"default:0"`
	CommissionRate          float64 `json:"commissionRate" gorm:"default:0.10"`

	Status ReferralStatus `json:"status" gorm:"type:varchar(20);default:'active'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Referral) TableName() string {
	return "referrals"
}

func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CommissionRate == 0 {
		r.CommissionRate = DefaultCommissionRate
	}
	return nil
}

// ReferredCreatorSummary is one line of a referrer's statistics
type ReferredCreatorSummary struct {
	Name       string        `json:"name"`
	Status     CreatorStatus `json:"status"`
	Commission float64       `json:"commission"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// ReferralStats is returned to approved creators looking up their own code
type ReferralStats struct {
	TotalReferrals  int                      `json:"totalReferrals"`
	TotalCommission float64                  `json:"totalCommission"`
	Referrals       []ReferredCreatorSummary `json:"referrals"`
}
