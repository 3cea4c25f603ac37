package referrals

import (
	"errors"
	"strings"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/utils"

	"gorm.io/gorm"
)

// ValidationError carries per-field messages for a rejected application
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, ", ")
}

// Service orchestrates creator onboarding and commission accounting. It owns
// the transaction boundaries: the multi-step intake flow (create creator,
// resolve referrer, create ledger entry, bump counter) and the recalculation
// flow (update ledger, resum, overwrite aggregate) each run atomically.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func normalizeApplication(input *models.CreatorApply) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.InstagramHandle = strings.TrimSpace(input.InstagramHandle)
	input.TiktokHandle = strings.TrimSpace(input.TiktokHandle)
	input.FollowerCount = strings.TrimSpace(input.FollowerCount)
	input.Niche = strings.TrimSpace(input.Niche)
	input.AudienceType = strings.TrimSpace(input.AudienceType)
	input.Bio = strings.TrimSpace(input.Bio)
	input.ReferredByCode = strings.TrimSpace(input.ReferredByCode)
}

func validateApplication(input models.CreatorApply) *ValidationError {
	fields := make(map[string]string)

	if input.Name == "" {
		fields["name"] = "Please provide your name"
	}
	if input.Email == "" {
		fields["email"] = "Please provide your email"
	} else if !utils.ValidateEmail(input.Email) {
		fields["email"] = "Please provide a valid email"
	}
	if input.Phone == "" {
		fields["phone"] = "Please provide your phone number"
	}
	if input.InstagramHandle == "" && input.TiktokHandle == "" {
		fields["instagramHandle"] = "Please provide at least one social media handle"
	}
	if !models.ValidFollowerRange(models.FollowerRange(input.FollowerCount)) {
		fields["followerCount"] = "Please select your follower count range"
	}
	if !models.ValidAudienceType(models.AudienceType(input.AudienceType)) {
		fields["audienceType"] = "Please select your audience type"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// SubmitApplication validates and persists a new creator application and, if
// the supplied referral code resolves, links the new creator to its referrer.
// An unresolvable code is not an error: the application still succeeds, the
// code is kept on the creator record for audit, and no ledger entry is
// created. Everything after validation runs in one transaction.
func (s *Service) SubmitApplication(input models.CreatorApply) (*models.Creator, error) {
	normalizeApplication(&input)
	if vErr := validateApplication(input); vErr != nil {
		return nil, vErr
	}

	creator := &models.Creator{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		InstagramHandle: input.InstagramHandle,
		TiktokHandle:    input.TiktokHandle,
		FollowerCount:   models.FollowerRange(input.FollowerCount),
		Niche:           input.Niche,
		AudienceType:    models.AudienceType(input.AudienceType),
		Bio:             input.Bio,
		ReferredByCode:  input.ReferredByCode,
		Status:          models.CreatorStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		creators := repository.NewCreatorRepository(tx)
		referralLedger := repository.NewReferralRepository(tx)

		if err := creators.Create(creator); err != nil {
			return err
		}

		if input.ReferredByCode == "" {
			return nil
		}

		referrer, err := creators.GetByReferralCode(input.ReferredByCode)
		if errors.Is(err, repository.ErrNotFound) {
			utils.LogInfo("Referral code " + input.ReferredByCode + " did not resolve, application kept without linkage")
			return nil
		}
		if err != nil {
			return err
		}

		referral := &models.Referral{
			ReferrerCreatorID: referrer.ID,
			ReferredCreatorID: creator.ID,
			ReferralCode:      input.ReferredByCode,
			CommissionRate:    models.DefaultCommissionRate,
			Status:            models.ReferralStatusActive,
		}
		if err := referralLedger.Create(referral); err != nil {
			return err
		}

		return creators.IncrementReferralCount(referrer.ID)
	})
	if err != nil {
		return nil, err
	}

	return creator, nil
}

// RecalculateCommission brings the ledger and the referrer's aggregate back
// in sync after a referred creator's earnings changed. Creators that were
// never referred are a no-op. The referrer's aggregate is a full resum of
// its ledger, not an incremental delta, so concurrent sibling updates cannot
// lose each other's contribution.
func (s *Service) RecalculateCommission(creatorID string, newEarnings float64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		referralLedger := repository.NewReferralRepository(tx)
		creators := repository.NewCreatorRepository(tx)

		referral, err := referralLedger.GetByReferredCreatorID(creatorID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		commission := newEarnings * referral.CommissionRate
		if err := referralLedger.UpdateCommission(referral.ID, newEarnings, commission); err != nil {
			return err
		}

		total, err := referralLedger.SumCommissionByReferrer(referral.ReferrerCreatorID)
		if err != nil {
			return err
		}

		return creators.SetReferralEarnings(referral.ReferrerCreatorID, total)
	})
}

// StatsForReferrer builds the referral statistics shown to an approved
// creator: referral count, total commission and one line per referred
// creator.
func (s *Service) StatsForReferrer(referrerID string) (*models.ReferralStats, error) {
	referralLedger := repository.NewReferralRepository(s.db)
	creators := repository.NewCreatorRepository(s.db)

	referrals, err := referralLedger.ListByReferrer(referrerID)
	if err != nil {
		return nil, err
	}

	stats := &models.ReferralStats{
		Referrals: make([]models.ReferredCreatorSummary, 0, len(referrals)),
	}
	for _, referral := range referrals {
		stats.TotalReferrals++
		stats.TotalCommission += referral.Commission

		summary := models.ReferredCreatorSummary{
			Name:       "Unknown",
			Status:     "unknown",
			Commission: referral.Commission,
			CreatedAt:  referral.CreatedAt,
		}
		if referred, err := creators.GetByID(referral.ReferredCreatorID); err == nil {
			summary.Name = referred.Name
			summary.Status = referred.Status
		}
		stats.Referrals = append(stats.Referrals, summary)
	}

	return stats, nil
}
