package repository

import (
	"testing"

	"lovebae-backend/models"
	"lovebae-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReferralCreate_DefaultsCommissionRate(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "referrals"`).
		WillReturnRows(mock.NewRows([]string{"referred_creator_earnings", "commission"}).AddRow(0.0, 0.0))
	mock.ExpectCommit()

	repo := NewReferralRepository(gormDB)
	referral := &models.Referral{
		ReferrerCreatorID: "referrer-1",
		ReferredCreatorID: "referred-1",
		ReferralCode:      "LB-7F3K9Q",
		Status:            models.ReferralStatusActive,
	}

	err := repo.Create(referral)
	assert.NoError(t, err)
	assert.NotEmpty(t, referral.ID)
	assert.Equal(t, models.DefaultCommissionRate, referral.CommissionRate)
}

func TestReferralGetByReferredCreatorID_NotFound(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "referrals" WHERE referred_creator_id`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	repo := NewReferralRepository(gormDB)

	_, err := repo.GetByReferredCreatorID("never-referred")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReferralSumCommissionByReferrer(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(commission\), 0\) FROM "referrals" WHERE referrer_creator_id`).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(30.0))

	repo := NewReferralRepository(gormDB)

	total, err := repo.SumCommissionByReferrer("referrer-1")
	assert.NoError(t, err)
	assert.Equal(t, 30.0, total)
}

func TestReferralUpdateCommission(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "referrals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewReferralRepository(gormDB)

	err := repo.UpdateCommission("referral-1", 200.0, 20.0)
	assert.NoError(t, err)
}

func TestReferralUpdateCommission_NotFound(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "referrals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewReferralRepository(gormDB)

	err := repo.UpdateCommission("missing", 200.0, 20.0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReferralListByReferrer(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "referrals" WHERE referrer_creator_id = (.+) ORDER BY created_at DESC`).
		WillReturnRows(mock.NewRows([]string{"id", "referrer_creator_id", "referred_creator_id", "commission"}).
			AddRow("referral-1", "referrer-1", "referred-1", 20.0).
			AddRow("referral-2", "referrer-1", "referred-2", 10.0))

	repo := NewReferralRepository(gormDB)

	referrals, err := repo.ListByReferrer("referrer-1")
	assert.NoError(t, err)
	assert.Len(t, referrals, 2)
	assert.Equal(t, 20.0, referrals[0].Commission)
}
