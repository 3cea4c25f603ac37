package referrals

import (
	"testing"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func validApplication() models.CreatorApply {
	return models.CreatorApply{
		Name:            "  Jane Doe  ",
		Email:           "Jane@Example.com",
		Phone:           "+33612345678",
		InstagramHandle: "@janedoe",
		FollowerCount:   "10k-50k",
		AudienceType:    "couples",
	}
}

func TestSubmitApplication_ValidationErrors(t *testing.T) {
	service := NewService(nil)

	cases := []struct {
		name   string
		mutate func(*models.CreatorApply)
		field  string
	}{
		{"missing name", func(a *models.CreatorApply) { a.Name = "" }, "name"},
		{"missing email", func(a *models.CreatorApply) { a.Email = "" }, "email"},
		{"malformed email", func(a *models.CreatorApply) { a.Email = "not-an-email" }, "email"},
		{"missing phone", func(a *models.CreatorApply) { a.Phone = "" }, "phone"},
		{"no social handle", func(a *models.CreatorApply) { a.InstagramHandle = ""; a.TiktokHandle = "" }, "instagramHandle"},
		{"bad follower bucket", func(a *models.CreatorApply) { a.FollowerCount = "2k-3k" }, "followerCount"},
		{"bad audience type", func(a *models.CreatorApply) { a.AudienceType = "families" }, "audienceType"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validApplication()
			tc.mutate(&input)

			_, err := service.SubmitApplication(input)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tc.field)
		})
	}
}

func TestSubmitApplication_NoReferralCode(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectExec(`SAVEPOINT sp`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "creators"`).
		WillReturnRows(mock.NewRows([]string{"earnings", "referral_earnings", "referral_count"}).AddRow(0.0, 0.0, 0))
	mock.ExpectCommit()

	service := NewService(gormDB)

	creator, err := service.SubmitApplication(validApplication())
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", creator.Name)
	assert.Equal(t, "jane@example.com", creator.Email)
	assert.Equal(t, models.CreatorStatusPending, creator.Status)
	assert.Regexp(t, `^LB-[A-Z0-9]{6}$`, creator.ReferralCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitApplication_WithReferralLinkage(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectExec(`SAVEPOINT sp`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "creators"`).
		WillReturnRows(mock.NewRows([]string{"earnings", "referral_earnings", "referral_count"}).AddRow(0.0, 0.0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE referral_code`).
		WillReturnRows(mock.NewRows([]string{"id", "referral_code", "referral_count"}).
			AddRow("referrer-1", "LB-7F3K9Q", 0))
	mock.ExpectQuery(`INSERT INTO "referrals"`).
		WillReturnRows(mock.NewRows([]string{"referred_creator_earnings", "commission"}).AddRow(0.0, 0.0))
	mock.ExpectExec(`UPDATE "creators" SET "referral_count"=referral_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := NewService(gormDB)

	input := validApplication()
	input.ReferredByCode = "LB-7F3K9Q"

	creator, err := service.SubmitApplication(input)
	assert.NoError(t, err)
	assert.Equal(t, "LB-7F3K9Q", creator.ReferredByCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitApplication_UnresolvableCodeIsSoftMiss(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectExec(`SAVEPOINT sp`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "creators"`).
		WillReturnRows(mock.NewRows([]string{"earnings", "referral_earnings", "referral_count"}).AddRow(0.0, 0.0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE referral_code`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	service := NewService(gormDB)

	input := validApplication()
	input.ReferredByCode = "LB-NOTREAL"

	// The application still succeeds: the code is kept for audit but no
	// ledger entry is created and no counter moves.
	creator, err := service.SubmitApplication(input)
	assert.NoError(t, err)
	assert.Equal(t, "LB-NOTREAL", creator.ReferredByCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitApplication_CodeCollisionRetriedInTransaction(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	// First attempt collides on the referral_code index. The savepoint
	// rollback keeps the intake transaction usable for the re-check and the
	// retry insert.
	mock.ExpectExec(`SAVEPOINT sp`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "creators"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT sp`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectExec(`SAVEPOINT sp`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "creators"`).
		WillReturnRows(mock.NewRows([]string{"earnings", "referral_earnings", "referral_count"}).AddRow(0.0, 0.0, 0))
	mock.ExpectCommit()

	service := NewService(gormDB)

	creator, err := service.SubmitApplication(validApplication())
	assert.NoError(t, err)
	assert.Regexp(t, `^LB-[A-Z0-9]{6}$`, creator.ReferralCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitApplication_DuplicateEmailRollsBack(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id", "email"}).AddRow("existing-id", "jane@example.com"))
	mock.ExpectRollback()

	service := NewService(gormDB)

	_, err := service.SubmitApplication(validApplication())
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecalculateCommission_UpdatesLedgerAndAggregate(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "referrals" WHERE referred_creator_id`).
		WillReturnRows(mock.NewRows([]string{"id", "referrer_creator_id", "referred_creator_id", "commission_rate"}).
			AddRow("referral-1", "referrer-1", "referred-1", 0.10))
	mock.ExpectExec(`UPDATE "referrals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(commission\), 0\) FROM "referrals" WHERE referrer_creator_id`).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(30.0))
	mock.ExpectExec(`UPDATE "creators" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := NewService(gormDB)

	err := service.RecalculateCommission("referred-1", 200.0)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecalculateCommission_NotReferredIsNoop(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "referrals" WHERE referred_creator_id`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	service := NewService(gormDB)

	err := service.RecalculateCommission("never-referred", 500.0)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsForReferrer(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "referrals" WHERE referrer_creator_id`).
		WillReturnRows(mock.NewRows([]string{"id", "referrer_creator_id", "referred_creator_id", "commission"}).
			AddRow("referral-1", "referrer-1", "referred-1", 20.0).
			AddRow("referral-2", "referrer-1", "referred-2", 10.0))
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE id`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "status"}).
			AddRow("referred-1", "Bob", "approved"))
	mock.ExpectQuery(`SELECT (.+) FROM "creators" WHERE id`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "status"}).
			AddRow("referred-2", "Carol", "pending"))

	service := NewService(gormDB)

	stats, err := service.StatsForReferrer("referrer-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalReferrals)
	assert.Equal(t, 30.0, stats.TotalCommission)
	assert.Len(t, stats.Referrals, 2)
	assert.Equal(t, "Bob", stats.Referrals[0].Name)
	assert.Equal(t, models.CreatorStatus("pending"), stats.Referrals[1].Status)
}
