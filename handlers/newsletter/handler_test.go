package newsletter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"lovebae-backend/repository"
	"lovebae-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func setupHandler(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)

	handler := New(repository.NewNewsletterRepository(gormDB))

	router := testutils.SetupTestRouter()
	router.POST("/newsletter", handler.Subscribe)
	router.POST("/newsletter/unsubscribe", handler.Unsubscribe)

	return router, mock, cleanup
}

func performJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	_ = json.NewEncoder(&body).Encode(payload)
	req, _ := http.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSubscribe_NewEmail(t *testing.T) {
	router, mock, cleanup := setupHandler(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "newsletter_subscribers"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("subscriber-1"))
	mock.ExpectCommit()

	resp := performJSON(router, "/newsletter", gin.H{
		"email":  "Jane@Example.com",
		"source": "homepage",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), "Thank you for subscribing")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribe_AlreadyActive(t *testing.T) {
	router, mock, cleanup := setupHandler(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "status"}).
			AddRow("subscriber-1", "jane@example.com", "active"))

	resp := performJSON(router, "/newsletter", gin.H{
		"email": "jane@example.com",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "already subscribed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribe_ReactivatesUnsubscribed(t *testing.T) {
	router, mock, cleanup := setupHandler(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "status"}).
			AddRow("subscriber-1", "jane@example.com", "unsubscribed"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "newsletter_subscribers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := performJSON(router, "/newsletter", gin.H{
		"email": "jane@example.com",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "reactivated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribe_RejectsUnknownSource(t *testing.T) {
	router, _, cleanup := setupHandler(t)
	defer cleanup()

	resp := performJSON(router, "/newsletter", gin.H{
		"email":  "jane@example.com",
		"source": "billboard",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid source")
}

func TestSubscribe_RejectsMalformedEmail(t *testing.T) {
	router, _, cleanup := setupHandler(t)
	defer cleanup()

	resp := performJSON(router, "/newsletter", gin.H{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUnsubscribe_Success(t *testing.T) {
	router, mock, cleanup := setupHandler(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "status"}).
			AddRow("subscriber-1", "jane@example.com", "active"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "newsletter_subscribers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := performJSON(router, "/newsletter/unsubscribe", gin.H{
		"email": "jane@example.com",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "unsubscribed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnsubscribe_UnknownEmail(t *testing.T) {
	router, mock, cleanup := setupHandler(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers" WHERE LOWER\(email\)`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	resp := performJSON(router, "/newsletter/unsubscribe", gin.H{
		"email": "ghost@example.com",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
