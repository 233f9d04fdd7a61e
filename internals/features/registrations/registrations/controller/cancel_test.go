package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCancelApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	actor := uuid.New().String()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", actor)
		return c.Next()
	})
	ctl := NewRegistrationController(gdb)
	app.Post("/registrations/:id/cancel", ctl.Cancel)
	return app, mock
}

func TestCancelWritesSingleLog(t *testing.T) {
	app, mock := newCancelApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "registrations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT p\.name FROM registrations AS r`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Maria Silva"))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payment_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("POST", "/registrations/5/cancel", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRepeatIsConflictWithoutLog(t *testing.T) {
	app, mock := newCancelApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "registrations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	// Existence probe distinguishes "already cancelled" from "no such row".
	mock.ExpectQuery(`SELECT count\(\*\) FROM "registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	resp, err := app.Test(httptest.NewRequest("POST", "/registrations/5/cancel", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	// No payment_logs insert was expected; ExpectationsWereMet proves none ran.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelMissingRegistrationIsNotFound(t *testing.T) {
	app, mock := newCancelApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "registrations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	resp, err := app.Test(httptest.NewRequest("POST", "/registrations/99/cancel", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
