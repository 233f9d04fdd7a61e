package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	ctl := NewMasterController(gdb, Congregations)
	app.Delete("/congregations/:id", ctl.Delete)
	return app, mock
}

func TestDeleteMasterBlockedByForeignKey(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectExec(`DELETE FROM congregations WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/congregations/7", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Ação Bloqueada")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMasterOK(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectExec(`DELETE FROM congregations WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/congregations/7", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMasterNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectExec(`DELETE FROM congregations WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/congregations/99", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
