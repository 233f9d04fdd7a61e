package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acampamentos_backend/internals/features/audit/payment_logs/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestRecordInsertsAuditRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	actor := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payment_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	NewAuditLogger(gdb).Record(Entry{
		AdminUserID:    actor,
		RegistrationID: 42,
		Action:         model.LogActionCreate,
		Details:        "Pagamento de R$ 100.00 criado.",
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSwallowsInsertFailure(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payment_logs"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	// Must not panic and must not propagate the error.
	assert.NotPanics(t, func() {
		NewAuditLogger(gdb).Record(Entry{
			AdminUserID:    uuid.New(),
			RegistrationID: 42,
			Action:         model.LogActionUpdate,
			Details:        "x",
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
