package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func priceRows(values ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "camp_id", "participant_tier_id", "registration_package_id", "price"})
	for i, v := range values {
		rows.AddRow(int64(i+1), int64(1), int64(2), int64(3), v)
	}
	return rows
}

func TestResolveReturnsConfiguredPrice(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "camp_prices"`).
		WithArgs(int64(1), int64(2), int64(3), 2).
		WillReturnRows(priceRows("350.00"))

	got, err := NewPriceResolver(gdb).Resolve(context.Background(), 1, 2, 3)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("350.00")), "got %s", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveMissReturnsNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "camp_prices"`).
		WithArgs(int64(1), int64(2), int64(3), 2).
		WillReturnRows(priceRows())

	_, err := NewPriceResolver(gdb).Resolve(context.Background(), 1, 2, 3)
	assert.ErrorIs(t, err, ErrPriceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveDuplicateRowsAreAmbiguous(t *testing.T) {
	gdb, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "camp_prices"`).
		WithArgs(int64(1), int64(2), int64(3), 2).
		WillReturnRows(priceRows("350.00", "420.00"))

	_, err := NewPriceResolver(gdb).Resolve(context.Background(), 1, 2, 3)
	assert.ErrorIs(t, err, ErrPriceAmbiguous)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveInvalidIDsSkipQuery(t *testing.T) {
	gdb, mock := newMockDB(t)

	for _, triple := range [][3]int64{{0, 2, 3}, {1, 0, 3}, {1, 2, -1}} {
		_, err := NewPriceResolver(gdb).Resolve(context.Background(), triple[0], triple[1], triple[2])
		assert.ErrorIs(t, err, ErrPriceNotFound)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
