package dao

import (
	"Conbini/models"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTallySplitsVerdicts(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewVerification(db)

	rows := sqlmock.NewRows([]string{"total_count", "match_count", "mismatch_count"}).
		AddRow(5, 3, 2)
	mock.ExpectQuery("SELECT(.+)verifications").
		WithArgs(models.VerdictMatch, models.VerdictMismatch, "4901330571481", sqlmock.AnyArg()).
		WillReturnRows(rows)

	res, err := d.Tally(context.Background(), "4901330571481", time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 3, res.MatchCount)
	require.EqualValues(t, 2, res.MismatchCount)
	require.EqualValues(t, 5, res.TotalCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTallyAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewVerification(db)

	rows := sqlmock.NewRows([]string{"total_count", "match_count", "mismatch_count"}).
		AddRow(0, 0, 0)
	mock.ExpectQuery("SELECT(.+)verifications").
		WithArgs(models.VerdictMatch, models.VerdictMismatch, "0000000000000").
		WillReturnRows(rows)

	res, err := d.TallyAll(context.Background(), "0000000000000")
	require.NoError(t, err)
	require.EqualValues(t, 0, res.TotalCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckExists(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewVerification(db)

	mock.ExpectQuery("SELECT count(.+)verifications").
		WithArgs("u1", "4901330571481").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := d.CheckExists(context.Background(), "u1", "4901330571481")
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
