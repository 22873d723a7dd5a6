package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ukmprhub/internal/config"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRunMigrations(t *testing.T) {
	t.Run("duplicate columns are skipped", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS members`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		for i := range columnMigrations {
			exp := mock.ExpectExec(regexp.QuoteMeta(columnMigrations[i]))
			if i%2 == 0 {
				exp.WillReturnError(&pq.Error{Code: "42701", Message: "column already exists"})
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 0))
			}
		}

		require.NoError(t, db.RunMigrations(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other alter failures do not abort", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(columnMigrations[0])).
			WillReturnError(errors.New("relation is locked"))
		for _, stmt := range columnMigrations[1:] {
			mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
		}

		require.NoError(t, db.RunMigrations(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("schema failure is returned", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS`)).
			WillReturnError(errors.New("permission denied"))

		err := db.RunMigrations(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply schema")
	})
}

func TestIsDuplicateColumn(t *testing.T) {
	assert.True(t, isDuplicateColumn(&pq.Error{Code: "42701"}))
	assert.False(t, isDuplicateColumn(&pq.Error{Code: "42P01"}))
	assert.False(t, isDuplicateColumn(errors.New("42701")))
}

func TestSeed(t *testing.T) {
	t.Run("fills empty tables", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM members WHERE role = $1`)).
			WithArgs("Admin").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO members`)).
			WithArgs("Administrator", "admin", sqlmock.AnyArg(), "-", "-", 0, "Admin").
			WillReturnResult(sqlmock.NewResult(1, 1))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM stats`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for range starterStats {
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO stats`)).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM banners`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		for range starterBanners {
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO banners`)).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}

		err := db.Seed(context.Background(), config.Admin{Username: "admin", Password: "admin123"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second run inserts nothing", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM members WHERE role = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM stats`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM banners`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		err := db.Seed(context.Background(), config.Admin{Username: "admin", Password: "admin123"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHealthCheck(t *testing.T) {
	var nilDB *DB
	assert.Error(t, nilDB.HealthCheck())

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, New(sqlx.NewDb(db, "sqlmock")).HealthCheck())
}
