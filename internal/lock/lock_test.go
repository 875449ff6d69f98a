package lock

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinned(t *testing.T) (*sqlx.Conn, sqlmock.Sqlmock) {
	t.Helper()
	mdb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mdb.Close() })

	conn, err := sqlx.NewDb(mdb, "mysql").Connx(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, mock
}

func TestReviewKey(t *testing.T) {
	assert.Equal(t, "reviews:12:7", ReviewKey(12, 7))
}

func TestAcquireAndRelease(t *testing.T) {
	conn, mock := pinned(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT GET_LOCK(?, ?)")).
		WithArgs("reviews:1:2", 3).
		WillReturnRows(sqlmock.NewRows([]string{"got"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("SELECT RELEASE_LOCK(?)")).
		WithArgs("reviews:1:2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	a, err := Acquire(context.Background(), conn, ReviewKey(1, 2), 3)
	require.NoError(t, err)
	a.Release()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcquireTimeout(t *testing.T) {
	conn, mock := pinned(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT GET_LOCK(?, ?)")).
		WillReturnRows(sqlmock.NewRows([]string{"got"}).AddRow(0))

	a, err := Acquire(context.Background(), conn, "busy", 1)
	require.Error(t, err)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), `"busy"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcquireNullResult(t *testing.T) {
	conn, mock := pinned(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT GET_LOCK(?, ?)")).
		WillReturnRows(sqlmock.NewRows([]string{"got"}).AddRow(nil))

	_, err := Acquire(context.Background(), conn, "broken", 0)
	assert.Error(t, err)
}

func TestReleaseNil(t *testing.T) {
	var a *Advisory
	assert.NotPanics(t, a.Release)
}
