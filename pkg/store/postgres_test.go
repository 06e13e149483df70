package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresStoreMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgres(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func TestPostgresStoreGet(t *testing.T) {
	s, mock, cleanup := newPostgresStoreMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT doc FROM collections WHERE name = $1")).
		WithArgs(Batches).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`[{"id":"b1"}]`)))

	doc, err := s.Get(context.Background(), Batches)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b1"}]`, string(doc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetAbsent(t *testing.T) {
	s, mock, cleanup := newPostgresStoreMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT doc FROM collections WHERE name = $1")).
		WithArgs(TestSlots).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	doc, err := s.Get(context.Background(), TestSlots)
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorePutUpserts(t *testing.T) {
	s, mock, cleanup := newPostgresStoreMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO collections").
		WithArgs(Rooms, []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Put(context.Background(), Rooms, []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	s, mock, cleanup := newPostgresStoreMock(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS collections").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
