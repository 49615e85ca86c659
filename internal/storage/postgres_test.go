package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_Load(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT payload FROM app_snapshots WHERE key = $1`)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(query).
			WithArgs("reddy-infra-storage").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{"version":1}`)))

		got, err := NewPostgres(db).Load(ctx, "reddy-infra-storage")
		require.NoError(t, err)
		assert.Equal(t, `{"version":1}`, string(got))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(query).WithArgs("k").WillReturnError(sql.ErrNoRows)

		_, err = NewPostgres(db).Load(ctx, "k")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(query).WithArgs("k").WillReturnError(errors.New("connection reset"))

		_, err = NewPostgres(db).Load(ctx, "k")
		assert.ErrorIs(t, err, ErrFailedLoad)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestPostgresRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO app_snapshots .* ON CONFLICT \\(key\\) DO UPDATE").
			WithArgs("k", `{"a":1}`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewPostgres(db).Save(ctx, "k", []byte(`{"a":1}`)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO app_snapshots").
			WillReturnError(errors.New("disk full"))

		err = NewPostgres(db).Save(ctx, "k", []byte(`{}`))
		assert.ErrorIs(t, err, ErrFailedSave)
	})
}

func TestPostgresRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM app_snapshots WHERE key = $1`)).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewPostgres(db).Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
