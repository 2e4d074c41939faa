package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/domain"
	repo "github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyColumns = []string{"user_id", "key", "created_at", "updated_at"}

func TestInsertIfAbsent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresKeyRepository(mock)
	ctx := context.Background()

	k := &domain.APIKey{
		UserID:    "user-1",
		Key:       "fs_abc",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	t.Run("insert wins", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO api_keys").
			WithArgs(k.UserID, k.Key, k.CreatedAt, k.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		created, err := r.InsertIfAbsent(ctx, k)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("user already has a key", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO api_keys").
			WithArgs(k.UserID, k.Key, k.CreatedAt, k.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		created, err := r.InsertIfAbsent(ctx, k)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO api_keys").
			WithArgs(k.UserID, k.Key, k.CreatedAt, k.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.InsertIfAbsent(ctx, k)
		assert.Error(t, err)
	})
}

func TestGetByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresKeyRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, key").
			WithArgs("user-1").
			WillReturnRows(pgxmock.NewRows(keyColumns).
				AddRow("user-1", "fs_abc", time.Now(), time.Now()))

		k, err := r.GetByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "fs_abc", k.Key)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, key").
			WithArgs("user-2").
			WillReturnError(pgx.ErrNoRows)

		k, err := r.GetByUser(ctx, "user-2")
		require.NoError(t, err)
		assert.Nil(t, k)
	})
}

func TestGetByKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresKeyRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, key").
			WithArgs("fs_abc").
			WillReturnRows(pgxmock.NewRows(keyColumns).
				AddRow("user-1", "fs_abc", time.Now(), time.Now()))

		k, err := r.GetByKey(ctx, "fs_abc")
		require.NoError(t, err)
		assert.Equal(t, "user-1", k.UserID)
	})

	t.Run("unknown key", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, key").
			WithArgs("fs_nope").
			WillReturnError(pgx.ErrNoRows)

		k, err := r.GetByKey(ctx, "fs_nope")
		require.NoError(t, err)
		assert.Nil(t, k)
	})
}

func TestReplace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresKeyRepository(mock)
	ctx := context.Background()

	mock.ExpectExec("UPDATE api_keys").
		WithArgs("user-1", "fs_new").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = r.Replace(ctx, "user-1", "fs_new")
	assert.NoError(t, err)
}
