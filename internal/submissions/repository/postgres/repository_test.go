package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/domain"
	repo "github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/repository/postgres"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submissionColumns = []string{"id", "form_id", "data", "origin", "ip_address", "created_at"}

func TestCreateSubmission(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresSubmissionRepository(mock)
	ctx := context.Background()

	s := &domain.Submission{
		ID:        "sub-1",
		FormID:    "form-1",
		Data:      map[string]any{"email": "visitor@example.org"},
		Origin:    "https://example.com",
		IPAddress: "203.0.113.9",
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO submissions").
			WithArgs(s.ID, s.FormID, pgxmock.AnyArg(), s.Origin, s.IPAddress, s.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, s)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO submissions").
			WithArgs(s.ID, s.FormID, pgxmock.AnyArg(), s.Origin, s.IPAddress, s.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, s)
		assert.Error(t, err)
	})
}

func TestListByForm(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresSubmissionRepository(mock)
	ctx := context.Background()

	now := time.Now()

	t.Run("success decodes data", func(t *testing.T) {
		rows := pgxmock.NewRows(submissionColumns).
			AddRow("sub-1", "form-1", []byte(`{"email":"a@b.co"}`), "https://example.com", "203.0.113.9", now).
			AddRow("sub-2", "form-1", []byte(`{}`), "", "", now)

		mock.ExpectQuery("SELECT id, form_id, data").
			WithArgs("form-1", 100).
			WillReturnRows(rows)

		got, err := r.ListByForm(ctx, "form-1", 100)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a@b.co", got[0].Data["email"])
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, form_id, data").
			WithArgs("form-2", 100).
			WillReturnRows(pgxmock.NewRows(submissionColumns))

		got, err := r.ListByForm(ctx, "form-2", 100)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
