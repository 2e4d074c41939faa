package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresSubmissionRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *domain.Submission) error {
	data, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("failed to encode submission data: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO submissions (id, form_id, data, origin, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.FormID, data, s.Origin, s.IPAddress, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByForm(ctx context.Context, formID string, limit int) ([]domain.Submission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, form_id, data, origin, ip_address, created_at
		FROM submissions
		WHERE form_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`, formID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var s domain.Submission
		var data []byte
		if err := rows.Scan(&s.ID, &s.FormID, &data, &s.Origin, &s.IPAddress, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &s.Data); err != nil {
				return nil, fmt.Errorf("failed to decode submission data: %w", err)
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
