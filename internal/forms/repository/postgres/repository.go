package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresFormRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const formColumns = `id, user_id, name, fields, require_domain_verification,
		allowed_domains, notify_email, created_at, updated_at, deleted, deleted_at`

func (r *PostgresRepository) Create(ctx context.Context, f *domain.Form) error {
	fields, err := json.Marshal(f.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode form fields: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO forms (id, user_id, name, fields, require_domain_verification, allowed_domains, notify_email, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false)
	`, f.ID, f.UserID, f.Name, fields, f.RequireDomainVerification, f.AllowedDomains, f.NotifyEmail, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert form: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetActiveByID(ctx context.Context, id string) (*domain.Form, error) {
	query := `
		SELECT ` + formColumns + `
		FROM forms
		WHERE id = $1 AND NOT deleted
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	f, err := scanForm(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) ListActiveByUser(ctx context.Context, userID string) ([]domain.Form, error) {
	query := `
		SELECT ` + formColumns + `
		FROM forms
		WHERE user_id = $1 AND NOT deleted
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	defer rows.Close()

	var out []domain.Form
	for rows.Next() {
		f, err := scanForm(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan form: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateAllowedDomains(ctx context.Context, id string, domains []string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE forms
		SET allowed_domains = $2, updated_at = now()
		WHERE id = $1 AND NOT deleted
	`, id, domains)
	if err != nil {
		return fmt.Errorf("failed to update allowed domains: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE forms
		SET deleted = true, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND NOT deleted
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	return nil
}

func scanForm(scan func(dest ...any) error) (*domain.Form, error) {
	var f domain.Form
	var fields []byte
	if err := scan(&f.ID, &f.UserID, &f.Name, &fields, &f.RequireDomainVerification,
		&f.AllowedDomains, &f.NotifyEmail, &f.CreatedAt, &f.UpdatedAt, &f.Deleted, &f.DeletedAt); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &f.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode form fields: %w", err)
		}
	}
	return &f, nil
}
