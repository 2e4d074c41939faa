package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository uses; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresDomainRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const domainColumns = `id, user_id, domain, verification_token, verified,
		verified_at, created_at, updated_at, deleted, deleted_at`

// CreateIfAbsent relies on the partial unique index on (user_id, domain)
// WHERE NOT deleted, so two concurrent registrations for the same domain
// cannot both insert.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, d *domain.VerifiedDomain) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO verified_domains (id, user_id, domain, verification_token, verified, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, false, $5, $6, false)
		ON CONFLICT (user_id, domain) WHERE NOT deleted DO NOTHING
	`, d.ID, d.UserID, d.Domain, d.VerificationToken, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert domain: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) GetActiveByID(ctx context.Context, id string) (*domain.VerifiedDomain, error) {
	query := `
		SELECT ` + domainColumns + `
		FROM verified_domains
		WHERE id = $1 AND NOT deleted
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetActiveByUserAndDomain(ctx context.Context, userID, dom string) (*domain.VerifiedDomain, error) {
	query := `
		SELECT ` + domainColumns + `
		FROM verified_domains
		WHERE user_id = $1 AND domain = $2 AND NOT deleted
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, userID, dom))
}

func (r *PostgresRepository) GetVerifiedByUserAndDomain(ctx context.Context, userID, dom string) (*domain.VerifiedDomain, error) {
	query := `
		SELECT ` + domainColumns + `
		FROM verified_domains
		WHERE user_id = $1 AND domain = $2 AND verified AND NOT deleted
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, userID, dom))
}

func (r *PostgresRepository) ListActiveByUser(ctx context.Context, userID string) ([]domain.VerifiedDomain, error) {
	query := `
		SELECT ` + domainColumns + `
		FROM verified_domains
		WHERE user_id = $1 AND NOT deleted
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	defer rows.Close()

	var out []domain.VerifiedDomain
	for rows.Next() {
		var d domain.VerifiedDomain
		if err := rows.Scan(&d.ID, &d.UserID, &d.Domain, &d.VerificationToken, &d.Verified,
			&d.VerifiedAt, &d.CreatedAt, &d.UpdatedAt, &d.Deleted, &d.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE verified_domains
		SET verified = true, verified_at = now(), updated_at = now()
		WHERE id = $1 AND NOT deleted
	`, id)
	if err != nil {
		return fmt.Errorf("failed to mark domain verified: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE verified_domains
		SET deleted = true, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND NOT deleted
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*domain.VerifiedDomain, error) {
	var d domain.VerifiedDomain
	err := row.Scan(&d.ID, &d.UserID, &d.Domain, &d.VerificationToken, &d.Verified,
		&d.VerifiedAt, &d.CreatedAt, &d.UpdatedAt, &d.Deleted, &d.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}
	return &d, nil
}
