package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresKeyRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertIfAbsent(ctx context.Context, k *domain.APIKey) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO api_keys (user_id, key, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`, k.UserID, k.Key, k.CreatedAt, k.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert api key: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*domain.APIKey, error) {
	query := `
		SELECT user_id, key, created_at, updated_at
		FROM api_keys
		WHERE user_id = $1
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *PostgresRepository) GetByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	query := `
		SELECT user_id, key, created_at, updated_at
		FROM api_keys
		WHERE key = $1
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, key))
}

func (r *PostgresRepository) Replace(ctx context.Context, userID, newKey string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE api_keys
		SET key = $2, updated_at = now()
		WHERE user_id = $1
	`, userID, newKey)
	if err != nil {
		return fmt.Errorf("failed to replace api key: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*domain.APIKey, error) {
	var k domain.APIKey
	err := row.Scan(&k.UserID, &k.Key, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return &k, nil
}
