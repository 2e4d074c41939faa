package domain

//go:generate mockgen -destination=../../mocks/mock_key_repository.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/domain KeyRepository

import "context"

type KeyRepository interface {
	// InsertIfAbsent stores k unless the user already has a key. It reports
	// whether the insert won, so a concurrent first-call race produces
	// exactly one persisted key.
	InsertIfAbsent(ctx context.Context, k *APIKey) (bool, error)
	GetByUser(ctx context.Context, userID string) (*APIKey, error)
	GetByKey(ctx context.Context, key string) (*APIKey, error)
	// Replace swaps the user's key for newKey in a single statement.
	Replace(ctx context.Context, userID, newKey string) error
}
