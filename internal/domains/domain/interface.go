package domain

//go:generate mockgen -destination=../../mocks/mock_domain_repository.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/domain DomainRepository

import "context"

// DomainRepository persists VerifiedDomain records. Every read excludes
// soft-deleted rows; deleted records are indistinguishable from absent ones.
type DomainRepository interface {
	// CreateIfAbsent inserts d unless an active record for the same
	// (userID, domain) already exists. It reports whether the insert won.
	CreateIfAbsent(ctx context.Context, d *VerifiedDomain) (bool, error)
	GetActiveByID(ctx context.Context, id string) (*VerifiedDomain, error)
	GetActiveByUserAndDomain(ctx context.Context, userID, domain string) (*VerifiedDomain, error)
	ListActiveByUser(ctx context.Context, userID string) ([]VerifiedDomain, error)
	GetVerifiedByUserAndDomain(ctx context.Context, userID, domain string) (*VerifiedDomain, error)
	MarkVerified(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
}
