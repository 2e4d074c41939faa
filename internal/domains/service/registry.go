package service

//go:generate mockgen -destination=../../mocks/mock_dns_checker.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/service DNSChecker

import (
	"context"
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/dnsverify"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/domain"
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/pkg/domainname"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DNSChecker is the DNS side of verification; satisfied by
// *dnsverify.Verifier.
type DNSChecker interface {
	Verify(ctx context.Context, domain, expectedToken string) dnsverify.Outcome
}

// RegistryService owns the VerifiedDomain state machine:
// unverified -> verified on a successful DNS check, either state -> deleted
// via soft delete, and nothing ever leaves deleted.
type RegistryService struct {
	repo    domain.DomainRepository
	tokens  TokenGenerator
	checker DNSChecker
	log     zerolog.Logger
}

func NewRegistryService(repo domain.DomainRepository, tokens TokenGenerator,
	checker DNSChecker, log zerolog.Logger) *RegistryService {
	return &RegistryService{
		repo:    repo,
		tokens:  tokens,
		checker: checker,
		log:     log,
	}
}

// Register creates an unverified record for (userID, rawDomain), or returns
// the existing active record unchanged. Idempotency is deliberate: clients
// that lost the registration response retry and recover the original token.
// The returned bool reports whether a new record was created.
func (s *RegistryService) Register(ctx context.Context, userID, rawDomain string) (*domain.VerifiedDomain, bool, error) {
	normalized := domainname.Normalize(rawDomain)
	if normalized == "" {
		return nil, false, fserrors.Validation("domain is required")
	}

	now := time.Now()
	d := &domain.VerifiedDomain{
		ID:                uuid.NewString(),
		UserID:            userID,
		Domain:            normalized,
		VerificationToken: s.tokens.Generate(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.CreateIfAbsent(ctx, d)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.log.Info().Str("user_id", userID).Str("domain", normalized).Msg("domain registered")
		return d, true, nil
	}

	// Lost the insert race or the record predates this call; either way the
	// active record is the authoritative one.
	existing, err := s.repo.GetActiveByUserAndDomain(ctx, userID, normalized)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fserrors.ErrDomainNotFound
	}
	return existing, false, nil
}

// AttemptVerify runs the DNS check for the stored token and transitions the
// record to verified on success. Verifying an already-verified record
// succeeds without touching DNS.
func (s *RegistryService) AttemptVerify(ctx context.Context, id, requestingUserID string) (dnsverify.Outcome, error) {
	d, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return dnsverify.Outcome{}, err
	}
	if d == nil {
		return dnsverify.Outcome{}, fserrors.ErrDomainNotFound
	}
	if d.UserID != requestingUserID {
		return dnsverify.Outcome{}, fserrors.ErrNotDomainOwner
	}
	if d.Verified {
		return dnsverify.Outcome{Verified: true}, nil
	}

	outcome := s.checker.Verify(ctx, d.Domain, d.VerificationToken)
	if !outcome.Verified {
		s.log.Info().Str("domain", d.Domain).Str("reason", outcome.Error).Msg("domain verification failed")
		return outcome, nil
	}

	if err := s.repo.MarkVerified(ctx, d.ID); err != nil {
		return dnsverify.Outcome{}, err
	}
	s.log.Info().Str("user_id", d.UserID).Str("domain", d.Domain).Msg("domain verified")
	return outcome, nil
}

// Delete soft-deletes the record. Forms whose allowedDomains already include
// this domain keep their snapshot; the reference simply goes stale.
func (s *RegistryService) Delete(ctx context.Context, id, requestingUserID string) error {
	d, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return fserrors.ErrDomainNotFound
	}
	if d.UserID != requestingUserID {
		return fserrors.ErrNotDomainOwner
	}
	return s.repo.SoftDelete(ctx, d.ID)
}

func (s *RegistryService) List(ctx context.Context, userID string) ([]domain.VerifiedDomain, error) {
	return s.repo.ListActiveByUser(ctx, userID)
}

// DNSRecordFor builds the TXT record the user needs to add for d.
func DNSRecordFor(d *domain.VerifiedDomain) domain.DNSRecord {
	return domain.DNSRecord{
		Type:  "TXT",
		Name:  d.Domain,
		Value: dnsverify.TXTMarker + d.VerificationToken,
	}
}
