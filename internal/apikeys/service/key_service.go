package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/cache"
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/rs/zerolog"
)

const (
	keyPrefix    = "fs_"
	keyAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	keyRandChars = 40

	cacheKeyPrefix = "apikey:"
)

// DefaultCacheTTL bounds how long a positive validation result is served
// without a database round trip.
const DefaultCacheTTL = 60 * time.Second

type KeyService struct {
	repo     domain.KeyRepository
	cache    cache.Cache
	cacheTTL time.Duration
	log      zerolog.Logger
}

func NewKeyService(repo domain.KeyRepository, c cache.Cache, log zerolog.Logger) *KeyService {
	return &KeyService{
		repo:     repo,
		cache:    c,
		cacheTTL: DefaultCacheTTL,
		log:      log,
	}
}

// GetOrCreate returns the user's key, minting one on first call. Concurrent
// first calls are resolved by a conditional insert: exactly one key wins and
// every caller sees it.
func (s *KeyService) GetOrCreate(ctx context.Context, userID string) (*domain.APIKey, error) {
	existing, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	k := &domain.APIKey{
		UserID:    userID,
		Key:       generateKey(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.InsertIfAbsent(ctx, k)
	if err != nil {
		return nil, err
	}
	if created {
		s.log.Info().Str("user_id", userID).Msg("api key issued")
		return k, nil
	}

	// Lost the race; return the winner.
	winner, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, fserrors.ExternalService("api key lookup failed after insert conflict")
	}
	return winner, nil
}

// Regenerate replaces the user's key. The old key stops validating
// immediately: its cache entry is evicted before the new key is returned.
func (s *KeyService) Regenerate(ctx context.Context, userID string) (*domain.APIKey, error) {
	existing, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.GetOrCreate(ctx, userID)
	}

	newKey := generateKey()
	if err := s.repo.Replace(ctx, userID, newKey); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(cacheKeyPrefix + existing.Key); err != nil {
		// the stale entry ages out at the TTL; validation correctness is
		// unaffected once it does
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to evict old api key from cache")
	}

	s.log.Info().Str("user_id", userID).Msg("api key regenerated")
	return &domain.APIKey{UserID: userID, Key: newKey, CreatedAt: existing.CreatedAt, UpdatedAt: time.Now()}, nil
}

// Validate resolves the owning user for presentedKey straight from the
// persistent store.
func (s *KeyService) Validate(ctx context.Context, presentedKey string) (string, error) {
	if presentedKey == "" {
		return "", fserrors.ErrInvalidAPIKey
	}
	k, err := s.repo.GetByKey(ctx, presentedKey)
	if err != nil {
		return "", err
	}
	if k == nil {
		return "", fserrors.ErrInvalidAPIKey
	}
	return k.UserID, nil
}

// ValidateWithCache is Validate behind the TTL cache; it sits on the hot
// path of every API request. Only positive results are cached so a
// just-created key is never masked by a stale negative.
func (s *KeyService) ValidateWithCache(ctx context.Context, presentedKey string) (string, error) {
	if presentedKey == "" {
		return "", fserrors.ErrInvalidAPIKey
	}

	var userID string
	found, err := s.cache.Get(cacheKeyPrefix+presentedKey, &userID)
	if err != nil {
		s.log.Warn().Err(err).Msg("api key cache read failed")
	}
	if found {
		return userID, nil
	}

	userID, err = s.Validate(ctx, presentedKey)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(cacheKeyPrefix+presentedKey, userID, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("api key cache write failed")
	}
	return userID, nil
}

func generateKey() string {
	buf := make([]byte, keyRandChars)
	max := big.NewInt(int64(len(keyAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		buf[i] = keyAlphabet[n.Int64()]
	}
	return keyPrefix + string(buf)
}
