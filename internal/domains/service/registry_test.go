package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/dnsverify"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/service"
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const testToken = "fastsubmit-verify-abc123def456ghi789jkl012"

func newRegistryService(t *testing.T) (*service.RegistryService, *mocks.MockDomainRepository, *mocks.MockDNSChecker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockDomainRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockChecker := mocks.NewMockDNSChecker(ctrl)
	mockTokens.EXPECT().Generate().Return(testToken).AnyTimes()

	s := service.NewRegistryService(mockRepo, mockTokens, mockChecker, zerolog.Nop())
	return s, mockRepo, mockChecker
}

func TestRegistryService_Register_Success(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	mockRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)

	d, created, err := s.Register(context.Background(), "user-1", "https://www.Example.com/")

	assert.NoError(t, err)
	assert.True(t, created)
	assert.NotNil(t, d)
	assert.Equal(t, "example.com", d.Domain)
	assert.Equal(t, "user-1", d.UserID)
	assert.Equal(t, testToken, d.VerificationToken)
	assert.False(t, d.Verified)
	assert.NotEmpty(t, d.ID)
	assert.NotZero(t, d.CreatedAt)
}

func TestRegistryService_Register_ExistingDomainReturned(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	existing := &domain.VerifiedDomain{
		ID:                "dom-1",
		UserID:            "user-1",
		Domain:            "example.com",
		VerificationToken: "fastsubmit-verify-original000000000000000",
	}

	mockRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetActiveByUserAndDomain(gomock.Any(), "user-1", "example.com").Return(existing, nil)

	d, created, err := s.Register(context.Background(), "user-1", "example.com")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, d)
}

func TestRegistryService_Register_EmptyDomain(t *testing.T) {
	s, _, _ := newRegistryService(t)

	d, created, err := s.Register(context.Background(), "user-1", "   ")

	assert.Nil(t, d)
	assert.False(t, created)
	assert.Equal(t, fserrors.KindValidation, fserrors.KindOf(err))
}

func TestRegistryService_Register_CreateError(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	expectedErr := errors.New("database error")
	mockRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, expectedErr)

	d, created, err := s.Register(context.Background(), "user-1", "example.com")

	assert.Nil(t, d)
	assert.False(t, created)
	assert.Equal(t, expectedErr, err)
}

func TestRegistryService_Register_LostRaceThenRecordGone(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	// Insert loses, then the winner is deleted before the re-read. The only
	// honest answer left is not found.
	mockRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetActiveByUserAndDomain(gomock.Any(), "user-1", "example.com").Return(nil, nil)

	d, created, err := s.Register(context.Background(), "user-1", "example.com")

	assert.Nil(t, d)
	assert.False(t, created)
	assert.Equal(t, fserrors.ErrDomainNotFound, err)
}

func TestRegistryService_AttemptVerify_Success(t *testing.T) {
	s, mockRepo, mockChecker := newRegistryService(t)

	d := &domain.VerifiedDomain{
		ID:                "dom-1",
		UserID:            "user-1",
		Domain:            "example.com",
		VerificationToken: testToken,
	}

	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "dom-1").Return(d, nil)
	mockChecker.EXPECT().Verify(gomock.Any(), "example.com", testToken).
		Return(dnsverify.Outcome{Verified: true})
	mockRepo.EXPECT().MarkVerified(gomock.Any(), "dom-1").Return(nil)

	outcome, err := s.AttemptVerify(context.Background(), "dom-1", "user-1")

	assert.NoError(t, err)
	assert.True(t, outcome.Verified)
}

func TestRegistryService_AttemptVerify_DNSMismatchLeavesUnverified(t *testing.T) {
	s, mockRepo, mockChecker := newRegistryService(t)

	d := &domain.VerifiedDomain{
		ID:                "dom-1",
		UserID:            "user-1",
		Domain:            "example.com",
		VerificationToken: testToken,
	}

	failed := dnsverify.Outcome{
		Verified: false,
		Error:    "verification token mismatch",
	}

	// No MarkVerified expectation: a failed check must not touch the record.
	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "dom-1").Return(d, nil)
	mockChecker.EXPECT().Verify(gomock.Any(), "example.com", testToken).Return(failed)

	outcome, err := s.AttemptVerify(context.Background(), "dom-1", "user-1")

	assert.NoError(t, err)
	assert.False(t, outcome.Verified)
	assert.Equal(t, failed.Error, outcome.Error)
}

func TestRegistryService_AttemptVerify_AlreadyVerifiedSkipsDNS(t *testing.T) {
	s, mockRepo, mockChecker := newRegistryService(t)

	now := time.Now()
	d := &domain.VerifiedDomain{
		ID:         "dom-1",
		UserID:     "user-1",
		Domain:     "example.com",
		Verified:   true,
		VerifiedAt: &now,
	}

	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "dom-1").Return(d, nil)
	mockChecker.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	outcome, err := s.AttemptVerify(context.Background(), "dom-1", "user-1")

	assert.NoError(t, err)
	assert.True(t, outcome.Verified)
}

func TestRegistryService_AttemptVerify_NotFound(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "missing").Return(nil, nil)

	_, err := s.AttemptVerify(context.Background(), "missing", "user-1")

	assert.Equal(t, fserrors.ErrDomainNotFound, err)
}

func TestRegistryService_AttemptVerify_NotOwner(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	d := &domain.VerifiedDomain{
		ID:     "dom-1",
		UserID: "user-1",
		Domain: "example.com",
	}

	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "dom-1").Return(d, nil)

	_, err := s.AttemptVerify(context.Background(), "dom-1", "user-2")

	assert.Equal(t, fserrors.ErrNotDomainOwner, err)
}

func TestRegistryService_AttemptVerify_MarkVerifiedError(t *testing.T) {
	s, mockRepo, mockChecker := newRegistryService(t)

	d := &domain.VerifiedDomain{
		ID:                "dom-1",
		UserID:            "user-1",
		Domain:            "example.com",
		VerificationToken: testToken,
	}

	expectedErr := errors.New("database error")
	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "dom-1").Return(d, nil)
	mockChecker.EXPECT().Verify(gomock.Any(), "example.com", testToken).
		Return(dnsverify.Outcome{Verified: true})
	mockRepo.EXPECT().MarkVerified(gomock.Any(), "dom-1").Return(expectedErr)

	_, err := s.AttemptVerify(context.Background(), "dom-1", "user-1")

	assert.Equal(t, expectedErr, err)
}

func TestRegistryService_Delete_Success(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	d := &domain.VerifiedDomain{
		ID:     "dom-1",
		UserID: "user-1",
		Domain: "example.com",
	}

	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "dom-1").Return(d, nil)
	mockRepo.EXPECT().SoftDelete(gomock.Any(), "dom-1").Return(nil)

	err := s.Delete(context.Background(), "dom-1", "user-1")

	assert.NoError(t, err)
}

func TestRegistryService_Delete_NotOwner(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	d := &domain.VerifiedDomain{
		ID:     "dom-1",
		UserID: "user-1",
		Domain: "example.com",
	}

	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "dom-1").Return(d, nil)

	err := s.Delete(context.Background(), "dom-1", "user-2")

	assert.Equal(t, fserrors.ErrNotDomainOwner, err)
}

func TestRegistryService_Delete_NotFound(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	mockRepo.EXPECT().GetActiveByID(gomock.Any(), "missing").Return(nil, nil)

	err := s.Delete(context.Background(), "missing", "user-1")

	assert.Equal(t, fserrors.ErrDomainNotFound, err)
}

func TestRegistryService_List(t *testing.T) {
	s, mockRepo, _ := newRegistryService(t)

	records := []domain.VerifiedDomain{
		{ID: "dom-1", UserID: "user-1", Domain: "example.com"},
		{ID: "dom-2", UserID: "user-1", Domain: "other.io"},
	}

	mockRepo.EXPECT().ListActiveByUser(gomock.Any(), "user-1").Return(records, nil)

	got, err := s.List(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestDNSRecordFor(t *testing.T) {
	d := &domain.VerifiedDomain{
		Domain:            "example.com",
		VerificationToken: testToken,
	}

	rec := service.DNSRecordFor(d)

	assert.Equal(t, "TXT", rec.Type)
	assert.Equal(t, "example.com", rec.Name)
	assert.Equal(t, "fastsubmit-verify="+testToken, rec.Value)
}

func TestRandomTokenGenerator_Generate(t *testing.T) {
	gen := service.RandomTokenGenerator{}

	a := gen.Generate()
	b := gen.Generate()

	assert.Len(t, a, len("fastsubmit-verify-")+24)
	assert.Contains(t, a, "fastsubmit-verify-")
	assert.NotEqual(t, a, b)
}
