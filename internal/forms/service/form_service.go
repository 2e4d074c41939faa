package service

import (
	"context"
	"fmt"
	"time"

	domaindomain "github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/domain"
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/dto"
	"github.com/CodeRohanDev/FastSubmit-sub004/pkg/domainname"
	"github.com/google/uuid"
)

var allowedFieldTypes = map[string]bool{
	"text":   true,
	"email":  true,
	"number": true,
}

type FormService struct {
	repo    domain.FormRepository
	domains domaindomain.DomainRepository
}

func NewFormService(repo domain.FormRepository, domains domaindomain.DomainRepository) *FormService {
	return &FormService{repo: repo, domains: domains}
}

func (s *FormService) Create(ctx context.Context, userID string, input dto.CreateFormInput) (*domain.Form, error) {
	if input.Name == "" {
		return nil, fserrors.Validation("form name is required")
	}
	for _, f := range input.Fields {
		if f.Name == "" {
			return nil, fserrors.Validation("every field needs a name")
		}
		if f.Type != "" && !allowedFieldTypes[f.Type] {
			return nil, fserrors.Validation(fmt.Sprintf("unsupported field type %q for field %q", f.Type, f.Name))
		}
	}

	now := time.Now()
	form := &domain.Form{
		ID:                        uuid.NewString(),
		UserID:                    userID,
		Name:                      input.Name,
		Fields:                    input.Fields,
		RequireDomainVerification: input.RequireDomainVerification,
		AllowedDomains:            []string{},
		NotifyEmail:               input.NotifyEmail,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if err := s.repo.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) Get(ctx context.Context, id, requestingUserID string) (*domain.Form, error) {
	form, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, fserrors.ErrFormNotFound
	}
	if form.UserID != requestingUserID {
		return nil, fserrors.Forbidden("you do not own this form")
	}
	return form, nil
}

func (s *FormService) List(ctx context.Context, userID string) ([]domain.Form, error) {
	return s.repo.ListActiveByUser(ctx, userID)
}

// SetAllowedDomains replaces the form's allowed-domain list. Every entry must
// be a domain the same user has verified at the time of this write; the list
// is not re-validated afterwards.
func (s *FormService) SetAllowedDomains(ctx context.Context, id, requestingUserID string, raw []string) (*domain.Form, error) {
	form, err := s.Get(ctx, id, requestingUserID)
	if err != nil {
		return nil, err
	}

	normalized := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		d := domainname.Normalize(r)
		if d == "" {
			return nil, fserrors.Validation(fmt.Sprintf("invalid domain %q", r))
		}
		if seen[d] {
			continue
		}
		seen[d] = true

		verified, err := s.domains.GetVerifiedByUserAndDomain(ctx, requestingUserID, d)
		if err != nil {
			return nil, err
		}
		if verified == nil {
			return nil, fserrors.Validation(fmt.Sprintf("domain %s is not verified for your account", d))
		}
		normalized = append(normalized, d)
	}

	if err := s.repo.UpdateAllowedDomains(ctx, form.ID, normalized); err != nil {
		return nil, err
	}
	form.AllowedDomains = normalized
	return form, nil
}

func (s *FormService) Delete(ctx context.Context, id, requestingUserID string) error {
	form, err := s.Get(ctx, id, requestingUserID)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, form.ID)
}
