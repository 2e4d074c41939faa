package service

import (
	"context"
	"time"

	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	formdomain "github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/notify"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/ratelimit"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/dto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const notifyTimeout = 15 * time.Second

// SubmitService orchestrates the public submission path: rate limit, form
// lookup, origin authorization, field validation and persistence, with a
// fire-and-forget owner notification at the end.
type SubmitService struct {
	forms    formdomain.FormRepository
	subs     domain.SubmissionRepository
	limiter  ratelimit.Limiter
	notifier notify.Notifier
	log      zerolog.Logger
}

func NewSubmitService(forms formdomain.FormRepository, subs domain.SubmissionRepository,
	limiter ratelimit.Limiter, notifier notify.Notifier, log zerolog.Logger) *SubmitService {
	return &SubmitService{
		forms:    forms,
		subs:     subs,
		limiter:  limiter,
		notifier: notifier,
		log:      log,
	}
}

func (s *SubmitService) Submit(ctx context.Context, input dto.SubmitInput) (*domain.Submission, error) {
	allowed, err := s.limiter.Allow(ctx, input.IPAddress+":"+input.FormID)
	if err != nil {
		// a broken limiter backend must not take the endpoint down
		s.log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
	} else if !allowed {
		return nil, fserrors.ErrTooManyRequests
	}

	form, err := s.forms.GetActiveByID(ctx, input.FormID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, fserrors.ErrFormNotFound
	}

	if form.RequireDomainVerification && len(form.AllowedDomains) > 0 && !IsLocalOrigin(input.Origin) {
		if !OriginAllowed(input.Origin, form.AllowedDomains) {
			s.log.Info().Str("form_id", form.ID).Str("origin", input.Origin).Msg("submission origin rejected")
			return nil, fserrors.ErrOriginNotAllowed
		}
	}

	clean, err := validateFields(form.Fields, input.Data)
	if err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:        uuid.NewString(),
		FormID:    form.ID,
		Data:      clean,
		Origin:    input.Origin,
		IPAddress: input.IPAddress,
		CreatedAt: time.Now(),
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}

	go s.notifyOwner(form, sub)

	return sub, nil
}

// ListForForm returns recent submissions for a form the requesting user owns.
func (s *SubmitService) ListForForm(ctx context.Context, formID, requestingUserID string, limit int) ([]domain.Submission, error) {
	form, err := s.forms.GetActiveByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, fserrors.ErrFormNotFound
	}
	if form.UserID != requestingUserID {
		return nil, fserrors.Forbidden("you do not own this form")
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.subs.ListByForm(ctx, formID, limit)
}

func (s *SubmitService) notifyOwner(form *formdomain.Form, sub *domain.Submission) {
	// detached from the request lifetime
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	n := notify.Notification{
		To:       form.NotifyEmail,
		FormName: form.Name,
		FormID:   form.ID,
		Data:     sub.Data,
	}
	if err := s.notifier.SubmissionReceived(ctx, n); err != nil {
		s.log.Warn().Err(err).Str("form_id", form.ID).Msg("submission notification failed")
	}
}
