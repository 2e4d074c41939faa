package domain

//go:generate mockgen -destination=../../mocks/mock_form_repository.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/domain FormRepository

import "context"

type FormRepository interface {
	Create(ctx context.Context, f *Form) error
	GetActiveByID(ctx context.Context, id string) (*Form, error)
	ListActiveByUser(ctx context.Context, userID string) ([]Form, error)
	UpdateAllowedDomains(ctx context.Context, id string, domains []string) error
	SoftDelete(ctx context.Context, id string) error
}
