package domain

//go:generate mockgen -destination=../../mocks/mock_submission_repository.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/domain SubmissionRepository

import "context"

type SubmissionRepository interface {
	Create(ctx context.Context, s *Submission) error
	ListByForm(ctx context.Context, formID string, limit int) ([]Submission, error)
}
