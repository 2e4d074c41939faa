package dto

import (
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/domain"
)

type SubmitInput struct {
	FormID    string         `json:"-"`
	Origin    string         `json:"-"`
	IPAddress string         `json:"-"`
	Data      map[string]any `json:"-"`
}

type SubmissionOutput struct {
	ID        string         `json:"id"`
	FormID    string         `json:"formId"`
	Data      map[string]any `json:"data"`
	Origin    string         `json:"origin,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func ToSubmissionOutput(s *domain.Submission) SubmissionOutput {
	return SubmissionOutput{
		ID:        s.ID,
		FormID:    s.FormID,
		Data:      s.Data,
		Origin:    s.Origin,
		CreatedAt: s.CreatedAt,
	}
}
