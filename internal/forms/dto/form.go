package dto

import (
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/domain"
)

type CreateFormInput struct {
	Name                      string             `json:"name"`
	Fields                    []domain.FieldSpec `json:"fields"`
	RequireDomainVerification bool               `json:"requireDomainVerification"`
	NotifyEmail               string             `json:"notifyEmail"`
}

type SetAllowedDomainsInput struct {
	Domains []string `json:"domains"`
}

type FormOutput struct {
	ID                        string             `json:"id"`
	Name                      string             `json:"name"`
	Fields                    []domain.FieldSpec `json:"fields"`
	RequireDomainVerification bool               `json:"requireDomainVerification"`
	AllowedDomains            []string           `json:"allowedDomains"`
	NotifyEmail               string             `json:"notifyEmail,omitempty"`
	CreatedAt                 time.Time          `json:"createdAt"`
	UpdatedAt                 time.Time          `json:"updatedAt"`
}

func ToFormOutput(f *domain.Form) FormOutput {
	return FormOutput{
		ID:                        f.ID,
		Name:                      f.Name,
		Fields:                    f.Fields,
		RequireDomainVerification: f.RequireDomainVerification,
		AllowedDomains:            f.AllowedDomains,
		NotifyEmail:               f.NotifyEmail,
		CreatedAt:                 f.CreatedAt,
		UpdatedAt:                 f.UpdatedAt,
	}
}
