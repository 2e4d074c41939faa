package domain

import "time"

// Form is a user-defined form schema. AllowedDomains holds normalized domain
// strings; entries are validated against the owner's verified domains when
// the list is written, and kept as a snapshot afterwards even if a domain is
// later deleted or re-registered.
type Form struct {
	ID                        string
	UserID                    string
	Name                      string
	Fields                    []FieldSpec
	RequireDomainVerification bool
	AllowedDomains            []string
	NotifyEmail               string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	Deleted                   bool
	DeletedAt                 *time.Time
}

// FieldSpec declares one accepted submission field.
type FieldSpec struct {
	Name      string `json:"name"`
	Type      string `json:"type"` // text, email or number
	Required  bool   `json:"required"`
	MaxLength int    `json:"maxLength,omitempty"`
}
