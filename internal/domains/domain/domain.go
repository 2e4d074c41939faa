package domain

import "time"

// VerifiedDomain is one (user, domain) ownership record. The domain string is
// stored normalized and never changes after creation, and neither does the
// verification token. Verified only ever goes false -> true; removal is a
// soft delete.
type VerifiedDomain struct {
	ID                string
	UserID            string
	Domain            string
	VerificationToken string
	Verified          bool
	VerifiedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Deleted           bool
	DeletedAt         *time.Time
}

// DNSRecord describes the TXT record the user must add to their zone.
type DNSRecord struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}
