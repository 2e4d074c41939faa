package dto

import (
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/domain"
)

type RegisterDomainInput struct {
	Domain string `json:"domain"`
}

type DomainOutput struct {
	ID                string           `json:"id"`
	Domain            string           `json:"domain"`
	Verified          bool             `json:"verified"`
	VerificationToken string           `json:"verificationToken"`
	DNSRecord         domain.DNSRecord `json:"dnsRecord"`
	VerifiedAt        *time.Time       `json:"verifiedAt,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

type VerifyOutput struct {
	Verified     bool     `json:"verified"`
	Error        string   `json:"error,omitempty"`
	FoundRecords []string `json:"foundRecords,omitempty"`
}
