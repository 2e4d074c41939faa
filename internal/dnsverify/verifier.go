// Package dnsverify checks domain ownership by looking for a verification
// token in the domain's DNS TXT records.
package dnsverify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/pkg/domainname"
)

// TXTMarker prefixes the record value users add to their zone, e.g.
// "fastsubmit-verify=<token>".
const TXTMarker = "fastsubmit-verify="

const defaultLookupTimeout = 5 * time.Second

// Resolver answers TXT lookups. Each inner slice holds the character-string
// segments of one record; resolvers may split a long record into segments of
// at most 255 bytes that must be concatenated before use.
type Resolver interface {
	LookupTXT(ctx context.Context, host string) ([][]string, error)
}

// NetResolver adapts net.Resolver, which returns records with their segments
// already joined.
type NetResolver struct {
	r *net.Resolver
}

func (n NetResolver) LookupTXT(ctx context.Context, host string) ([][]string, error) {
	records, err := n.r.LookupTXT(ctx, host)
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(records))
	for i, rec := range records {
		out[i] = []string{rec}
	}
	return out, nil
}

// Outcome is the structured result of a verification attempt. Verification
// failures are routine outcomes, not errors; Verify never returns an error
// value.
type Outcome struct {
	Verified     bool     `json:"verified"`
	Error        string   `json:"error,omitempty"`
	FoundRecords []string `json:"foundRecords,omitempty"`
}

type Verifier struct {
	resolver Resolver
	timeout  time.Duration
}

func New(resolver Resolver) *Verifier {
	if resolver == nil {
		resolver = NetResolver{r: net.DefaultResolver}
	}
	return &Verifier{resolver: resolver, timeout: defaultLookupTimeout}
}

// Verify looks up TXT records for domain and checks whether one carries
// expectedToken. The comparison is case-insensitive and whitespace-trimmed
// on both sides.
func (v *Verifier) Verify(ctx context.Context, domain, expectedToken string) Outcome {
	host := domainname.Normalize(domain)
	if host == "" {
		return Outcome{Verified: false, Error: "domain is empty after normalization"}
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	raw, err := v.resolver.LookupTXT(ctx, host)
	if err != nil {
		return lookupFailure(host, err)
	}

	// Concatenate multi-segment records before searching.
	records := make([]string, 0, len(raw))
	for _, segments := range raw {
		records = append(records, strings.Join(segments, ""))
	}

	var candidate string
	var found bool
	for _, rec := range records {
		idx := strings.Index(rec, TXTMarker)
		if idx < 0 {
			continue
		}
		found = true
		candidate = strings.TrimSpace(rec[idx+len(TXTMarker):])
		if strings.EqualFold(candidate, strings.TrimSpace(expectedToken)) {
			return Outcome{Verified: true, FoundRecords: records}
		}
	}

	if !found {
		return Outcome{
			Verified: false,
			Error: fmt.Sprintf("no verification record found; add a TXT record with value: %s%s",
				TXTMarker, expectedToken),
			FoundRecords: records,
		}
	}

	if candidate == "" {
		return Outcome{
			Verified:     false,
			Error:        "could not parse token from verification record",
			FoundRecords: records,
		}
	}

	return Outcome{
		Verified:     false,
		Error:        "verification record found but the token does not match",
		FoundRecords: records,
	}
}

func lookupFailure(host string, err error) Outcome {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound {
			return Outcome{Verified: false, Error: fmt.Sprintf("domain %s not found in DNS", host)}
		}
		if dnsErr.IsTimeout {
			return Outcome{Verified: false, Error: fmt.Sprintf("DNS lookup for %s timed out", host)}
		}
	}
	return Outcome{Verified: false, Error: fmt.Sprintf("DNS lookup failed: %v", err)}
}
