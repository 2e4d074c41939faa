package service

import (
	"net/url"
	"strings"

	"github.com/CodeRohanDev/FastSubmit-sub004/pkg/domainname"
)

// OriginAllowed decides whether a cross-origin submission from origin may
// reach a form restricted to allowedDomains. The hostname is compared
// exactly, with "www." added, and with "www." stripped, because users list a
// domain either way while browsers send either variant. Absent or unparsable
// origins fail closed.
func OriginAllowed(origin string, allowedDomains []string) bool {
	host := originHostname(origin)
	if host == "" {
		return false
	}

	for _, allowed := range allowedDomains {
		if host == allowed ||
			host == "www."+allowed ||
			strings.TrimPrefix(host, "www.") == allowed {
			return true
		}
	}
	return false
}

// IsLocalOrigin reports whether origin points at a local development
// address. Such origins bypass the gate entirely so forms can be exercised
// from a dev server before the production domain is verified.
func IsLocalOrigin(origin string) bool {
	host := originHostname(origin)
	if host == "" {
		return false
	}
	return host == "localhost" ||
		host == "127.0.0.1" ||
		strings.HasPrefix(host, "192.168.")
}

func originHostname(origin string) string {
	if origin == "" {
		return ""
	}
	u, err := url.Parse(origin)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return domainname.Normalize(u.Hostname())
}
