package dmarc

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// OrganizationalDomain returns the organizational domain for the given
// domain, per RFC 7489 Section 3.2.
//
// The organizational domain is the domain directly under the public suffix.
// For example:
//   - example.com -> example.com
//   - sub.example.com -> example.com
//   - sub.example.co.uk -> example.co.uk
//
// The name is normalized to lower case without a trailing dot before the
// Public Suffix List lookup. The second return value is false when the name
// does not resolve to a registrable domain (empty input, a bare public
// suffix like "com", or an otherwise invalid name).
func OrganizationalDomain(domain string) (string, bool) {
	domain = strings.TrimSuffix(strings.ToLower(domain), ".")
	if domain == "" {
		return "", false
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return "", false
	}

	return etld1, true
}
