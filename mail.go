package dmarc

import (
	"net/mail"
	"strings"
)

// ExtractFromDomain extracts the domain from an RFC 5322 From header value,
// lower-cased. It returns an error if the header is missing, invalid, or
// contains multiple addresses: DMARC authenticates a single From domain, so
// multiple addresses are ambiguous.
func ExtractFromDomain(fromHeader string) (string, error) {
	if fromHeader == "" {
		return "", ErrNoFromHeader
	}

	// Parse the From header (may contain display name)
	addrs, err := mail.ParseAddressList(fromHeader)
	if err != nil {
		return "", ErrInvalidFromHeader
	}

	if len(addrs) == 0 {
		return "", ErrNoFromHeader
	}
	if len(addrs) > 1 {
		return "", ErrMultipleFromAddresses
	}

	// Extract domain from the email address
	addr := addrs[0].Address
	at := strings.LastIndex(addr, "@")
	if at < 0 || at == len(addr)-1 {
		return "", ErrInvalidFromHeader
	}

	return strings.ToLower(addr[at+1:]), nil
}
