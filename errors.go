package dmarc

import (
	"errors"
)

// DMARC lookup and evaluation errors. Details (the offending tag name,
// version value, or underlying cause) travel in the wrapped message; match
// with errors.Is.
var (
	// ErrSyntax indicates a policy record with invalid syntax: malformed
	// tag grammar, or an action value outside none/quarantine/reject.
	ErrSyntax = errors.New("dmarc: malformed policy record")

	// ErrMissingTag indicates a required tag ("v" or "p") is absent.
	ErrMissingTag = errors.New("dmarc: missing required tag")

	// ErrIncompatibleVersion indicates the v tag is present but not
	// exactly "DMARC1".
	ErrIncompatibleVersion = errors.New("dmarc: incompatible version")

	// ErrDNS indicates a DNS transport failure during policy discovery.
	// Unlike the record-content errors above it aborts discovery; it never
	// means "no policy published".
	ErrDNS = errors.New("dmarc: DNS lookup error")

	// ErrNoFromHeader indicates the message has no From header.
	ErrNoFromHeader = errors.New("dmarc: no From header in message")

	// ErrInvalidFromHeader indicates the From header could not be parsed.
	ErrInvalidFromHeader = errors.New("dmarc: invalid From header")

	// ErrMultipleFromAddresses indicates multiple addresses in From header.
	// DMARC can only evaluate a single From domain.
	ErrMultipleFromAddresses = errors.New("dmarc: multiple addresses in From header")
)
