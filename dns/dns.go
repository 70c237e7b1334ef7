// Package dns provides the TXT lookup capability consumed by DMARC policy
// discovery.
//
// The Resolver interface abstracts the transport so discovery logic stays
// generic over a production resolver (DNSResolver, built on
// github.com/miekg/dns with DNSSEC support), the standard library
// (StdResolver), and a canned test double (MockResolver).
package dns

import (
	"context"
	"errors"
)

// Lookup errors. "Record does not exist" (ErrNotFound) is distinguished from
// transport and protocol failures: callers typically treat the former as an
// empty answer and the latter as a temporary error.
var (
	// ErrNotFound indicates the name does not exist or has no records of
	// the requested type (NXDOMAIN or empty answer).
	ErrNotFound = errors.New("dns: name not found")

	// ErrServFail indicates the server returned SERVFAIL.
	ErrServFail = errors.New("dns: server failure")

	// ErrTimeout indicates the query timed out.
	ErrTimeout = errors.New("dns: query timeout")

	// ErrRefused indicates the server refused the query.
	ErrRefused = errors.New("dns: query refused")

	// ErrBogus indicates a SERVFAIL from a validating resolver, which
	// typically means DNSSEC validation failed.
	ErrBogus = errors.New("dns: dnssec validation failed")
)

// Result holds the answer to a TXT lookup.
type Result struct {
	// Records are the TXT strings in the order returned by the server.
	// Character-string fragments of a single record are already joined.
	Records []string

	// Authentic indicates the response was DNSSEC-validated (AD flag from
	// a validating resolver). Always false for resolvers without DNSSEC
	// support.
	Authentic bool
}

// Resolver performs TXT lookups. Implementations must return ErrNotFound
// (possibly wrapped) when the name has no TXT records, and another error
// only for transport or protocol failures. Cancellation and timeouts are
// controlled by the caller through ctx.
type Resolver interface {
	LookupTXT(ctx context.Context, name string) (Result, error)
}

// IsNotFound reports whether err means the name has no records, as opposed
// to a lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTemporary reports whether err is a transient lookup failure that may
// succeed on retry.
func IsTemporary(err error) bool {
	return errors.Is(err, ErrServFail) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrRefused)
}
