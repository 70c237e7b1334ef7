package dmarc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/synqronlabs/dmarc/dns"
)

// dnsSubdomain is the label under which DMARC policies are published.
const dnsSubdomain = "_dmarc"

// LoadPolicy discovers the DMARC policy for a domain per RFC 7489
// Section 6.6.3.
//
// It queries the TXT records at "_dmarc.<domain>" and scans them in the
// order returned, skipping records that do not start with "v=". The first
// record that parses as a valid policy wins. A record that looks like DMARC
// but fails to parse is logged and skipped; it never aborts the search.
//
// When the queried domain yields no valid record and has an organizational
// domain different from itself, discovery repeats against
// "_dmarc.<orgdomain>", where root tag-selection rules apply (the sp tag
// overrides p).
//
// A (nil, nil) return means no policy is published anywhere in the fallback
// chain; that is a normal outcome, not an error. A non-nil error is always a
// transport failure (ErrDNS); discovery is aborted immediately, without
// retries, and never silently degraded to "no policy". Cancellation and
// timeouts belong to the caller through ctx and the resolver.
//
// logger receives diagnostics for skipped records; nil defaults to
// slog.Default().
func LoadPolicy(ctx context.Context, resolver dns.Resolver, logger *slog.Logger, domain string) (*Policy, error) {
	if logger == nil {
		logger = slog.Default()
	}

	policy, err := loadLevel(ctx, resolver, logger, domain, false)
	if policy != nil || err != nil {
		return policy, err
	}

	// No policy at the exact domain. If it was a subdomain, try the
	// organizational domain with root tag-selection rules.
	queried := strings.TrimSuffix(strings.ToLower(domain), ".")
	if root, ok := OrganizationalDomain(domain); ok && root != queried {
		return loadLevel(ctx, resolver, logger, root, true)
	}

	return nil, nil
}

// loadLevel queries and scans one level of the discovery chain.
func loadLevel(ctx context.Context, resolver dns.Resolver, logger *slog.Logger, domain string, isRoot bool) (*Policy, error) {
	name := dnsSubdomain + "." + domain
	if !strings.HasSuffix(name, ".") {
		name += "."
	}

	result, err := resolver.LookupTXT(ctx, name)
	if err != nil {
		if dns.IsNotFound(err) {
			// Nothing published at this level; the scan moves on.
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDNS, err)
	}

	for _, txt := range result.Records {
		if !strings.HasPrefix(txt, "v=") {
			continue
		}
		policy, perr := ParsePolicy(txt, isRoot)
		if perr != nil {
			logger.Warn("skipping invalid DMARC record",
				slog.String("name", name),
				slog.Any("error", perr),
			)
			continue
		}
		return policy, nil
	}

	return nil, nil
}

// Verify runs end-to-end DMARC evaluation for one message: policy discovery
// for the context's From domain followed by policy application.
//
// When the domain publishes no policy the result carries OutcomeNone and no
// policy. A transport failure during discovery is returned as an error with
// a nil result. Log lines from both phases share a generated evaluation id.
func Verify(ctx context.Context, resolver dns.Resolver, pctx *PolicyContext) (*Result, error) {
	logger := pctx.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("eval_id", ulid.Make().String()))

	policy, err := LoadPolicy(ctx, resolver, logger, pctx.FromDomain)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		logger.Debug("no DMARC policy published",
			slog.String("from_domain", pctx.FromDomain),
		)
		return none(), nil
	}

	applyCtx := *pctx
	applyCtx.Logger = logger

	result := policy.Apply(&applyCtx)
	logger.Debug("DMARC evaluation complete",
		slog.String("from_domain", pctx.FromDomain),
		slog.String("outcome", result.String()),
		slog.Bool("reject", result.ShouldReject()),
	)
	return result, nil
}
