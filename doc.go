// Package dmarc implements Domain-based Message Authentication, Reporting,
// and Conformance (DMARC) policy discovery and enforcement decisions per
// RFC 7489.
//
// DMARC is a mechanism for verifying ("authenticating") the address in the
// "From" message header, since users will look at that header to identify the
// sender of a message. DMARC compares the "From" domain against the SPF
// and/or DKIM-validated domains, based on the DMARC policy that a domain has
// published in DNS as a TXT record under "_dmarc.<domain>".
//
// This package covers the policy side only: it discovers and parses published
// policies and turns already-computed SPF and DKIM results into a final
// disposition. The SPF and DKIM engines themselves are external; callers
// supply their results through PolicyContext.
//
// This package provides:
//   - DNS policy discovery with organizational-domain fallback
//   - DMARC policy record parsing (p, sp, adkim, aspf, pct)
//   - Identifier alignment checking (relaxed and strict)
//   - Sampling-based partial enforcement honoring the pct tag
//   - Pass/fail/neutral/none outcome construction
//
// # Basic Usage
//
// Looking up a DMARC policy:
//
//	resolver := dns.NewResolver(dns.ResolverConfig{
//	    DNSSEC: true,
//	})
//
//	policy, err := dmarc.LoadPolicy(ctx, resolver, nil, "example.com")
//	if err != nil {
//	    // Transport failure; the lookup could not complete.
//	}
//	if policy == nil {
//	    // The domain publishes no DMARC policy.
//	}
//
// Applying a policy to a message's authentication results:
//
//	result := policy.Apply(&dmarc.PolicyContext{
//	    FromDomain: "example.com",
//	    DKIMResult: dkimResult,
//	    SPFResult: dmarc.SPFResult{
//	        DomainUsed: "example.com",
//	        Value:      "pass",
//	    },
//	})
//
//	if result.ShouldReject() {
//	    // Published policy is reject and the message failed DMARC.
//	}
//
// Or both steps at once:
//
//	result, err := dmarc.Verify(ctx, resolver, pctx)
//
// # DMARC Alignment
//
// DMARC requires "alignment" between the domain in the From header and the
// domains authenticated by SPF and/or DKIM:
//
//   - SPF alignment: The RFC5321.MailFrom domain (envelope sender) must match
//     the RFC5322.From domain (message header).
//
//   - DKIM alignment: The d= domain of a DKIM signature must match the
//     RFC5322.From domain.
//
// Alignment can be "strict" (exact match) or "relaxed" (organizational domain
// match). The default is relaxed alignment for both SPF and DKIM.
//
// # Organizational Domain
//
// The organizational domain is determined using the Public Suffix List. For
// example:
//   - example.com has organizational domain example.com
//   - sub.example.com has organizational domain example.com
//   - sub.example.co.uk has organizational domain example.co.uk
//
// Policy discovery first queries "_dmarc.<domain>"; when the domain publishes
// no valid record and is not itself an organizational domain, discovery falls
// back to "_dmarc.<orgdomain>", where the sp tag (if present) selects the
// enforcement action.
//
// # References
//
//   - RFC 7489: Domain-based Message Authentication, Reporting, and Conformance (DMARC)
//   - RFC 6376: DomainKeys Identified Mail (DKIM) Signatures
//   - RFC 7208: Sender Policy Framework (SPF)
package dmarc
