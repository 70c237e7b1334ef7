package dmarc

import (
	"log/slog"
	"math/rand"
)

//go:generate msgp -file policy.go -tests=false

// Alignment specifies the identifier alignment mode for comparing the From
// domain with an authenticated domain.
type Alignment string

const (
	// AlignRelaxed requires the organizational domains to match.
	// This is the default mode.
	AlignRelaxed Alignment = "r"

	// AlignStrict requires exact domain matches.
	AlignStrict Alignment = "s"
)

// ReceiverAction is the enforcement disposition a domain owner requests for
// messages that fail DMARC (the p and sp tags).
type ReceiverAction string

const (
	// ActionNone requests no specific action be taken for failing messages.
	// This is typically used for monitoring during initial deployment.
	ActionNone ReceiverAction = "none"

	// ActionQuarantine requests that failing messages be treated as
	// suspicious, e.g. delivered to the spam folder.
	ActionQuarantine ReceiverAction = "quarantine"

	// ActionReject requests that failing messages be rejected.
	ActionReject ReceiverAction = "reject"
)

// Policy is a published DMARC policy: the subset of record tags that drive
// enforcement decisions. Policies are immutable once constructed; a Policy
// produced by discovery is shared read-only with the Result it ends up in.
type Policy struct {
	// ADKIM is the DKIM identifier alignment mode. Default is relaxed.
	ADKIM Alignment `msg:"adkim"`

	// ASPF is the SPF identifier alignment mode. Default is relaxed.
	ASPF Alignment `msg:"aspf"`

	// Action is the requested mail receiver policy. At the organizational
	// fallback level this already reflects the sp tag when present.
	Action ReceiverAction `msg:"p"`

	// Percentage of messages to which the policy applies, 0 to 100.
	Percentage int `msg:"pct"`
}

// NewPolicy returns a Policy with the given action and the defaults of
// RFC 7489 Section 6.3: relaxed alignment for both mechanisms, pct=100.
func NewPolicy(action ReceiverAction) *Policy {
	return &Policy{
		ADKIM:      AlignRelaxed,
		ASPF:       AlignRelaxed,
		Action:     action,
		Percentage: 100,
	}
}

// SPFResult is a caller-supplied SPF verification outcome: the domain the
// SPF engine evaluated (RFC5321.MailFrom) and its textual result, "pass" on
// success.
type SPFResult struct {
	DomainUsed string
	Value      string
}

// DKIMResult exposes the outcome of DKIM verification: the d= domain of the
// evaluated signature and a textual summary, "pass" on success.
type DKIMResult interface {
	DomainUsed() string
	Summary() string
}

// Sampler decides whether a message is selected for policy enforcement,
// implementing the pct tag. Production uses a uniform random draw; tests
// inject fixed outcomes.
type Sampler interface {
	// Sample reports whether a message is selected given the policy's
	// percentage. pct=100 must always select, pct=0 never.
	Sample(pct int) bool
}

// UniformSampler is the default Sampler: a Bernoulli trial with success
// probability pct/100 drawn from the process-wide uniform source.
type UniformSampler struct{}

// Sample draws the trial. A percentage outside [0,100] cannot come out of
// record parsing, but a hand-built Policy could carry one; such a value
// fails open and selects the message, the same as pct=100.
func (UniformSampler) Sample(pct int) bool {
	if pct < 0 || pct > 100 {
		return true
	}
	return rand.Intn(100) < pct
}

// PolicyContext aggregates the per-message inputs the decision engine needs:
// the visible From domain, the SPF and DKIM verification results, and
// optional diagnostics capabilities. Contexts are cheap, per-message values;
// evaluations for distinct messages share nothing.
type PolicyContext struct {
	// DKIMResult is the outcome of DKIM verification. May be nil when no
	// signature was evaluated; DKIM then simply cannot align.
	DKIMResult DKIMResult

	// SPFResult is the outcome of SPF verification.
	SPFResult SPFResult

	// FromDomain is the RFC5322.From domain being authenticated.
	FromDomain string

	// Logger receives flow diagnostics. Optional; defaults to slog.Default().
	Logger *slog.Logger

	// Sampler implements the pct sampling gate. Optional; defaults to
	// UniformSampler.
	Sampler Sampler
}

func (ctx *PolicyContext) logger() *slog.Logger {
	if ctx.Logger != nil {
		return ctx.Logger
	}
	return slog.Default()
}

func (ctx *PolicyContext) sampler() Sampler {
	if ctx.Sampler != nil {
		return ctx.Sampler
	}
	return UniformSampler{}
}

// DomainsAligned checks whether an authenticated domain aligns with the From
// domain under the given alignment mode, per RFC 7489 Section 3.1.
//
// In strict mode the domains must match exactly, byte for byte. In relaxed
// mode the organizational domains must match; if either name has no
// organizational domain the comparison fails rather than erroring.
func DomainsAligned(fromDomain, authDomain string, alignment Alignment) bool {
	if alignment == AlignStrict {
		return fromDomain == authDomain
	}

	fromRoot, ok := OrganizationalDomain(fromDomain)
	if !ok {
		return false
	}
	authRoot, ok := OrganizationalDomain(authDomain)
	if !ok {
		return false
	}
	return fromRoot == authRoot
}

// CheckSPFAlignment reports whether the SPF-evaluated domain aligns with
// fromDomain under the policy's aspf mode.
func (p *Policy) CheckSPFAlignment(fromDomain string, spfResult SPFResult) bool {
	return DomainsAligned(fromDomain, spfResult.DomainUsed, p.ASPF)
}

// CheckDKIMAlignment reports whether the DKIM-authenticated domain aligns
// with fromDomain under the policy's adkim mode.
func (p *Policy) CheckDKIMAlignment(fromDomain string, dkimResult DKIMResult) bool {
	if dkimResult == nil {
		return false
	}
	return DomainsAligned(fromDomain, dkimResult.DomainUsed(), p.ADKIM)
}

// Apply evaluates the policy against a message's authentication results, per
// RFC 7489 Sections 6.6.2 and 4.2. It performs no I/O.
//
// The pct sampling gate runs first: a message not selected gets a neutral
// result regardless of authentication. DKIM is then evaluated strictly
// before SPF; the first mechanism that is both aligned and passing yields a
// pass. A mechanism that is aligned but not passing is logged and does not
// short-circuit the other. With no aligned-and-passing mechanism the result
// is a fail.
func (p *Policy) Apply(ctx *PolicyContext) *Result {
	logger := ctx.logger()

	if !ctx.sampler().Sample(p.Percentage) {
		logger.Debug("message not sampled for DMARC enforcement",
			slog.Int("pct", p.Percentage),
		)
		return neutral(p)
	}

	if p.CheckDKIMAlignment(ctx.FromDomain, ctx.DKIMResult) {
		summary := ctx.DKIMResult.Summary()
		if summary == "pass" {
			return pass(p)
		}
		logger.Debug("DKIM aligned but not passing",
			slog.String("from_domain", ctx.FromDomain),
			slog.String("dkim_domain", ctx.DKIMResult.DomainUsed()),
			slog.String("result", summary),
		)
	}

	if p.CheckSPFAlignment(ctx.FromDomain, ctx.SPFResult) {
		if ctx.SPFResult.Value == "pass" {
			return pass(p)
		}
		logger.Debug("SPF aligned but not passing",
			slog.String("from_domain", ctx.FromDomain),
			slog.String("spf_domain", ctx.SPFResult.DomainUsed),
			slog.String("result", ctx.SPFResult.Value),
		)
	}

	return fail(p)
}
