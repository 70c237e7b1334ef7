package dmarc

import (
	"fmt"
	"strconv"

	"github.com/synqronlabs/dmarc/tagval"
)

// ParsePolicy parses a DMARC policy record from a TXT string.
//
// isRoot must be true when the record was found at the organizational domain
// after fallback rather than at the queried domain itself. At the root level
// the sp tag, when present, selects the enforcement action for the original
// subdomain; otherwise the p tag applies. At the non-root level sp is
// ignored even if present.
//
// The record follows the extensible tag=value syntax for DNS-based key
// records defined in DKIM. Duplicate tags are folded last-wins. The v tag
// must be exactly "DMARC1" and p must name a valid receiver action; adkim,
// aspf and pct are optional and never fail, degrading to their RFC 7489
// Section 6.3 defaults on invalid input. Reporting tags (rua, ruf, ri, fo,
// rf) and unknown tags are tokenized and ignored.
func ParsePolicy(record string, isRoot bool) (*Policy, error) {
	tags, err := tagval.Parse(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	// Fold into name->value, last occurrence wins. The ordered list from
	// the tokenizer stays authoritative for consumers that care about
	// position; the policy tags do not.
	vals := make(map[string]string, len(tags))
	for _, tag := range tags {
		vals[tag.Name] = tag.Value
	}

	v, ok := vals["v"]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingTag, "v")
	}
	if v != "DMARC1" {
		return nil, fmt.Errorf("%w: %q", ErrIncompatibleVersion, v)
	}

	// p is required at every level; sp overrides it only after fallback
	// to the organizational domain.
	actionValue, ok := vals["p"]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingTag, "p")
	}
	if isRoot {
		if sp, ok := vals["sp"]; ok {
			actionValue = sp
		}
	}

	action, err := parseReceiverAction(actionValue)
	if err != nil {
		return nil, err
	}

	policy := NewPolicy(action)
	if s, ok := vals["adkim"]; ok {
		policy.ADKIM = parseAlignment(s)
	}
	if s, ok := vals["aspf"]; ok {
		policy.ASPF = parseAlignment(s)
	}
	if s, ok := vals["pct"]; ok {
		policy.Percentage = parsePercentage(s)
	}

	return policy, nil
}

// parseReceiverAction converts a p/sp tag value. Anything outside the three
// actions of RFC 7489 Section 6.3 is a syntax error.
func parseReceiverAction(s string) (ReceiverAction, error) {
	switch s {
	case "none":
		return ActionNone, nil
	case "quarantine":
		return ActionQuarantine, nil
	case "reject":
		return ActionReject, nil
	default:
		return "", fmt.Errorf("%w: invalid receiver policy (p): %q", ErrSyntax, s)
	}
}

// parseAlignment converts an adkim/aspf tag value. Invalid input degrades to
// the relaxed default; this conversion never fails.
func parseAlignment(s string) Alignment {
	switch s {
	case "r":
		return AlignRelaxed
	case "s":
		return AlignStrict
	default:
		return AlignRelaxed
	}
}

// parsePercentage converts a pct tag value. Non-numeric, negative or
// greater-than-100 input degrades to the default of 100; this conversion
// never fails.
func parsePercentage(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil || value < 0 || value > 100 {
		return 100
	}
	return value
}
