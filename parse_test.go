package dmarc

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestParsePolicyBad(t *testing.T) {
	bad := func(s string, isRoot bool, want error) {
		t.Helper()
		_, err := ParsePolicy(s, isRoot)
		if err == nil {
			t.Fatalf("got parse success for %q, expected error", s)
		}
		if !errors.Is(err, want) {
			t.Fatalf("for %q got error %v, expected %v", s, err, want)
		}
	}

	bad("", false, ErrSyntax)
	bad(";", false, ErrSyntax)
	bad("v=DMARC1;;", false, ErrSyntax)
	bad("p=none;", false, ErrMissingTag)                 // no v
	bad("adkim=r; aspf=s;", false, ErrMissingTag)        // no v
	bad("v=DMARC1;", false, ErrMissingTag)               // no p
	bad("v=DMARC1; sp=reject;", false, ErrMissingTag)    // sp is no substitute for p
	bad("v=DMARC1; sp=reject;", true, ErrMissingTag)     // not even at the root level
	bad("v=DMARC6", false, ErrIncompatibleVersion)       // wrong version
	bad("v=dmarc1; p=none", false, ErrIncompatibleVersion) // version is case-sensitive
	bad("v=DMARC1.0; p=none", false, ErrIncompatibleVersion)
	bad("v=", false, ErrIncompatibleVersion)             // empty version value
	bad("v=DMARC1; p=badvalue", false, ErrSyntax)        // invalid action
	bad("v=DMARC1; p=None", false, ErrSyntax)            // action values are exact
	bad("v=DMARC1; p=reject; sp=bogus", true, ErrSyntax) // sp selected at root, invalid
}

func TestParsePolicyVersionDetail(t *testing.T) {
	_, err := ParsePolicy("v=DMARC6", false)
	if !errors.Is(err, ErrIncompatibleVersion) {
		t.Fatalf("expected ErrIncompatibleVersion, got %v", err)
	}
	if !strings.Contains(err.Error(), "DMARC6") {
		t.Errorf("error should carry the offending value, got %q", err)
	}

	_, err = ParsePolicy("p=none", false)
	if !errors.Is(err, ErrMissingTag) {
		t.Fatalf("expected ErrMissingTag, got %v", err)
	}
	if !strings.Contains(err.Error(), `"v"`) {
		t.Errorf("error should name the missing tag, got %q", err)
	}
}

func TestParsePolicyDefaults(t *testing.T) {
	policy, err := ParsePolicy("v=DMARC1; p=none; sp=quarantine; pct=67; rua=mailto:dmarcreports@example.com;", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Policy{
		ADKIM:      AlignRelaxed,
		ASPF:       AlignRelaxed,
		Action:     ActionNone,
		Percentage: 67,
	}
	if *policy != want {
		t.Errorf("got %+v, want %+v", *policy, want)
	}
}

func TestParsePolicySubdomainSelection(t *testing.T) {
	// Same record, both levels: sp applies only after the organizational
	// fallback.
	const record = "v=DMARC1;p=none;sp=quarantine;pct=67;"

	policy, err := ParsePolicy(record, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Action != ActionNone {
		t.Errorf("non-root: got action %q, want %q", policy.Action, ActionNone)
	}

	policy, err = ParsePolicy(record, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Action != ActionQuarantine {
		t.Errorf("root: got action %q, want %q", policy.Action, ActionQuarantine)
	}

	// Without sp, the root level falls back to p.
	policy, err = ParsePolicy("v=DMARC1;p=reject;", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Action != ActionReject {
		t.Errorf("root without sp: got action %q, want %q", policy.Action, ActionReject)
	}
}

func TestParsePolicyPercentage(t *testing.T) {
	for _, pct := range []int{0, 1, 13, 50, 99, 100} {
		policy, err := ParsePolicy("v=DMARC1; p=none; pct="+strconv.Itoa(pct), false)
		if err != nil {
			t.Fatalf("pct=%d: unexpected error: %v", pct, err)
		}
		if policy.Percentage != pct {
			t.Errorf("pct=%d: got %d", pct, policy.Percentage)
		}
	}

	// Out-of-range and non-numeric degrade to 100, never fail.
	for _, v := range []string{"101", "77777", "-1", "bogus", "", "1x"} {
		policy, err := ParsePolicy("v=DMARC1; p=none; pct="+v, false)
		if err != nil {
			t.Fatalf("pct=%q: unexpected error: %v", v, err)
		}
		if policy.Percentage != 100 {
			t.Errorf("pct=%q: got %d, want 100", v, policy.Percentage)
		}
	}
}

func TestParsePolicyAlignment(t *testing.T) {
	tests := []struct {
		record string
		adkim  Alignment
		aspf   Alignment
	}{
		{"v=DMARC1; p=none", AlignRelaxed, AlignRelaxed},
		{"v=DMARC1; p=none; adkim=s", AlignStrict, AlignRelaxed},
		{"v=DMARC1; p=none; aspf=s", AlignRelaxed, AlignStrict},
		{"v=DMARC1; p=none; adkim=s; aspf=s", AlignStrict, AlignStrict},
		{"v=DMARC1; p=none; adkim=r; aspf=r", AlignRelaxed, AlignRelaxed},
		// Invalid values degrade to relaxed, never fail.
		{"v=DMARC1; p=none; adkim=hein", AlignRelaxed, AlignRelaxed},
		{"v=DMARC1; p=none; adkim=S; aspf=123", AlignRelaxed, AlignRelaxed},
	}

	for _, tt := range tests {
		policy, err := ParsePolicy(tt.record, false)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.record, err)
		}
		if policy.ADKIM != tt.adkim {
			t.Errorf("%q: adkim got %q, want %q", tt.record, policy.ADKIM, tt.adkim)
		}
		if policy.ASPF != tt.aspf {
			t.Errorf("%q: aspf got %q, want %q", tt.record, policy.ASPF, tt.aspf)
		}
	}
}

func TestParsePolicyDuplicateTags(t *testing.T) {
	// Later occurrences win.
	policy, err := ParsePolicy("v=DMARC1; p=none; p=reject; pct=10; pct=20", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Action != ActionReject {
		t.Errorf("got action %q, want %q", policy.Action, ActionReject)
	}
	if policy.Percentage != 20 {
		t.Errorf("got pct %d, want 20", policy.Percentage)
	}
}

func TestParsePolicyIgnoresUnknownTags(t *testing.T) {
	policy, err := ParsePolicy("v=DMARC1; p=quarantine; rua=mailto:a@example.com; ruf=mailto:b@example.com; ri=3600; fo=1; rf=afrf; future=value", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Action != ActionQuarantine {
		t.Errorf("got action %q, want %q", policy.Action, ActionQuarantine)
	}
}
