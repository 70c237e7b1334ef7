package dns

import (
	"context"
	"fmt"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		isNotFound bool
		isTemp     bool
	}{
		{
			name:       "not found error",
			err:        ErrNotFound,
			isNotFound: true,
		},
		{
			name:   "timeout error",
			err:    ErrTimeout,
			isTemp: true,
		},
		{
			name:   "server failure",
			err:    ErrServFail,
			isTemp: true,
		},
		{
			name:   "refused",
			err:    ErrRefused,
			isTemp: true,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("lookup _dmarc.example.com: %w", ErrNotFound),
			isNotFound: true,
		},
		{
			name: "bogus is neither",
			err:  ErrBogus,
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.isNotFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.isNotFound)
			}
			if got := IsTemporary(tt.err); got != tt.isTemp {
				t.Errorf("IsTemporary() = %v, want %v", got, tt.isTemp)
			}
		})
	}
}

func TestNewResolverDefaults(t *testing.T) {
	r := NewResolver(ResolverConfig{})

	// Should have default timeout
	if r.config.Timeout == 0 {
		t.Error("expected default timeout to be set")
	}

	// Should have default retries
	if r.config.Retries == 0 {
		t.Error("expected default retries to be set")
	}

	// Should have nameservers (either from system or fallback)
	if len(r.config.Nameservers) == 0 {
		t.Error("expected nameservers to be set")
	}
}

func TestEnsureAbsolute(t *testing.T) {
	if got := ensureAbsolute("example.com"); got != "example.com." {
		t.Errorf("got %q", got)
	}
	if got := ensureAbsolute("example.com."); got != "example.com." {
		t.Errorf("got %q", got)
	}
}

func TestMockResolverTXT(t *testing.T) {
	resolver := MockResolver{
		TXT: map[string][]string{
			"_dmarc.example.com.": {"v=DMARC1; p=none"},
		},
		Fail:      []string{"_dmarc.broken.example."},
		Authentic: []string{"_dmarc.example.com."},
	}

	ctx := context.Background()

	result, err := resolver.LookupTXT(ctx, "_dmarc.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0] != "v=DMARC1; p=none" {
		t.Errorf("unexpected records: %v", result.Records)
	}
	if !result.Authentic {
		t.Error("expected authentic response")
	}

	_, err = resolver.LookupTXT(ctx, "_dmarc.other.example")
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	_, err = resolver.LookupTXT(ctx, "_dmarc.broken.example")
	if !IsTemporary(err) {
		t.Errorf("expected temporary error, got %v", err)
	}
}

func TestMockResolverContextCancel(t *testing.T) {
	resolver := MockResolver{
		TXT: map[string][]string{
			"_dmarc.example.com.": {"v=DMARC1; p=none"},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.LookupTXT(ctx, "_dmarc.example.com")
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
