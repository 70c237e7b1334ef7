package dmarc

import (
	"errors"
	"testing"
)

func TestExtractFromDomain(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{
			name:   "plain address",
			header: "user@example.com",
			want:   "example.com",
		},
		{
			name:   "with display name",
			header: `"Jamie Doe" <jamie@example.com>`,
			want:   "example.com",
		},
		{
			name:   "domain lower-cased",
			header: "user@Example.COM",
			want:   "example.com",
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrNoFromHeader,
		},
		{
			name:    "unparseable",
			header:  "not an address",
			wantErr: ErrInvalidFromHeader,
		},
		{
			name:    "multiple addresses",
			header:  "a@example.com, b@example.net",
			wantErr: ErrMultipleFromAddresses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFromDomain(tt.header)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
