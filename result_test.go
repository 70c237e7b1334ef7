package dmarc

import "testing"

func TestResultString(t *testing.T) {
	tests := []struct {
		result *Result
		want   string
	}{
		{none(), "none"},
		{neutral(NewPolicy(ActionNone)), "neutral"},
		{pass(NewPolicy(ActionNone)), "pass"},
		{fail(NewPolicy(ActionNone)), "fail"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestShouldReject(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   bool
	}{
		{"fail with reject", fail(NewPolicy(ActionReject)), true},
		{"fail with quarantine", fail(NewPolicy(ActionQuarantine)), false},
		{"fail with none", fail(NewPolicy(ActionNone)), false},
		{"pass with reject", pass(NewPolicy(ActionReject)), false},
		{"neutral with reject", neutral(NewPolicy(ActionReject)), false},
		{"no policy", none(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.ShouldReject(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultPolicyPresence(t *testing.T) {
	// Policy is present for every outcome except none.
	p := NewPolicy(ActionNone)
	for _, r := range []*Result{neutral(p), pass(p), fail(p)} {
		if r.Policy == nil {
			t.Errorf("%s result must carry its policy", r)
		}
	}
	if none().Policy != nil {
		t.Error("none result must not carry a policy")
	}
}
