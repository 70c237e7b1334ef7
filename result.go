package dmarc

// Outcome is the final disposition of DMARC evaluation.
type Outcome string

const (
	// OutcomeNone indicates no DMARC policy was published anywhere in the
	// discovery fallback chain.
	OutcomeNone Outcome = "none"

	// OutcomeNeutral indicates the message was not selected by the
	// policy's pct sampling gate; authentication was not considered.
	OutcomeNeutral Outcome = "neutral"

	// OutcomePass indicates at least one authentication mechanism passed
	// with identifier alignment.
	OutcomePass Outcome = "pass"

	// OutcomeFail indicates no authentication mechanism was both aligned
	// and passing.
	OutcomeFail Outcome = "fail"
)

// Result is the result of applying a DMARC policy.
type Result struct {
	// Outcome is the evaluation disposition.
	Outcome Outcome

	// Policy is the policy that produced the outcome. It is nil only for
	// OutcomeNone, where no policy was ever found.
	Policy *Policy
}

// String returns the outcome as a string: "none", "neutral", "pass" or
// "fail".
func (r *Result) String() string {
	return string(r.Outcome)
}

// ShouldReject reports whether the message should be rejected: the
// evaluation failed and the published policy requests rejection. It is false
// for every other outcome/action combination; a false return does not mean
// the message should be accepted, only that DMARC does not demand rejection.
func (r *Result) ShouldReject() bool {
	return r.Outcome == OutcomeFail && r.Policy != nil && r.Policy.Action == ActionReject
}

func none() *Result {
	return &Result{Outcome: OutcomeNone}
}

func neutral(policy *Policy) *Result {
	return &Result{Outcome: OutcomeNeutral, Policy: policy}
}

func pass(policy *Policy) *Result {
	return &Result{Outcome: OutcomePass, Policy: policy}
}

func fail(policy *Policy) *Result {
	return &Result{Outcome: OutcomeFail, Policy: policy}
}
