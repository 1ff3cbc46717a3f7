package prompt

import "time"

// Outcome is the evaluator's verdict on the session budgets. It is a
// value, not an error: the loop inspects it and decides whether to
// surface a failure or substitute the configured default.
type Outcome int

const (
	// OutcomeNone means both budgets still have room.
	OutcomeNone Outcome = iota
	// OutcomeTimeout means the wall-clock budget is spent.
	OutcomeTimeout
	// OutcomeRetryLimit means the attempt budget is spent.
	OutcomeRetryLimit
)

// evaluate decides whether the session has exhausted its time or
// attempt budget. A zero timeout or limit means that budget is not set.
//
// The timeout must be strictly exceeded, and it takes precedence over
// the retry limit when both are spent. The function is pure: identical
// arguments always produce the same Outcome.
func evaluate(start time.Time, timeout time.Duration, tries, limit int, now time.Time) Outcome {
	if timeout > 0 && now.Sub(start) > timeout {
		return OutcomeTimeout
	}
	if limit > 0 && tries >= limit {
		return OutcomeRetryLimit
	}
	return OutcomeNone
}
