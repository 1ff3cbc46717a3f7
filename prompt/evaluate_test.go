package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		timeout time.Duration
		tries   int
		limit   int
		elapsed time.Duration
		want    Outcome
	}{
		{"no budgets set", 0, 99, 0, time.Hour, OutcomeNone},
		{"within both budgets", time.Minute, 1, 3, time.Second, OutcomeNone},
		{"elapsed equals timeout", time.Minute, 1, 0, time.Minute, OutcomeNone},
		{"elapsed just past timeout", time.Minute, 1, 0, time.Minute + time.Nanosecond, OutcomeTimeout},
		{"tries below limit", 0, 2, 3, 0, OutcomeNone},
		{"tries equals limit", 0, 3, 3, 0, OutcomeRetryLimit},
		{"tries above limit", 0, 4, 3, 0, OutcomeRetryLimit},
		{"timeout wins over limit", time.Minute, 3, 3, 2 * time.Minute, OutcomeTimeout},
		{"limit hit before timeout", time.Minute, 3, 3, time.Second, OutcomeRetryLimit},
		{"zero limit never trips", time.Minute, 1000, 0, time.Second, OutcomeNone},
		{"zero timeout never trips", 0, 1, 3, 24 * time.Hour, OutcomeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluate(start, tt.timeout, tt.tries, tt.limit, start.Add(tt.elapsed))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := start.Add(90 * time.Second)

	first := evaluate(start, time.Minute, 2, 3, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, evaluate(start, time.Minute, 2, 3, now))
	}
}
