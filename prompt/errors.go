package prompt

import (
	"errors"
	"fmt"
	"time"
)

// ErrInterrupted is returned when the user aborts a masked or
// interactive read with Ctrl+C.
var ErrInterrupted = errors.New("prompt: interrupted")

// ConfigError reports malformed Options. It is returned before the
// first read, is never retried, and is never replaced by a default.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "prompt: invalid configuration: " + e.Reason
}

// TimeoutError reports that no valid input arrived within the time
// budget. Tries is the number of completed read attempts.
type TimeoutError struct {
	Timeout time.Duration
	Tries   int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("prompt: no valid input within %s", e.Timeout)
}

// RetryLimitError reports that the user spent every allowed attempt
// without entering valid input.
type RetryLimitError struct {
	Limit int
	Tries int
}

func (e *RetryLimitError) Error() string {
	return fmt.Sprintf("prompt: no valid input in %d tries", e.Limit)
}
