package prompt

import (
	"io"
	"os"
	"time"
)

// Options configures one call to Run. It is read once at loop entry
// and never mutated; a single Options value can be reused across calls.
type Options[T any] struct {
	// Prompt is printed before every read, without a trailing newline.
	Prompt string

	// Default, when non-nil, is returned instead of a TimeoutError or
	// RetryLimitError. PostApply is never applied to it.
	Default *T

	// Timeout is the wall-clock budget for the whole session. Zero
	// means unlimited. The check is cooperative: a blocking read is
	// never interrupted, the budget is evaluated between reads.
	Timeout time.Duration

	// Limit is the attempt budget. Zero means unlimited.
	Limit int

	// Apply transforms the raw line before validation. An error from
	// Apply is a caller bug and propagates out of Run unchanged.
	Apply func(string) (string, error)

	// Validate is required. It accepts the (possibly transformed) line
	// and returns the typed, possibly normalized value, or an error
	// whose message is shown to the user before re-prompting.
	Validate func(string) (T, error)

	// PostApply transforms the validated value. Like Apply, its errors
	// propagate unchanged. It never sees the default value.
	PostApply func(T) (T, error)

	// Secret selects the masked read strategy for every read in this
	// session. Mask is the rune echoed per keystroke; zero hides the
	// input entirely.
	Secret bool
	Mask   rune

	// In, Out, and Now default to the console and the real clock.
	In  LineReader
	Out io.Writer
	Now func() time.Time
}

func (o *Options[T]) check() error {
	if o.Validate == nil {
		return &ConfigError{Reason: "Validate function is required"}
	}
	if o.Timeout < 0 {
		return &ConfigError{Reason: "Timeout must not be negative"}
	}
	if o.Limit < 0 {
		return &ConfigError{Reason: "Limit must not be negative"}
	}
	if o.Mask != 0 && !o.Secret {
		return &ConfigError{Reason: "Mask requires Secret"}
	}
	return nil
}

func (o *Options[T]) reader() LineReader {
	if o.In != nil {
		return o.In
	}
	return NewConsoleReader(os.Stdin, os.Stdout)
}

func (o *Options[T]) writer() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o *Options[T]) clock() func() time.Time {
	if o.Now != nil {
		return o.Now
	}
	return time.Now
}
