package prompt

import (
	"fmt"

	"github.com/simonhull/firebird-suite/plume/style"
)

// Run prompts until the input validates, a budget runs out, or a
// caller-supplied function fails. See Options for the full contract.
//
// Run blocks the calling goroutine on every read and owns its session
// state exclusively; it is not safe to share one invocation across
// goroutines.
func Run[T any](opts Options[T]) (T, error) {
	var zero T
	if err := opts.check(); err != nil {
		return zero, err
	}

	in := opts.reader()
	out := opts.writer()
	now := opts.clock()

	start := now()
	tries := 0

	for {
		fmt.Fprint(out, opts.Prompt)

		var raw string
		var err error
		if opts.Secret {
			raw, err = in.ReadMasked(opts.Mask)
		} else {
			raw, err = in.ReadLine()
		}
		if err != nil {
			return zero, fmt.Errorf("reading input: %w", err)
		}
		tries++

		if opts.Apply != nil {
			raw, err = opts.Apply(raw)
			if err != nil {
				return zero, err
			}
		}

		value, err := opts.Validate(raw)
		if err != nil {
			outcome := evaluate(start, opts.Timeout, tries, opts.Limit, now())

			// The user sees why their input was rejected even when
			// this attempt was their last.
			fmt.Fprintln(out, style.Problem(err.Error()))

			if outcome == OutcomeNone {
				continue
			}
			if opts.Default != nil {
				return *opts.Default, nil
			}
			if outcome == OutcomeTimeout {
				return zero, &TimeoutError{Timeout: opts.Timeout, Tries: tries}
			}
			return zero, &RetryLimitError{Limit: opts.Limit, Tries: tries}
		}

		// A slow but ultimately valid attempt can still land past the
		// deadline. The timeout wins over the successful read.
		if opts.Timeout > 0 && now().Sub(start) > opts.Timeout {
			if opts.Default != nil {
				return *opts.Default, nil
			}
			return zero, &TimeoutError{Timeout: opts.Timeout, Tries: tries}
		}

		if opts.PostApply != nil {
			return opts.PostApply(value)
		}
		return value, nil
	}
}
