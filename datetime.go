package plume

import (
	"time"

	"github.com/simonhull/firebird-suite/plume/prompt"
	"github.com/simonhull/firebird-suite/plume/validate"
)

// TimeOptions configures the date and time input functions. Layouts is
// a list of Go time layouts to try in order; nil uses the validate
// package defaults for the kind.
type TimeOptions struct {
	Base
	Default   *time.Time
	Layouts   []string
	PostApply func(time.Time) (time.Time, error)
}

// Date prompts for a calendar date.
func Date(promptText string, opts *TimeOptions) (time.Time, error) {
	if opts == nil {
		opts = &TimeOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return time.Time{}, err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (time.Time, error) {
		return validate.Date(v, opts.Layouts, vo)
	})
}

// Time prompts for a time of day.
func Time(promptText string, opts *TimeOptions) (time.Time, error) {
	if opts == nil {
		opts = &TimeOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return time.Time{}, err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (time.Time, error) {
		return validate.Time(v, opts.Layouts, vo)
	})
}

// Datetime prompts for a combined date and time.
func Datetime(promptText string, opts *TimeOptions) (time.Time, error) {
	if opts == nil {
		opts = &TimeOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return time.Time{}, err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (time.Time, error) {
		return validate.Datetime(v, opts.Layouts, vo)
	})
}

// Month prompts for a month by number, name, or three-letter
// abbreviation, and returns the full name in title case.
func Month(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Month(v, vo)
	})
}

// DayOfWeek prompts for a weekday by name or three-letter abbreviation
// and returns the full name in title case.
func DayOfWeek(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.DayOfWeek(v, vo)
	})
}

// DayOfMonthOptions configures DayOfMonth.
type DayOfMonthOptions struct {
	Base
	Default   *int
	PostApply func(int) (int, error)
}

// DayOfMonth prompts for a day number valid within the given month and
// year, honoring leap years.
func DayOfMonth(promptText string, year, month int, opts *DayOfMonthOptions) (int, error) {
	if month < 1 || month > 12 {
		return 0, &prompt.ConfigError{Reason: "month must be between 1 and 12"}
	}
	if opts == nil {
		opts = &DayOfMonthOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return 0, err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (int, error) {
		return validate.DayOfMonth(v, year, month, vo)
	})
}
