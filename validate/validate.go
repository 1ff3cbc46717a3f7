package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports user input that failed validation. Message is
// what the user sees before the next prompt.
type ValidationError struct {
	Value   string // the rejected input, after strip rules
	Message string
}

// Error returns the user-facing message.
func (e *ValidationError) Error() string {
	return e.Message
}

func fail(value, format string, args ...any) error {
	return &ValidationError{Value: value, Message: fmt.Sprintf(format, args...)}
}

// BlockRule rejects input matching Pattern. An empty Message falls back
// to a generic rejection notice.
type BlockRule struct {
	Pattern *regexp.Regexp
	Message string
}

// Options holds the pre-validation knobs shared by every validator.
type Options struct {
	// Blank accepts an empty string (after stripping) as valid input.
	Blank bool

	// NoStrip disables stripping entirely. Otherwise StripChars are
	// trimmed from both ends, or whitespace when StripChars is empty.
	NoStrip    bool
	StripChars string

	// Allow patterns pass validation unconditionally, before any other
	// check. Block patterns fail it.
	Allow []*regexp.Regexp
	Block []BlockRule
}

// prevalidate runs the shared pass. The bool reports that validation is
// already settled (allowlisted or acceptably blank) and type-specific
// checks must be skipped.
func prevalidate(value string, opts *Options) (string, bool, error) {
	if opts == nil {
		opts = &Options{}
	}

	switch {
	case opts.NoStrip:
		// keep value as typed
	case opts.StripChars != "":
		value = strings.Trim(value, opts.StripChars)
	default:
		value = strings.TrimSpace(value)
	}

	for _, re := range opts.Allow {
		if re.MatchString(value) {
			return value, true, nil
		}
	}
	for _, rule := range opts.Block {
		if rule.Pattern.MatchString(value) {
			msg := rule.Message
			if msg == "" {
				msg = "This response is invalid."
			}
			return value, false, &ValidationError{Value: value, Message: msg}
		}
	}
	if value == "" {
		if opts.Blank {
			return value, true, nil
		}
		return value, false, &ValidationError{Value: value, Message: "Blank values are not allowed."}
	}
	return value, false, nil
}

// Str validates free-form text: strip rules, allowlist, blocklist, and
// blank handling only. It returns the normalized string.
func Str(value string, opts *Options) (string, error) {
	v, _, err := prevalidate(value, opts)
	return v, err
}
