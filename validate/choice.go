package validate

import (
	"strconv"
	"strings"
)

// ChoiceOptions extends Options with the menu acceptance modes.
type ChoiceOptions struct {
	Options

	// CaseSensitive requires the input to match a choice exactly.
	CaseSensitive bool

	// Numbered accepts "1".."N" for the Nth choice; Lettered accepts
	// "A".."Z" (or lowercase) the same way.
	Numbered bool
	Lettered bool
}

// Choice validates that the input selects one of choices and returns
// the canonical choice string, never the raw input.
func Choice(value string, choices []string, opts *ChoiceOptions) (string, error) {
	if opts == nil {
		opts = &ChoiceOptions{}
	}
	v, done, err := prevalidate(value, &opts.Options)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}

	if opts.Numbered {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
	}
	if opts.Lettered && len(v) == 1 {
		idx := int(strings.ToUpper(v)[0]) - 'A'
		if idx >= 0 && idx < len(choices) {
			return choices[idx], nil
		}
	}

	for _, choice := range choices {
		if choice == v || (!opts.CaseSensitive && strings.EqualFold(choice, v)) {
			return choice, nil
		}
	}
	return "", fail(v, "'%s' is not a valid choice.", v)
}
